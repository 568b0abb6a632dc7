package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a row of ledger_entries. Rows are never updated.
type LedgerEntry struct {
	EntryID     string          `db:"entry_id"`
	WorkplaceID string          `db:"workplace_id"`
	AccountID   string          `db:"account_id"`
	RuleID      string          `db:"rule_id"`
	EventID     string          `db:"event_id"`
	Trigger     string          `db:"trigger_type"`
	Amount      decimal.Decimal `db:"amount"`
	PostingDate time.Time       `db:"posting_date"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
	CreatedBy   string          `db:"created_by"`
}
