package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry records that an amount was posted to an account because a rule
// matched an event. Entries are append-only; corrections are new events.
type LedgerEntry struct {
	EntryID     string          `json:"entryID"`
	WorkplaceID string          `json:"workplaceID"`
	AccountID   string          `json:"accountID"`
	RuleID      string          `json:"ruleID"`
	EventID     string          `json:"eventID"`
	Trigger     Trigger         `json:"trigger"`
	Amount      decimal.Decimal `json:"amount"`
	PostingDate time.Time       `json:"postingDate"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// PostingResult is returned by the posting engine. Entries is empty, not nil,
// when no rule matched.
type PostingResult struct {
	WorkplaceID string        `json:"workplaceID"`
	EventID     string        `json:"eventID"`
	Trigger     Trigger       `json:"trigger"`
	Entries     []LedgerEntry `json:"entries"`
}
