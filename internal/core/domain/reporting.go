package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountTotal is the per-account subtotal of the income statement, carrying
// enough of the account and group to order and roll it up.
type AccountTotal struct {
	AccountID           string          `json:"accountID"`
	AccountName         string          `json:"accountName"`
	AccountDisplayOrder int             `json:"-"`
	GroupID             string          `json:"groupID"`
	GroupName           string          `json:"groupName"`
	GroupCode           string          `json:"groupCode"`
	GroupKind           GroupKind       `json:"groupKind"`
	GroupDisplayOrder   int             `json:"-"`
	Total               decimal.Decimal `json:"total"`
}

// GroupStatement is one node of the statement tree.
type GroupStatement struct {
	GroupID      string          `json:"groupID"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Kind         GroupKind       `json:"kind"`
	DisplayOrder int             `json:"displayOrder"`
	Accounts     []AccountTotal  `json:"accounts"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// StatementTotals holds the seven derived totals of the income statement.
type StatementTotals struct {
	GrossRevenue    decimal.Decimal `json:"grossRevenue"`
	Deductions      decimal.Decimal `json:"deductions"`
	NetRevenue      decimal.Decimal `json:"netRevenue"`
	Costs           decimal.Decimal `json:"costs"`
	GrossProfit     decimal.Decimal `json:"grossProfit"`
	Expenses        decimal.Decimal `json:"expenses"`
	OperatingProfit decimal.Decimal `json:"operatingProfit"`
}

// Period is a closed date interval; both ends are inclusive.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IncomeStatement (DRE) for one workplace and period.
type IncomeStatement struct {
	WorkplaceID string           `json:"workplaceID"`
	Period      Period           `json:"period"`
	Groups      []GroupStatement `json:"groups"`
	Lines       []AccountTotal   `json:"lines"`
	Totals      StatementTotals  `json:"totals"`
}
