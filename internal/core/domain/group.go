package domain

// GroupKind classifies a group for the income statement formulas.
type GroupKind string

const (
	KindRevenue   GroupKind = "REVENUE"
	KindDeduction GroupKind = "DEDUCTION"
	KindCost      GroupKind = "COST"
	KindExpense   GroupKind = "EXPENSE"
)

// IsValid reports whether k is one of the four known kinds.
func (k GroupKind) IsValid() bool {
	switch k {
	case KindRevenue, KindDeduction, KindCost, KindExpense:
		return true
	}
	return false
}

// Group is a top-level node of the chart of accounts. Groups are shared by all
// workplaces and are seeded by migration.
type Group struct {
	GroupID      string    `json:"groupID"`
	Code         string    `json:"code"` // Globally unique
	Name         string    `json:"name"`
	Kind         GroupKind `json:"kind"` // Immutable once ledger entries reference accounts under it
	DisplayOrder int       `json:"displayOrder"`
	IsActive     bool      `json:"isActive"`
	AuditFields
}
