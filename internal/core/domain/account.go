package domain

// Account is a line item of the income statement. It belongs to one Group and one workplace.
type Account struct {
	AccountID    string `json:"accountID"`    // Primary Key (UUID)
	WorkplaceID  string `json:"workplaceID"`  // Tenant
	GroupID      string `json:"groupID"`      // FK -> dre_groups.group_id
	Code         string `json:"code"`         // Optional external code
	Name         string `json:"name"`         // Unique per (workplace, group) among active accounts
	LegacyName   string `json:"legacyName"`   // Only used by one-time migration lookups
	DisplayOrder int    `json:"displayOrder"` // Ordering inside the group
	IsActive     bool   `json:"isActive"`     // Soft delete flag
	AuditFields
}

// AccountFilter narrows ListAccounts. Nil fields are not applied.
type AccountFilter struct {
	GroupID *string
	Kind    *GroupKind
}
