package models

// Group is a row of dre_groups.
type Group struct {
	GroupID      string `db:"group_id"`
	Code         string `db:"code"`
	Name         string `db:"name"`
	Kind         string `db:"kind"`
	DisplayOrder int    `db:"display_order"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}

// Account is a row of dre_accounts.
type Account struct {
	AccountID    string  `db:"account_id"`
	WorkplaceID  string  `db:"workplace_id"`
	GroupID      string  `db:"group_id"`
	Code         *string `db:"code"`        // Nullable
	Name         string  `db:"name"`
	LegacyName   *string `db:"legacy_name"` // Nullable
	DisplayOrder int     `db:"display_order"`
	IsActive     bool    `db:"is_active"`
	AuditFields
}
