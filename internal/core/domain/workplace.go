package domain

// UserWorkplaceRole defines the possible roles a user can have within a workplace.
// The workplace is the tenant: every chart account, tax rate, rule and ledger entry
// belongs to exactly one workplace.
type UserWorkplaceRole string

const (
	RoleAdmin    UserWorkplaceRole = "ADMIN"
	RoleMember   UserWorkplaceRole = "MEMBER"
	RoleReadOnly UserWorkplaceRole = "READONLY" // Users with read-only access to workplace data
	RoleRemoved  UserWorkplaceRole = "REMOVED"  // For users who have been removed from the workplace
)
