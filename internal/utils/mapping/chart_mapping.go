package mapping

import (
	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/SscSPs/dre_backoffice/internal/models"
)

// ToModelGroup converts a domain Group to a model Group
func ToModelGroup(d domain.Group) models.Group {
	return models.Group{
		GroupID:      d.GroupID,
		Code:         d.Code,
		Name:         d.Name,
		Kind:         string(d.Kind),
		DisplayOrder: d.DisplayOrder,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGroup converts a model Group to a domain Group
func ToDomainGroup(m models.Group) domain.Group {
	return domain.Group{
		GroupID:      m.GroupID,
		Code:         m.Code,
		Name:         m.Name,
		Kind:         domain.GroupKind(m.Kind),
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGroupSlice converts a slice of model Groups to a slice of domain Groups
func ToDomainGroupSlice(ms []models.Group) []domain.Group {
	ds := make([]domain.Group, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGroup(m)
	}
	return ds
}

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		WorkplaceID:  d.WorkplaceID,
		GroupID:      d.GroupID,
		Code:         nullableString(d.Code),
		Name:         d.Name,
		LegacyName:   nullableString(d.LegacyName),
		DisplayOrder: d.DisplayOrder,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		WorkplaceID:  m.WorkplaceID,
		GroupID:      m.GroupID,
		Code:         derefString(m.Code),
		Name:         m.Name,
		LegacyName:   derefString(m.LegacyName),
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
