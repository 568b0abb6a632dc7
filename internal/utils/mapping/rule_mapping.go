package mapping

import (
	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/SscSPs/dre_backoffice/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelTaxRate converts a domain TaxRate to a model TaxRate
func ToModelTaxRate(d domain.TaxRate) models.TaxRate {
	return models.TaxRate{
		TaxRateID:   d.TaxRateID,
		WorkplaceID: d.WorkplaceID,
		Sigla:       d.Sigla,
		Name:        d.Name,
		Percentage:  d.Percentage,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTaxRate converts a model TaxRate to a domain TaxRate
func ToDomainTaxRate(m models.TaxRate) domain.TaxRate {
	return domain.TaxRate{
		TaxRateID:   m.TaxRateID,
		WorkplaceID: m.WorkplaceID,
		Sigla:       m.Sigla,
		Name:        m.Name,
		Percentage:  m.Percentage,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTaxRateSlice converts a slice of model TaxRates to a slice of domain TaxRates
func ToDomainTaxRateSlice(ms []models.TaxRate) []domain.TaxRate {
	ds := make([]domain.TaxRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTaxRate(m)
	}
	return ds
}

// ToModelRule converts a domain Rule to a model Rule
func ToModelRule(d domain.Rule) models.Rule {
	m := models.Rule{
		RuleID:      d.RuleID,
		WorkplaceID: d.WorkplaceID,
		AccountID:   d.AccountID,
		TaxRateID:   d.TaxRateID,
		Name:        d.Name,
		Trigger:     string(d.Trigger),
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.SaleSubtype != nil {
		s := string(*d.SaleSubtype)
		m.SaleSubtype = &s
	}
	if d.SourceField != nil {
		f := string(*d.SourceField)
		m.SourceField = &f
	}
	if d.Percentage != nil {
		m.Percentage = decimal.NewNullDecimal(*d.Percentage)
	}
	return m
}

// ToDomainRule converts a model Rule to a domain Rule
func ToDomainRule(m models.Rule) domain.Rule {
	d := domain.Rule{
		RuleID:      m.RuleID,
		WorkplaceID: m.WorkplaceID,
		AccountID:   m.AccountID,
		TaxRateID:   m.TaxRateID,
		Name:        m.Name,
		Trigger:     domain.Trigger(m.Trigger),
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.SaleSubtype != nil {
		s := domain.SaleSubtype(*m.SaleSubtype)
		d.SaleSubtype = &s
	}
	if m.SourceField != nil {
		f := domain.SourceField(*m.SourceField)
		d.SourceField = &f
	}
	if m.Percentage.Valid {
		p := m.Percentage.Decimal
		d.Percentage = &p
	}
	return d
}

// ToDomainRuleSlice converts a slice of model Rules to a slice of domain Rules
func ToDomainRuleSlice(ms []models.Rule) []domain.Rule {
	ds := make([]domain.Rule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRule(m)
	}
	return ds
}

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:     d.EntryID,
		WorkplaceID: d.WorkplaceID,
		AccountID:   d.AccountID,
		RuleID:      d.RuleID,
		EventID:     d.EventID,
		Trigger:     string(d.Trigger),
		Amount:      d.Amount,
		PostingDate: d.PostingDate,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		CreatedBy:   d.CreatedBy,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:     m.EntryID,
		WorkplaceID: m.WorkplaceID,
		AccountID:   m.AccountID,
		RuleID:      m.RuleID,
		EventID:     m.EventID,
		Trigger:     domain.Trigger(m.Trigger),
		Amount:      m.Amount,
		PostingDate: domain.DateOnly(m.PostingDate),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries to a slice of domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
