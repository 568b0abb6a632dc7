package domain

import (
	"fmt"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Trigger is the category of business event that can cause postings.
type Trigger string

const (
	TriggerSaleConfirmed    Trigger = "SALE_CONFIRMED"
	TriggerSaleInvoiced     Trigger = "SALE_INVOICED"
	TriggerSaleCancelled    Trigger = "SALE_CANCELLED"
	TriggerExpenseRecorded  Trigger = "EXPENSE_RECORDED"
	TriggerPurchaseReceived Trigger = "PURCHASE_RECEIVED"
)

// IsValid reports whether t is a known trigger.
func (t Trigger) IsValid() bool {
	switch t {
	case TriggerSaleConfirmed, TriggerSaleInvoiced, TriggerSaleCancelled,
		TriggerExpenseRecorded, TriggerPurchaseReceived:
		return true
	}
	return false
}

// SaleSubtype narrows sale triggers.
type SaleSubtype string

const (
	SubtypeDirect      SaleSubtype = "DIRECT"
	SubtypeConditional SaleSubtype = "CONDITIONAL"
	SubtypeGift        SaleSubtype = "GIFT"
	SubtypeBarter      SaleSubtype = "BARTER"
)

// IsValid reports whether s is a known sale subtype.
func (s SaleSubtype) IsValid() bool {
	switch s {
	case SubtypeDirect, SubtypeConditional, SubtypeGift, SubtypeBarter:
		return true
	}
	return false
}

// SourceField names the monetary field of an event a rule takes its base amount from.
type SourceField string

const (
	FieldTotalAmount      SourceField = "totalAmount"
	FieldFreightAmount    SourceField = "freightAmount"
	FieldCommissionAmount SourceField = "commissionAmount"
	FieldDiscountAmount   SourceField = "discountAmount"
	FieldCostAmount       SourceField = "costAmount"
)

// IsValid reports whether f is a known source field.
func (f SourceField) IsValid() bool {
	switch f {
	case FieldTotalAmount, FieldFreightAmount, FieldCommissionAmount,
		FieldDiscountAmount, FieldCostAmount:
		return true
	}
	return false
}

// Rule maps a trigger (and optional sale subtype) to a target account.
//
// The entry amount is computed from the selected source field:
// an explicit Percentage wins over the TaxRate; with neither set the full
// source amount is posted.
type Rule struct {
	RuleID      string           `json:"ruleID"`
	WorkplaceID string           `json:"workplaceID"`
	AccountID   string           `json:"accountID"`
	TaxRateID   *string          `json:"taxRateID,omitempty"`
	Name        string           `json:"name"` // Unique per workplace
	Trigger     Trigger          `json:"trigger"`
	SaleSubtype *SaleSubtype     `json:"saleSubtype,omitempty"` // nil matches every subtype
	SourceField *SourceField     `json:"sourceField,omitempty"` // nil means totalAmount
	Percentage  *decimal.Decimal `json:"percentage,omitempty"`
	IsActive    bool             `json:"isActive"`
	AuditFields
}

// MatchesSubtype reports whether the rule applies to an event of the given subtype.
func (r Rule) MatchesSubtype(subtype *SaleSubtype) bool {
	if r.SaleSubtype == nil {
		return true
	}
	return subtype != nil && *subtype == *r.SaleSubtype
}

// SelectedField returns the configured source field, defaulting to totalAmount.
func (r Rule) SelectedField() SourceField {
	if r.SourceField == nil {
		return FieldTotalAmount
	}
	return *r.SourceField
}

// Validate checks the enumerations and the percentage range. References to
// accounts and tax rates are checked by the rule service.
func (r Rule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: rule name is required", apperrors.ErrValidation)
	}
	if r.AccountID == "" {
		return fmt.Errorf("%w: rule target account is required", apperrors.ErrValidation)
	}
	if !r.Trigger.IsValid() {
		return fmt.Errorf("%w: unknown trigger type %q", apperrors.ErrValidation, r.Trigger)
	}
	if r.SaleSubtype != nil && !r.SaleSubtype.IsValid() {
		return fmt.Errorf("%w: unknown sale subtype %q", apperrors.ErrValidation, *r.SaleSubtype)
	}
	if r.SourceField != nil && !r.SourceField.IsValid() {
		return fmt.Errorf("%w: unknown source field %q", apperrors.ErrValidation, *r.SourceField)
	}
	if r.Percentage != nil {
		if err := ValidatePercentage(*r.Percentage); err != nil {
			return err
		}
	}
	return nil
}
