package dto

import (
	"time"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRuleRequest defines the data needed to create a posting rule.
type CreateRuleRequest struct {
	Name        string              `json:"name" binding:"required,max=150"`
	AccountID   string              `json:"accountID" binding:"required"`
	TaxRateID   *string             `json:"taxRateID" binding:"omitempty,min=1"`
	Trigger     domain.Trigger      `json:"trigger" binding:"required,oneof=SALE_CONFIRMED SALE_INVOICED SALE_CANCELLED EXPENSE_RECORDED PURCHASE_RECEIVED"`
	SaleSubtype *domain.SaleSubtype `json:"saleSubtype" binding:"omitempty,oneof=DIRECT CONDITIONAL GIFT BARTER"`
	SourceField *domain.SourceField `json:"sourceField" binding:"omitempty,oneof=totalAmount freightAmount commissionAmount discountAmount costAmount"`
	Percentage  *decimal.Decimal    `json:"percentage" binding:"omitempty,percentage" swaggertype:"string"`
}

// UpdateRuleRequest defines the data allowed for updating a rule.
// Optional references are removed with the Clear* flags since a nil pointer
// means "not provided".
type UpdateRuleRequest struct {
	Name             *string             `json:"name" binding:"omitempty,min=1,max=150"`
	AccountID        *string             `json:"accountID" binding:"omitempty,min=1"`
	TaxRateID        *string             `json:"taxRateID" binding:"omitempty,min=1"`
	ClearTaxRate     bool                `json:"clearTaxRate"`
	Trigger          *domain.Trigger     `json:"trigger" binding:"omitempty,oneof=SALE_CONFIRMED SALE_INVOICED SALE_CANCELLED EXPENSE_RECORDED PURCHASE_RECEIVED"`
	SaleSubtype      *domain.SaleSubtype `json:"saleSubtype" binding:"omitempty,oneof=DIRECT CONDITIONAL GIFT BARTER"`
	ClearSaleSubtype bool                `json:"clearSaleSubtype"`
	SourceField      *domain.SourceField `json:"sourceField" binding:"omitempty,oneof=totalAmount freightAmount commissionAmount discountAmount costAmount"`
	ClearSourceField bool                `json:"clearSourceField"`
	Percentage       *decimal.Decimal    `json:"percentage" binding:"omitempty,percentage" swaggertype:"string"`
	ClearPercentage  bool                `json:"clearPercentage"`
	IsActive         *bool               `json:"isActive"`
}

// RuleResponse defines the data returned for a rule.
type RuleResponse struct {
	RuleID        string              `json:"ruleID"`
	WorkplaceID   string              `json:"workplaceID"`
	Name          string              `json:"name"`
	AccountID     string              `json:"accountID"`
	TaxRateID     *string             `json:"taxRateID,omitempty"`
	Trigger       domain.Trigger      `json:"trigger"`
	SaleSubtype   *domain.SaleSubtype `json:"saleSubtype,omitempty"`
	SourceField   domain.SourceField  `json:"sourceField"`
	Percentage    *decimal.Decimal    `json:"percentage,omitempty" swaggertype:"string"`
	IsActive      bool                `json:"isActive"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy string              `json:"lastUpdatedBy"`
}

// ListRulesResponse wraps the list of rules.
type ListRulesResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// ToRuleResponse converts a domain.Rule to RuleResponse DTO.
// The effective source field is reported even when the rule relies on the default.
func ToRuleResponse(r *domain.Rule) RuleResponse {
	return RuleResponse{
		RuleID:        r.RuleID,
		WorkplaceID:   r.WorkplaceID,
		Name:          r.Name,
		AccountID:     r.AccountID,
		TaxRateID:     r.TaxRateID,
		Trigger:       r.Trigger,
		SaleSubtype:   r.SaleSubtype,
		SourceField:   r.SelectedField(),
		Percentage:    r.Percentage,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

// ToListRulesResponse converts a slice of domain.Rule to ListRulesResponse
func ToListRulesResponse(rules []domain.Rule) ListRulesResponse {
	res := ListRulesResponse{Rules: make([]RuleResponse, len(rules))}
	for i := range rules {
		res.Rules[i] = ToRuleResponse(&rules[i])
	}
	return res
}
