package services

import (
	"context"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/SscSPs/dre_backoffice/internal/dto"
)

// RuleReaderSvc defines read operations for posting rules
type RuleReaderSvc interface {
	GetRule(ctx context.Context, workplaceID string, ruleID string, userID string) (*domain.Rule, error)
	ListRules(ctx context.Context, workplaceID string, userID string) ([]domain.Rule, error)

	// FindMatchingRules returns the active rules a posting for trigger and subtype would apply.
	FindMatchingRules(ctx context.Context, workplaceID string, trigger domain.Trigger, subtype *domain.SaleSubtype) ([]domain.Rule, error)
}

// RuleWriterSvc defines write operations for posting rules
type RuleWriterSvc interface {
	CreateRule(ctx context.Context, workplaceID string, req dto.CreateRuleRequest, userID string) (*domain.Rule, error)
	UpdateRule(ctx context.Context, workplaceID string, ruleID string, req dto.UpdateRuleRequest, userID string) (*domain.Rule, error)
	DeactivateRule(ctx context.Context, workplaceID string, ruleID string, userID string) error
}

// RuleSvcFacade combines all rule-related service interfaces
type RuleSvcFacade interface {
	RuleReaderSvc
	RuleWriterSvc
}
