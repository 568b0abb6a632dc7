package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
)

// RuleReader defines read operations for posting rules
type RuleReader interface {
	// FindRuleByID retrieves a rule of the workplace, active or not.
	FindRuleByID(ctx context.Context, workplaceID string, ruleID string) (*domain.Rule, error)

	// ListRules retrieves every rule of a workplace ordered by name.
	ListRules(ctx context.Context, workplaceID string) ([]domain.Rule, error)

	// FindMatchingRules retrieves the active rules for trigger whose subtype
	// filter is unset or equal to subtype, ordered by name.
	FindMatchingRules(ctx context.Context, workplaceID string, trigger domain.Trigger, subtype *domain.SaleSubtype) ([]domain.Rule, error)
}

// RuleWriter defines write operations for posting rules
type RuleWriter interface {
	// SaveRule persists a new rule. Returns ErrDuplicate on name collision.
	SaveRule(ctx context.Context, rule domain.Rule) error

	// UpdateRule updates an existing rule.
	UpdateRule(ctx context.Context, rule domain.Rule) error

	// DeactivateRule stops future postings for a rule.
	DeactivateRule(ctx context.Context, workplaceID string, ruleID string, userID string, now time.Time) error
}

// RuleRepositoryFacade combines all rule-related repository interfaces
type RuleRepositoryFacade interface {
	RuleReader
	RuleWriter
}
