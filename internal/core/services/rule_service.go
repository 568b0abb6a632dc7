package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/dre_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dre_backoffice/internal/core/ports/services"
	"github.com/SscSPs/dre_backoffice/internal/dto"
	"github.com/google/uuid"
)

// ruleService implements the rule registry
type ruleService struct {
	BaseService
	ruleRepo    portsrepo.RuleRepositoryFacade
	accountRepo portsrepo.AccountReader
	taxRateRepo portsrepo.TaxRateReader
}

// RuleServiceOption is a functional option for configuring the rule service
type RuleServiceOption func(*ruleService)

// WithRuleWorkplaceAuthorizer sets the workplace authorizer for the rule service.
func WithRuleWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) RuleServiceOption {
	return func(s *ruleService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// NewRuleService creates a new rule registry. Account and tax rate readers are
// used to check the references a rule carries.
func NewRuleService(
	ruleRepo portsrepo.RuleRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	taxRateRepo portsrepo.TaxRateReader,
	options ...RuleServiceOption,
) portssvc.RuleSvcFacade {
	svc := &ruleService{
		ruleRepo:    ruleRepo,
		accountRepo: accountRepo,
		taxRateRepo: taxRateRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RuleSvcFacade = (*ruleService)(nil)

func (s *ruleService) CreateRule(ctx context.Context, workplaceID string, req dto.CreateRuleRequest, userID string) (*domain.Rule, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to create rule",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	now := time.Now()
	rule := domain.Rule{
		RuleID:      uuid.NewString(),
		WorkplaceID: workplaceID,
		AccountID:   req.AccountID,
		TaxRateID:   req.TaxRateID,
		Name:        req.Name,
		Trigger:     req.Trigger,
		SaleSubtype: req.SaleSubtype,
		SourceField: req.SourceField,
		Percentage:  req.Percentage,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.validateRule(ctx, rule); err != nil {
		return nil, err
	}

	if err := s.ruleRepo.SaveRule(ctx, rule); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save rule", slog.String("rule_name", rule.Name))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Rule created successfully",
		slog.String("rule_id", rule.RuleID),
		slog.String("trigger", string(rule.Trigger)),
		slog.String("account_id", rule.AccountID))
	return &rule, nil
}

func (s *ruleService) UpdateRule(ctx context.Context, workplaceID string, ruleID string, req dto.UpdateRuleRequest, userID string) (*domain.Rule, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to update rule",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	rule, err := s.ruleRepo.FindRuleByID(ctx, workplaceID, ruleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find rule for update", slog.String("rule_id", ruleID))
		}
		return nil, err
	}

	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.AccountID != nil {
		rule.AccountID = *req.AccountID
	}
	if req.ClearTaxRate {
		rule.TaxRateID = nil
	} else if req.TaxRateID != nil {
		rule.TaxRateID = req.TaxRateID
	}
	if req.Trigger != nil {
		rule.Trigger = *req.Trigger
	}
	if req.ClearSaleSubtype {
		rule.SaleSubtype = nil
	} else if req.SaleSubtype != nil {
		rule.SaleSubtype = req.SaleSubtype
	}
	if req.ClearSourceField {
		rule.SourceField = nil
	} else if req.SourceField != nil {
		rule.SourceField = req.SourceField
	}
	if req.ClearPercentage {
		rule.Percentage = nil
	} else if req.Percentage != nil {
		rule.Percentage = req.Percentage
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	rule.LastUpdatedAt = time.Now()
	rule.LastUpdatedBy = userID

	if err := s.validateRule(ctx, *rule); err != nil {
		return nil, err
	}

	if err := s.ruleRepo.UpdateRule(ctx, *rule); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update rule", slog.String("rule_id", ruleID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Rule updated successfully", slog.String("rule_id", ruleID))
	return rule, nil
}

func (s *ruleService) DeactivateRule(ctx context.Context, workplaceID string, ruleID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.ruleRepo.DeactivateRule(ctx, workplaceID, ruleID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to deactivate rule", slog.String("rule_id", ruleID))
		}
		return err
	}

	s.LogInfo(ctx, "Rule deactivated successfully", slog.String("rule_id", ruleID))
	return nil
}

func (s *ruleService) GetRule(ctx context.Context, workplaceID string, ruleID string, userID string) (*domain.Rule, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	rule, err := s.ruleRepo.FindRuleByID(ctx, workplaceID, ruleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find rule", slog.String("rule_id", ruleID))
		}
		return nil, err
	}
	return rule, nil
}

func (s *ruleService) ListRules(ctx context.Context, workplaceID string, userID string) ([]domain.Rule, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.ListRules(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rules", slog.String("workplace_id", workplaceID))
		return nil, fmt.Errorf("failed to list rules for workplace %s: %w", workplaceID, err)
	}
	if rules == nil {
		return []domain.Rule{}, nil
	}
	return rules, nil
}

func (s *ruleService) FindMatchingRules(ctx context.Context, workplaceID string, trigger domain.Trigger, subtype *domain.SaleSubtype) ([]domain.Rule, error) {
	if !trigger.IsValid() {
		return nil, fmt.Errorf("%w: unknown trigger type %q", apperrors.ErrValidation, trigger)
	}

	rules, err := s.ruleRepo.FindMatchingRules(ctx, workplaceID, trigger, subtype)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve matching rules",
			slog.String("workplace_id", workplaceID),
			slog.String("trigger", string(trigger)))
		return nil, fmt.Errorf("failed to resolve rules for trigger %s: %w", trigger, err)
	}
	if rules == nil {
		return []domain.Rule{}, nil
	}
	return rules, nil
}

// validateRule checks the rule's own fields, then that its account and tax
// rate exist in the workplace and are active.
func (s *ruleService) validateRule(ctx context.Context, rule domain.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, rule.WorkplaceID, rule.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, rule.AccountID)
		}
		return fmt.Errorf("failed to check rule account: %w", err)
	}
	if !account.IsActive {
		return fmt.Errorf("%w: account %s is inactive", apperrors.ErrNotFound, rule.AccountID)
	}

	if rule.TaxRateID != nil {
		rate, err := s.taxRateRepo.FindTaxRateByID(ctx, rule.WorkplaceID, *rule.TaxRateID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: tax rate %s", apperrors.ErrNotFound, *rule.TaxRateID)
			}
			return fmt.Errorf("failed to check rule tax rate: %w", err)
		}
		if !rate.IsActive {
			return fmt.Errorf("%w: tax rate %s is inactive", apperrors.ErrNotFound, rate.Sigla)
		}
	}
	return nil
}
