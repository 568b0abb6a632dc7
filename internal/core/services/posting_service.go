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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// postingService turns business events into ledger entries.
type postingService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	ruleRepo    portsrepo.RuleReader
	accountRepo portsrepo.AccountReader
	taxRateRepo portsrepo.TaxRateReader
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	now         func() time.Time
}

// PostingServiceOption is a functional option for configuring the posting service
type PostingServiceOption func(*postingService)

// WithPostingWorkplaceAuthorizer sets the workplace authorizer for the posting service.
func WithPostingWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) PostingServiceOption {
	return func(s *postingService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// WithPostingClock overrides the clock used for entry creation timestamps.
func WithPostingClock(now func() time.Time) PostingServiceOption {
	return func(s *postingService) {
		s.now = now
	}
}

// NewPostingService creates the posting engine.
func NewPostingService(
	txManager portsrepo.TransactionManager,
	ruleRepo portsrepo.RuleReader,
	accountRepo portsrepo.AccountReader,
	taxRateRepo portsrepo.TaxRateReader,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	options ...PostingServiceOption,
) portssvc.PostingSvcFacade {
	svc := &postingService{
		txManager:   txManager,
		ruleRepo:    ruleRepo,
		accountRepo: accountRepo,
		taxRateRepo: taxRateRepo,
		ledgerRepo:  ledgerRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// PostEvent resolves the active rules for the event's trigger and subtype and
// writes one ledger entry per rule. All entries of an event commit together or
// not at all.
func (s *postingService) PostEvent(ctx context.Context, event domain.BusinessEvent, userID string) (*domain.PostingResult, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, event.WorkplaceID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to post events",
			slog.String("user_id", userID),
			slog.String("workplace_id", event.WorkplaceID))
		return nil, err
	}

	logger := s.GetLogger(ctx).With(
		slog.String("workplace_id", event.WorkplaceID),
		slog.String("event_id", event.EventID),
		slog.String("trigger", string(event.Trigger)))

	result := &domain.PostingResult{
		WorkplaceID: event.WorkplaceID,
		EventID:     event.EventID,
		Trigger:     event.Trigger,
		Entries:     []domain.LedgerEntry{},
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		rules, err := s.ruleRepo.FindMatchingRules(txCtx, event.WorkplaceID, event.Trigger, event.SaleSubtype)
		if err != nil {
			return fmt.Errorf("failed to resolve rules: %w", err)
		}
		if len(rules) == 0 {
			return nil
		}

		createdAt := s.now()
		postingDate := domain.DateOnly(event.OccurredAt)
		for _, rule := range rules {
			amount, err := s.computeAmount(txCtx, event, rule)
			if err != nil {
				return err
			}

			// Soft-deleted accounts still receive postings; only missing ones abort.
			if _, err := s.accountRepo.FindAccountByID(txCtx, event.WorkplaceID, rule.AccountID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return fmt.Errorf("%w: account %s referenced by rule %q", apperrors.ErrNotFound, rule.AccountID, rule.Name)
				}
				return fmt.Errorf("failed to load account %s: %w", rule.AccountID, err)
			}

			entry := domain.LedgerEntry{
				EntryID:     uuid.NewString(),
				WorkplaceID: event.WorkplaceID,
				AccountID:   rule.AccountID,
				RuleID:      rule.RuleID,
				EventID:     event.EventID,
				Trigger:     event.Trigger,
				Amount:      amount,
				PostingDate: postingDate,
				Description: entryDescription(event, rule),
				CreatedAt:   createdAt,
				CreatedBy:   userID,
			}
			if err := s.ledgerRepo.SaveLedgerEntry(txCtx, entry); err != nil {
				if errors.Is(err, apperrors.ErrDuplicate) {
					return fmt.Errorf("%w: event %s was already posted by rule %q", apperrors.ErrDuplicate, event.EventID, rule.Name)
				}
				return fmt.Errorf("failed to save ledger entry for rule %q: %w", rule.Name, err)
			}
			result.Entries = append(result.Entries, entry)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Posting failed, no entries were written", slog.String("error", err.Error()))
		} else {
			logger.Warn("Posting rejected", slog.String("error", err.Error()))
		}
		return nil, err
	}

	if len(result.Entries) == 0 {
		logger.Warn("No active rule matched the event, nothing was posted")
		return result, nil
	}

	logger.Info("Event posted successfully", slog.Int("entry_count", len(result.Entries)))
	return result, nil
}

// computeAmount applies the rule's percentage to the selected source field.
// An explicit percentage wins over the tax rate; with neither the amount
// passes through unchanged.
func (s *postingService) computeAmount(ctx context.Context, event domain.BusinessEvent, rule domain.Rule) (decimal.Decimal, error) {
	field := rule.SelectedField()
	base, ok := event.Amount(field)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: rule %q reads %s which the event does not carry", apperrors.ErrValidation, rule.Name, field)
	}

	switch {
	case rule.Percentage != nil:
		return domain.ApplyPercentage(base, *rule.Percentage), nil
	case rule.TaxRateID != nil:
		rate, err := s.taxRateRepo.FindTaxRateByID(ctx, event.WorkplaceID, *rule.TaxRateID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return decimal.Zero, fmt.Errorf("%w: tax rate %s referenced by rule %q", apperrors.ErrNotFound, *rule.TaxRateID, rule.Name)
			}
			return decimal.Zero, fmt.Errorf("failed to load tax rate %s: %w", *rule.TaxRateID, err)
		}
		return domain.ApplyPercentage(base, rate.Percentage), nil
	default:
		return domain.RoundAmount(base), nil
	}
}

func entryDescription(event domain.BusinessEvent, rule domain.Rule) string {
	if event.Description == "" {
		return rule.Name
	}
	return fmt.Sprintf("%s: %s", rule.Name, event.Description)
}

func (s *postingService) ListEntriesByEvent(ctx context.Context, workplaceID string, eventID string, userID string) ([]domain.LedgerEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.ListEntriesByEvent(ctx, workplaceID, eventID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries",
			slog.String("workplace_id", workplaceID),
			slog.String("event_id", eventID))
		return nil, fmt.Errorf("failed to list entries for event %s: %w", eventID, err)
	}
	if entries == nil {
		return []domain.LedgerEntry{}, nil
	}
	return entries, nil
}
