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

// chartService implements the ChartSvcFacade interface
type chartService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	groupRepo   portsrepo.GroupRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerRepo  portsrepo.LedgerReader
}

// ChartServiceOption is a functional option for configuring the chart service
type ChartServiceOption func(*chartService)

// WithChartWorkplaceAuthorizer sets the workplace authorizer for the chart service.
func WithChartWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) ChartServiceOption {
	return func(s *chartService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// NewChartService creates a new chart of accounts service with the provided options
func NewChartService(
	txManager portsrepo.TransactionManager,
	groupRepo portsrepo.GroupRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	ledgerRepo portsrepo.LedgerReader,
	options ...ChartServiceOption,
) portssvc.ChartSvcFacade {
	svc := &chartService{
		txManager:   txManager,
		groupRepo:   groupRepo,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure chartService implements the ChartSvcFacade interface
var _ portssvc.ChartSvcFacade = (*chartService)(nil)

func (s *chartService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	groups, err := s.groupRepo.ListGroups(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list groups")
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	if groups == nil {
		return []domain.Group{}, nil
	}
	return groups, nil
}

func (s *chartService) GetGroup(ctx context.Context, groupID string) (*domain.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find group by ID", slog.String("group_id", groupID))
		}
		return nil, err
	}
	return group, nil
}

// UpdateGroup applies req to a group. The entries check and the write share
// one transaction so a posting cannot slip in between them.
func (s *chartService) UpdateGroup(ctx context.Context, groupID string, req dto.UpdateGroupRequest, userID string) (*domain.Group, error) {
	if req.Kind != nil && !req.Kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown group kind %q", apperrors.ErrValidation, *req.Kind)
	}

	var group *domain.Group
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		group, err = s.GetGroup(txCtx, groupID)
		if err != nil {
			return err
		}

		if req.Kind != nil && *req.Kind != group.Kind {
			referenced, err := s.ledgerRepo.GroupHasEntries(txCtx, groupID)
			if err != nil {
				s.LogError(txCtx, err, "Failed to check ledger entries for group", slog.String("group_id", groupID))
				return fmt.Errorf("failed to check entries for group %s: %w", groupID, err)
			}
			if referenced {
				s.LogWarn(txCtx, "Rejected kind change on group with ledger entries",
					slog.String("group_id", groupID),
					slog.String("current_kind", string(group.Kind)),
					slog.String("requested_kind", string(*req.Kind)))
				return fmt.Errorf("%w: kind of group %s cannot change once entries reference it", apperrors.ErrValidation, group.Code)
			}
			group.Kind = *req.Kind
		}
		if req.Name != nil {
			group.Name = *req.Name
		}
		if req.DisplayOrder != nil {
			group.DisplayOrder = *req.DisplayOrder
		}
		if req.IsActive != nil {
			group.IsActive = *req.IsActive
		}
		group.LastUpdatedAt = time.Now()
		group.LastUpdatedBy = userID

		if err := s.groupRepo.UpdateGroup(txCtx, *group); err != nil {
			s.LogError(txCtx, err, "Failed to update group", slog.String("group_id", groupID))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Group updated successfully", slog.String("group_id", groupID))
	return group, nil
}

func (s *chartService) CreateAccount(ctx context.Context, workplaceID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to create account",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	if err := s.requireActiveGroup(ctx, req.GroupID); err != nil {
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		WorkplaceID:  workplaceID,
		GroupID:      req.GroupID,
		Code:         req.Code,
		Name:         req.Name,
		LegacyName:   req.LegacyName,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save account",
				slog.String("account_id", account.AccountID),
				slog.String("workplace_id", workplaceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("group_id", account.GroupID),
		slog.String("workplace_id", workplaceID))
	return &account, nil
}

func (s *chartService) UpdateAccount(ctx context.Context, workplaceID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to update account",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, workplaceID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for update", slog.String("account_id", accountID))
		}
		return nil, err
	}
	if !account.IsActive {
		// Soft-deleted accounts are hidden from everything but history.
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrNotFound, accountID)
	}

	if req.GroupID != nil && *req.GroupID != account.GroupID {
		if err := s.requireActiveGroup(ctx, *req.GroupID); err != nil {
			return nil, err
		}
		account.GroupID = *req.GroupID
	}
	if req.Code != nil {
		account.Code = *req.Code
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.LegacyName != nil {
		account.LegacyName = *req.LegacyName
	}
	if req.DisplayOrder != nil {
		account.DisplayOrder = *req.DisplayOrder
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.String("account_id", accountID),
		slog.String("workplace_id", workplaceID))
	return account, nil
}

func (s *chartService) DeactivateAccount(ctx context.Context, workplaceID string, accountID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to deactivate account",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return err
	}

	if err := s.accountRepo.DeactivateAccount(ctx, workplaceID, accountID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		}
		return err
	}

	s.LogInfo(ctx, "Account deactivated successfully",
		slog.String("account_id", accountID),
		slog.String("workplace_id", workplaceID))
	return nil
}

func (s *chartService) GetAccountByID(ctx context.Context, workplaceID string, accountID string, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view account",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, workplaceID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Account retrieved successfully", slog.String("account_id", accountID))
	return account, nil
}

func (s *chartService) ListAccounts(ctx context.Context, workplaceID string, userID string) ([]domain.Account, error) {
	return s.listAccounts(ctx, workplaceID, domain.AccountFilter{}, userID)
}

func (s *chartService) ListAccountsByGroup(ctx context.Context, workplaceID string, groupID string, userID string) ([]domain.Account, error) {
	return s.listAccounts(ctx, workplaceID, domain.AccountFilter{GroupID: &groupID}, userID)
}

func (s *chartService) ListAccountsByKind(ctx context.Context, workplaceID string, kind domain.GroupKind, userID string) ([]domain.Account, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown group kind %q", apperrors.ErrValidation, kind)
	}
	return s.listAccounts(ctx, workplaceID, domain.AccountFilter{Kind: &kind}, userID)
}

func (s *chartService) listAccounts(ctx context.Context, workplaceID string, filter domain.AccountFilter, userID string) ([]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to list accounts",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, workplaceID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("workplace_id", workplaceID))
		return nil, fmt.Errorf("failed to list accounts for workplace %s: %w", workplaceID, err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *chartService) FindAccountByLegacyName(ctx context.Context, workplaceID string, legacyName string, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to resolve legacy names",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}
	if legacyName == "" {
		return nil, fmt.Errorf("%w: legacy name is required", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByLegacyName(ctx, workplaceID, legacyName)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by legacy name", slog.String("legacy_name", legacyName))
		}
		return nil, err
	}
	return account, nil
}

func (s *chartService) requireActiveGroup(ctx context.Context, groupID string) error {
	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: group %s", apperrors.ErrNotFound, groupID)
		}
		return err
	}
	if !group.IsActive {
		return fmt.Errorf("%w: group %s is inactive", apperrors.ErrValidation, group.Code)
	}
	return nil
}
