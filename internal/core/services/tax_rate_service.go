package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/dre_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dre_backoffice/internal/core/ports/services"
	"github.com/SscSPs/dre_backoffice/internal/dto"
	"github.com/google/uuid"
)

type taxRateService struct {
	BaseService
	taxRateRepo portsrepo.TaxRateRepositoryFacade
}

// TaxRateServiceOption is a functional option for configuring the tax rate service
type TaxRateServiceOption func(*taxRateService)

// WithTaxRateWorkplaceAuthorizer sets the workplace authorizer for the tax rate service.
func WithTaxRateWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) TaxRateServiceOption {
	return func(s *taxRateService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// NewTaxRateService creates a new tax rate registry
func NewTaxRateService(repo portsrepo.TaxRateRepositoryFacade, options ...TaxRateServiceOption) portssvc.TaxRateSvcFacade {
	svc := &taxRateService{taxRateRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TaxRateSvcFacade = (*taxRateService)(nil)

func (s *taxRateService) CreateTaxRate(ctx context.Context, workplaceID string, req dto.CreateTaxRateRequest, userID string) (*domain.TaxRate, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to create tax rate",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	sigla := strings.ToUpper(strings.TrimSpace(req.Sigla))
	if sigla == "" {
		return nil, fmt.Errorf("%w: sigla is required", apperrors.ErrValidation)
	}
	if err := domain.ValidatePercentage(req.Percentage); err != nil {
		return nil, err
	}

	now := time.Now()
	rate := domain.TaxRate{
		TaxRateID:   uuid.NewString(),
		WorkplaceID: workplaceID,
		Sigla:       sigla,
		Name:        req.Name,
		Percentage:  req.Percentage,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.taxRateRepo.SaveTaxRate(ctx, rate); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save tax rate", slog.String("sigla", sigla))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Tax rate created successfully",
		slog.String("tax_rate_id", rate.TaxRateID),
		slog.String("sigla", sigla),
		slog.String("percentage", rate.Percentage.String()))
	return &rate, nil
}

func (s *taxRateService) GetTaxRate(ctx context.Context, workplaceID string, taxRateID string, userID string) (*domain.TaxRate, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	rate, err := s.taxRateRepo.FindTaxRateByID(ctx, workplaceID, taxRateID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find tax rate", slog.String("tax_rate_id", taxRateID))
		}
		return nil, err
	}
	return rate, nil
}

func (s *taxRateService) ListTaxRates(ctx context.Context, workplaceID string, userID string) ([]domain.TaxRate, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	rates, err := s.taxRateRepo.ListTaxRates(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tax rates", slog.String("workplace_id", workplaceID))
		return nil, fmt.Errorf("failed to list tax rates for workplace %s: %w", workplaceID, err)
	}
	if rates == nil {
		return []domain.TaxRate{}, nil
	}
	return rates, nil
}

func (s *taxRateService) UpdateTaxRate(ctx context.Context, workplaceID string, taxRateID string, req dto.UpdateTaxRateRequest, userID string) (*domain.TaxRate, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to update tax rate",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	rate, err := s.taxRateRepo.FindTaxRateByID(ctx, workplaceID, taxRateID)
	if err != nil {
		return nil, err
	}

	if req.Sigla != nil {
		sigla := strings.ToUpper(strings.TrimSpace(*req.Sigla))
		if sigla == "" {
			return nil, fmt.Errorf("%w: sigla is required", apperrors.ErrValidation)
		}
		rate.Sigla = sigla
	}
	if req.Name != nil {
		rate.Name = *req.Name
	}
	if req.Percentage != nil {
		if err := domain.ValidatePercentage(*req.Percentage); err != nil {
			return nil, err
		}
		rate.Percentage = *req.Percentage
	}
	if req.IsActive != nil {
		rate.IsActive = *req.IsActive
	}
	rate.LastUpdatedAt = time.Now()
	rate.LastUpdatedBy = userID

	if err := s.taxRateRepo.UpdateTaxRate(ctx, *rate); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update tax rate", slog.String("tax_rate_id", taxRateID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Tax rate updated successfully", slog.String("tax_rate_id", taxRateID))
	return rate, nil
}

func (s *taxRateService) DeactivateTaxRate(ctx context.Context, workplaceID string, taxRateID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.taxRateRepo.DeactivateTaxRate(ctx, workplaceID, taxRateID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to deactivate tax rate", slog.String("tax_rate_id", taxRateID))
		}
		return err
	}

	s.LogInfo(ctx, "Tax rate deactivated successfully", slog.String("tax_rate_id", taxRateID))
	return nil
}
