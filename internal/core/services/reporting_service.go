package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/dre_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dre_backoffice/internal/core/ports/services"
	"github.com/SscSPs/dre_backoffice/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingWorkplaceAuthorizer sets the workplace authorizer for the reporting service.
func WithReportingWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// IncomeStatement aggregates the ledger for [start, end] (both inclusive, day
// granularity) into the group tree and the derived totals.
func (s *reportingService) IncomeStatement(ctx context.Context, workplaceID string, start, end time.Time, userID string) (*domain.IncomeStatement, error) {
	// ReadOnly is sufficient for viewing reports
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view income statement",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", apperrors.ErrValidation)
	}
	start, end = domain.DateOnly(start), domain.DateOnly(end)
	if start.After(end) {
		return nil, fmt.Errorf("%w: start date %s is after end date %s", apperrors.ErrValidation,
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	rows, err := s.reportingRepo.GetAccountTotals(ctx, workplaceID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve account totals",
			slog.String("workplace_id", workplaceID),
			slog.String("start", start.Format(time.DateOnly)),
			slog.String("end", end.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve account totals: %w", err)
	}

	statement, err := accounting.BuildIncomeStatement(workplaceID, rows, domain.Period{Start: start, End: end})
	if err != nil {
		s.LogError(ctx, err, "Failed to build income statement", slog.String("workplace_id", workplaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Income statement generated successfully",
		slog.String("workplace_id", workplaceID),
		slog.String("start", start.Format(time.DateOnly)),
		slog.String("end", end.Format(time.DateOnly)),
		slog.Int("account_count", len(statement.Lines)),
		slog.String("operating_profit", statement.Totals.OperatingProfit.String()))
	return statement, nil
}
