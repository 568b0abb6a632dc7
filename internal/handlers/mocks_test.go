package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/dre_backoffice/internal/core/ports/services"
	"github.com/SscSPs/dre_backoffice/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ChartService ---
type MockChartService struct {
	mock.Mock
}

func (m *MockChartService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}
func (m *MockChartService) GetGroup(ctx context.Context, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockChartService) UpdateGroup(ctx context.Context, groupID string, req dto.UpdateGroupRequest, userID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockChartService) GetAccountByID(ctx context.Context, workplaceID string, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) ListAccounts(ctx context.Context, workplaceID string, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, workplaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockChartService) ListAccountsByGroup(ctx context.Context, workplaceID string, groupID string, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, workplaceID, groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockChartService) ListAccountsByKind(ctx context.Context, workplaceID string, kind domain.GroupKind, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, workplaceID, kind, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockChartService) FindAccountByLegacyName(ctx context.Context, workplaceID string, legacyName string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, legacyName, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) CreateAccount(ctx context.Context, workplaceID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) UpdateAccount(ctx context.Context, workplaceID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) DeactivateAccount(ctx context.Context, workplaceID string, accountID string, userID string) error {
	args := m.Called(ctx, workplaceID, accountID, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ChartSvcFacade = (*MockChartService)(nil)

// --- Mock TaxRateService ---
type MockTaxRateService struct {
	mock.Mock
}

func (m *MockTaxRateService) CreateTaxRate(ctx context.Context, workplaceID string, req dto.CreateTaxRateRequest, userID string) (*domain.TaxRate, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRate), args.Error(1)
}
func (m *MockTaxRateService) GetTaxRate(ctx context.Context, workplaceID string, taxRateID string, userID string) (*domain.TaxRate, error) {
	args := m.Called(ctx, workplaceID, taxRateID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRate), args.Error(1)
}
func (m *MockTaxRateService) ListTaxRates(ctx context.Context, workplaceID string, userID string) ([]domain.TaxRate, error) {
	args := m.Called(ctx, workplaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxRate), args.Error(1)
}
func (m *MockTaxRateService) UpdateTaxRate(ctx context.Context, workplaceID string, taxRateID string, req dto.UpdateTaxRateRequest, userID string) (*domain.TaxRate, error) {
	args := m.Called(ctx, workplaceID, taxRateID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRate), args.Error(1)
}
func (m *MockTaxRateService) DeactivateTaxRate(ctx context.Context, workplaceID string, taxRateID string, userID string) error {
	args := m.Called(ctx, workplaceID, taxRateID, userID)
	return args.Error(0)
}

var _ portssvc.TaxRateSvcFacade = (*MockTaxRateService)(nil)

// --- Mock RuleService ---
type MockRuleService struct {
	mock.Mock
}

func (m *MockRuleService) GetRule(ctx context.Context, workplaceID string, ruleID string, userID string) (*domain.Rule, error) {
	args := m.Called(ctx, workplaceID, ruleID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rule), args.Error(1)
}
func (m *MockRuleService) ListRules(ctx context.Context, workplaceID string, userID string) ([]domain.Rule, error) {
	args := m.Called(ctx, workplaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rule), args.Error(1)
}
func (m *MockRuleService) FindMatchingRules(ctx context.Context, workplaceID string, trigger domain.Trigger, subtype *domain.SaleSubtype) ([]domain.Rule, error) {
	args := m.Called(ctx, workplaceID, trigger, subtype)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rule), args.Error(1)
}
func (m *MockRuleService) CreateRule(ctx context.Context, workplaceID string, req dto.CreateRuleRequest, userID string) (*domain.Rule, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rule), args.Error(1)
}
func (m *MockRuleService) UpdateRule(ctx context.Context, workplaceID string, ruleID string, req dto.UpdateRuleRequest, userID string) (*domain.Rule, error) {
	args := m.Called(ctx, workplaceID, ruleID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rule), args.Error(1)
}
func (m *MockRuleService) DeactivateRule(ctx context.Context, workplaceID string, ruleID string, userID string) error {
	args := m.Called(ctx, workplaceID, ruleID, userID)
	return args.Error(0)
}

var _ portssvc.RuleSvcFacade = (*MockRuleService)(nil)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) PostEvent(ctx context.Context, event domain.BusinessEvent, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, event, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}
func (m *MockPostingService) ListEntriesByEvent(ctx context.Context, workplaceID string, eventID string, userID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, workplaceID, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) IncomeStatement(ctx context.Context, workplaceID string, start, end time.Time, userID string) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, workplaceID, start, end, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)
