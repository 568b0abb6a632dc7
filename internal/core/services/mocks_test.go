package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockGroupRepository is a mock type for the GroupRepositoryFacade interface
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupRepository) ListGroups(ctx context.Context) ([]domain.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *MockGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, workplaceID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByLegacyName(ctx context.Context, workplaceID string, legacyName string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, legacyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, workplaceID string, filter domain.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, workplaceID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, workplaceID string, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, workplaceID, accountID, userID, now)
	return args.Error(0)
}

// MockTransactionManager is a mock type for the TransactionManager interface.
// A nil error from the expectation runs fn with a context marked as in a transaction.
type MockTransactionManager struct {
	mock.Mock
}

type txMarker struct{}

func (m *MockTransactionManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(context.WithValue(ctx, txMarker{}, true))
}

// inTx matches a context handed out by MockTransactionManager.
var inTx = mock.MatchedBy(func(ctx context.Context) bool {
	marked, _ := ctx.Value(txMarker{}).(bool)
	return marked
})

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListEntriesByEvent(ctx context.Context, workplaceID string, eventID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, workplaceID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) GroupHasEntries(ctx context.Context, groupID string) (bool, error) {
	args := m.Called(ctx, groupID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockTaxRateRepository is a mock type for the TaxRateRepositoryFacade interface
type MockTaxRateRepository struct {
	mock.Mock
}

func (m *MockTaxRateRepository) FindTaxRateByID(ctx context.Context, workplaceID string, taxRateID string) (*domain.TaxRate, error) {
	args := m.Called(ctx, workplaceID, taxRateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateRepository) ListTaxRates(ctx context.Context, workplaceID string) ([]domain.TaxRate, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateRepository) SaveTaxRate(ctx context.Context, rate domain.TaxRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockTaxRateRepository) UpdateTaxRate(ctx context.Context, rate domain.TaxRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockTaxRateRepository) DeactivateTaxRate(ctx context.Context, workplaceID string, taxRateID string, userID string, now time.Time) error {
	args := m.Called(ctx, workplaceID, taxRateID, userID, now)
	return args.Error(0)
}

// MockWorkplaceAuthorizer is a mock type for the WorkplaceAuthorizerSvc interface
type MockWorkplaceAuthorizer struct {
	mock.Mock
}

func (m *MockWorkplaceAuthorizer) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	args := m.Called(ctx, userID, workplaceID, requiredRole)
	return args.Error(0)
}

func ptr[T any](v T) *T { return &v }
