package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/dre_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dre_backoffice/internal/core/ports/services"
	"github.com/SscSPs/dre_backoffice/internal/core/services"
	"github.com/SscSPs/dre_backoffice/internal/dto"
	"github.com/SscSPs/dre_backoffice/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// failingLedger lets the first failAfter saves through and fails the rest.
type failingLedger struct {
	portsrepo.LedgerRepositoryFacade
	failAfter int
	saves     int
}

var errDiskFull = errors.New("disk full")

func (f *failingLedger) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	f.saves++
	if f.saves > f.failAfter {
		return errDiskFull
	}
	return f.LedgerRepositoryFacade.SaveLedgerEntry(ctx, entry)
}

type PostingEngineTestSuite struct {
	suite.Suite
	ctx         context.Context
	store       *memory.Store
	container   *portssvc.ServiceContainer
	workplaceID string
	userID      string

	grossSales *domain.Account
	ivaOnSales *domain.Account
	freight    *domain.Account
	iva        *domain.TaxRate
	jan        time.Time
}

func (suite *PostingEngineTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.New()
	suite.container = services.NewServiceContainer(memory.NewRepositoryProvider(suite.store), nil)
	suite.workplaceID = "wp-1"
	suite.userID = "user-1"
	suite.jan = time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC)

	groups := domain.DefaultGroups()
	suite.grossSales = suite.createAccount(groups[0].GroupID, "Gross Sales")
	suite.ivaOnSales = suite.createAccount(groups[1].GroupID, "IVA on Sales")
	suite.freight = suite.createAccount(groups[3].GroupID, "Freight")

	var err error
	suite.iva, err = suite.container.TaxRate.CreateTaxRate(suite.ctx, suite.workplaceID, dto.CreateTaxRateRequest{
		Sigla: "IVA", Name: "Value added tax", Percentage: mustDecimal("10"),
	}, suite.userID)
	suite.Require().NoError(err)
}

func (suite *PostingEngineTestSuite) createAccount(groupID, name string) *domain.Account {
	acc, err := suite.container.Chart.CreateAccount(suite.ctx, suite.workplaceID, dto.CreateAccountRequest{
		GroupID: groupID,
		Name:    name,
	}, suite.userID)
	suite.Require().NoError(err)
	return acc
}

func (suite *PostingEngineTestSuite) createRule(req dto.CreateRuleRequest) *domain.Rule {
	rule, err := suite.container.Rule.CreateRule(suite.ctx, suite.workplaceID, req, suite.userID)
	suite.Require().NoError(err)
	return rule
}

func (suite *PostingEngineTestSuite) saleRules() {
	suite.createRule(dto.CreateRuleRequest{
		Name: "Gross sales", AccountID: suite.grossSales.AccountID, Trigger: domain.TriggerSaleConfirmed,
	})
	suite.createRule(dto.CreateRuleRequest{
		Name: "IVA on sales", AccountID: suite.ivaOnSales.AccountID, Trigger: domain.TriggerSaleConfirmed,
		TaxRateID: &suite.iva.TaxRateID,
	})
}

func (suite *PostingEngineTestSuite) sale(eventID, total string) domain.BusinessEvent {
	return domain.BusinessEvent{
		WorkplaceID: suite.workplaceID,
		EventID:     eventID,
		Trigger:     domain.TriggerSaleConfirmed,
		SaleSubtype: ptr(domain.SubtypeDirect),
		OccurredAt:  suite.jan,
		Amounts:     map[domain.SourceField]decimal.Decimal{domain.FieldTotalAmount: mustDecimal(total)},
	}
}

func (suite *PostingEngineTestSuite) statement() *domain.IncomeStatement {
	stmt, err := suite.container.Reporting.IncomeStatement(suite.ctx, suite.workplaceID,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		suite.userID)
	suite.Require().NoError(err)
	return stmt
}

func (suite *PostingEngineTestSuite) TestSaleWithIVA() {
	suite.saleRules()

	result, err := suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1", "1000"), suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(result.Entries, 2)

	byAccount := map[string]domain.LedgerEntry{}
	for _, e := range result.Entries {
		byAccount[e.AccountID] = e
		suite.Equal(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), e.PostingDate)
		suite.Equal(suite.userID, e.CreatedBy)
	}
	suite.Equal("1000", byAccount[suite.grossSales.AccountID].Amount.String())
	suite.Equal("100", byAccount[suite.ivaOnSales.AccountID].Amount.String())

	stmt := suite.statement()
	suite.Equal("1000", stmt.Totals.GrossRevenue.String())
	suite.Equal("100", stmt.Totals.Deductions.String())
	suite.Equal("900", stmt.Totals.NetRevenue.String())
	suite.Equal("900", stmt.Totals.OperatingProfit.String())

	listed, err := suite.container.Posting.ListEntriesByEvent(suite.ctx, suite.workplaceID, "sale-1", suite.userID)
	suite.Require().NoError(err)
	suite.Len(listed, 2)
}

func (suite *PostingEngineTestSuite) TestSaleWithIVAPostedOnInvoice() {
	suite.createRule(dto.CreateRuleRequest{
		Name: "Gross sales", AccountID: suite.grossSales.AccountID, Trigger: domain.TriggerSaleConfirmed,
	})
	suite.createRule(dto.CreateRuleRequest{
		Name: "IVA on invoice", AccountID: suite.ivaOnSales.AccountID, Trigger: domain.TriggerSaleInvoiced,
		TaxRateID: &suite.iva.TaxRateID,
	})

	confirmed, err := suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1", "1000"), suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(confirmed.Entries, 1)
	suite.Equal(suite.grossSales.AccountID, confirmed.Entries[0].AccountID)
	suite.Equal("1000", confirmed.Entries[0].Amount.String())

	invoice := suite.sale("invoice-1", "1000")
	invoice.Trigger = domain.TriggerSaleInvoiced
	invoiced, err := suite.container.Posting.PostEvent(suite.ctx, invoice, suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(invoiced.Entries, 1)
	suite.Equal(suite.ivaOnSales.AccountID, invoiced.Entries[0].AccountID)
	suite.Equal("100", invoiced.Entries[0].Amount.String())

	stmt := suite.statement()
	suite.Equal("1000", stmt.Totals.GrossRevenue.String())
	suite.Equal("100", stmt.Totals.Deductions.String())
	suite.Equal("900", stmt.Totals.NetRevenue.String())
}

func (suite *PostingEngineTestSuite) TestRulePercentageScaleIsBounded() {
	_, err := suite.container.Rule.CreateRule(suite.ctx, suite.workplaceID, dto.CreateRuleRequest{
		Name: "Too precise", AccountID: suite.grossSales.AccountID, Trigger: domain.TriggerSaleConfirmed,
		Percentage: ptr(mustDecimal("12.34567")),
	}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	rule := suite.createRule(dto.CreateRuleRequest{
		Name: "Commission", AccountID: suite.grossSales.AccountID, Trigger: domain.TriggerSaleConfirmed,
		Percentage: ptr(mustDecimal("12.3457")),
	})
	_, err = suite.container.Rule.UpdateRule(suite.ctx, suite.workplaceID, rule.RuleID, dto.UpdateRuleRequest{
		Percentage: ptr(mustDecimal("12.34567")),
	}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	result, err := suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1", "1000000"), suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(result.Entries, 1)
	suite.Equal("123457", result.Entries[0].Amount.String())
}

func (suite *PostingEngineTestSuite) TestNoMatchingRulePostsNothing() {
	result, err := suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1", "1000"), suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(result.Entries)
	suite.Empty(result.Entries)
	suite.Empty(suite.statement().Lines)
}

func (suite *PostingEngineTestSuite) TestOverlappingRulesAllPost() {
	suite.createRule(dto.CreateRuleRequest{
		Name: "A - any sale", AccountID: suite.grossSales.AccountID, Trigger: domain.TriggerSaleConfirmed,
	})
	suite.createRule(dto.CreateRuleRequest{
		Name: "B - direct sales", AccountID: suite.grossSales.AccountID, Trigger: domain.TriggerSaleConfirmed,
		SaleSubtype: ptr(domain.SubtypeDirect), Percentage: ptr(mustDecimal("50")),
	})
	suite.createRule(dto.CreateRuleRequest{
		Name: "C - gifts only", AccountID: suite.grossSales.AccountID, Trigger: domain.TriggerSaleConfirmed,
		SaleSubtype: ptr(domain.SubtypeGift),
	})

	result, err := suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1", "200"), suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(result.Entries, 2)
	suite.Equal("200", result.Entries[0].Amount.String())
	suite.Equal("100", result.Entries[1].Amount.String())

	suite.Equal("300", suite.statement().Totals.GrossRevenue.String())
}

func (suite *PostingEngineTestSuite) TestExplicitPercentageWinsOverTaxRate() {
	suite.createRule(dto.CreateRuleRequest{
		Name: "Reduced IVA", AccountID: suite.ivaOnSales.AccountID, Trigger: domain.TriggerSaleConfirmed,
		TaxRateID: &suite.iva.TaxRateID, Percentage: ptr(mustDecimal("4.5")),
	})

	result, err := suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1", "333.33"), suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(result.Entries, 1)
	// 333.33 * 4.5% = 14.99985
	suite.Equal("15", result.Entries[0].Amount.String())
}

func (suite *PostingEngineTestSuite) TestSourceFieldSelection() {
	suite.createRule(dto.CreateRuleRequest{
		Name: "Freight out", AccountID: suite.freight.AccountID, Trigger: domain.TriggerSaleConfirmed,
		SourceField: ptr(domain.FieldFreightAmount),
	})

	event := suite.sale("sale-1", "1000")
	event.Amounts[domain.FieldFreightAmount] = mustDecimal("35.555")

	result, err := suite.container.Posting.PostEvent(suite.ctx, event, suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(result.Entries, 1)
	suite.Equal("35.56", result.Entries[0].Amount.String())

	_, err = suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-2", "1000"), suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PostingEngineTestSuite) TestRepostingSameEventIsRejected() {
	suite.saleRules()

	_, err := suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1", "1000"), suite.userID)
	suite.Require().NoError(err)

	_, err = suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1", "1000"), suite.userID)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal("1000", suite.statement().Totals.GrossRevenue.String())
}

func (suite *PostingEngineTestSuite) TestFailedPostingLeavesNoEntries() {
	suite.saleRules()

	repos := memory.NewRepositoryProvider(suite.store)
	ledger := &failingLedger{LedgerRepositoryFacade: repos.LedgerRepo, failAfter: 1}
	engine := services.NewPostingService(repos.TxManager, repos.RuleRepo, repos.AccountRepo, repos.TaxRateRepo, ledger)

	_, err := engine.PostEvent(suite.ctx, suite.sale("sale-1", "1000"), suite.userID)
	suite.ErrorIs(err, errDiskFull)
	suite.Equal(2, ledger.saves)

	entries, err := suite.container.Posting.ListEntriesByEvent(suite.ctx, suite.workplaceID, "sale-1", suite.userID)
	suite.Require().NoError(err)
	suite.Empty(entries)

	stmt := suite.statement()
	suite.Empty(stmt.Lines)
	suite.True(stmt.Totals.GrossRevenue.IsZero())
}

func (suite *PostingEngineTestSuite) TestDeactivatedAccountKeepsHistoryAndReceivesPostings() {
	suite.saleRules()

	_, err := suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1", "1000"), suite.userID)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.container.Chart.DeactivateAccount(suite.ctx, suite.workplaceID, suite.grossSales.AccountID, suite.userID))

	accounts, err := suite.container.Chart.ListAccounts(suite.ctx, suite.workplaceID, suite.userID)
	suite.Require().NoError(err)
	for _, a := range accounts {
		suite.NotEqual(suite.grossSales.AccountID, a.AccountID)
	}

	_, err = suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-2", "500"), suite.userID)
	suite.Require().NoError(err)

	stmt := suite.statement()
	suite.Equal("1500", stmt.Totals.GrossRevenue.String())
	suite.Equal("150", stmt.Totals.Deductions.String())

	// A new active account may reuse the name once the old one is inactive.
	suite.createAccount(suite.grossSales.GroupID, suite.grossSales.Name)
}

func (suite *PostingEngineTestSuite) TestInactiveRuleDoesNotPost() {
	rule := suite.createRule(dto.CreateRuleRequest{
		Name: "Gross sales", AccountID: suite.grossSales.AccountID, Trigger: domain.TriggerSaleConfirmed,
	})
	suite.Require().NoError(suite.container.Rule.DeactivateRule(suite.ctx, suite.workplaceID, rule.RuleID, suite.userID))

	result, err := suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1", "1000"), suite.userID)
	suite.Require().NoError(err)
	suite.Empty(result.Entries)
}

func (suite *PostingEngineTestSuite) TestNegativeAdjustment() {
	suite.saleRules()

	_, err := suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1", "1000"), suite.userID)
	suite.Require().NoError(err)
	_, err = suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1-adj", "-250"), suite.userID)
	suite.Require().NoError(err)

	stmt := suite.statement()
	suite.Equal("750", stmt.Totals.GrossRevenue.String())
	suite.Equal("75", stmt.Totals.Deductions.String())
}

func (suite *PostingEngineTestSuite) TestPeriodBoundsAreInclusive() {
	suite.saleRules()

	for id, at := range map[string]time.Time{
		"first":  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		"last":   time.Date(2026, 1, 31, 23, 59, 0, 0, time.UTC),
		"before": time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC),
		"after":  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	} {
		event := suite.sale(id, "100")
		event.OccurredAt = at
		_, err := suite.container.Posting.PostEvent(suite.ctx, event, suite.userID)
		suite.Require().NoError(err)
	}

	suite.Equal("200", suite.statement().Totals.GrossRevenue.String())
}

func (suite *PostingEngineTestSuite) TestStatementIsIdempotent() {
	suite.saleRules()
	_, err := suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1", "1000"), suite.userID)
	suite.Require().NoError(err)

	first, err := json.Marshal(dto.ToIncomeStatementResponse(suite.statement()))
	suite.Require().NoError(err)
	second, err := json.Marshal(dto.ToIncomeStatementResponse(suite.statement()))
	suite.Require().NoError(err)
	suite.JSONEq(string(first), string(second))
}

func (suite *PostingEngineTestSuite) TestInvalidPeriod() {
	_, err := suite.container.Reporting.IncomeStatement(suite.ctx, suite.workplaceID,
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PostingEngineTestSuite) TestRuleReferencesMustExist() {
	_, err := suite.container.Rule.CreateRule(suite.ctx, suite.workplaceID, dto.CreateRuleRequest{
		Name: "Ghost", AccountID: "missing", Trigger: domain.TriggerSaleConfirmed,
	}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.container.Rule.CreateRule(suite.ctx, suite.workplaceID, dto.CreateRuleRequest{
		Name: "Ghost tax", AccountID: suite.grossSales.AccountID, Trigger: domain.TriggerSaleConfirmed,
		TaxRateID: ptr("missing"),
	}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.createRule(dto.CreateRuleRequest{Name: "Dup", AccountID: suite.grossSales.AccountID, Trigger: domain.TriggerSaleConfirmed})
	_, err = suite.container.Rule.CreateRule(suite.ctx, suite.workplaceID, dto.CreateRuleRequest{
		Name: "Dup", AccountID: suite.grossSales.AccountID, Trigger: domain.TriggerSaleInvoiced,
	}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *PostingEngineTestSuite) TestUpdateRuleClearsOptionalFields() {
	rule := suite.createRule(dto.CreateRuleRequest{
		Name: "IVA", AccountID: suite.ivaOnSales.AccountID, Trigger: domain.TriggerSaleConfirmed,
		TaxRateID: &suite.iva.TaxRateID, SaleSubtype: ptr(domain.SubtypeGift),
	})

	updated, err := suite.container.Rule.UpdateRule(suite.ctx, suite.workplaceID, rule.RuleID, dto.UpdateRuleRequest{
		ClearTaxRate:     true,
		ClearSaleSubtype: true,
		Percentage:       ptr(mustDecimal("12")),
	}, suite.userID)
	suite.Require().NoError(err)
	suite.Nil(updated.TaxRateID)
	suite.Nil(updated.SaleSubtype)
	suite.Equal("12", updated.Percentage.String())

	result, err := suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1", "100"), suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(result.Entries, 1)
	suite.Equal("12", result.Entries[0].Amount.String())
}

func (suite *PostingEngineTestSuite) TestWorkplacesAreIsolated() {
	suite.saleRules()
	_, err := suite.container.Posting.PostEvent(suite.ctx, suite.sale("sale-1", "1000"), suite.userID)
	suite.Require().NoError(err)

	other, err := suite.container.Reporting.IncomeStatement(suite.ctx, "wp-2",
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		suite.userID)
	suite.Require().NoError(err)
	suite.Empty(other.Lines)
}

func TestPostingEngineTestSuite(t *testing.T) {
	suite.Run(t, new(PostingEngineTestSuite))
}
