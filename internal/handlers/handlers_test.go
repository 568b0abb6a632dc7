package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/SscSPs/dre_backoffice/internal/dto"
	"github.com/SscSPs/dre_backoffice/internal/handlers"
	"github.com/SscSPs/dre_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	chartSvc      *MockChartService
	taxRateSvc    *MockTaxRateService
	ruleSvc       *MockRuleService
	postingSvc    *MockPostingService
	reportingSvc  *MockReportingService
	jwtSecret     string
	userID        string
	operatorID    string
	workplaceID   string
	workplaceBase string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "dre-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.operatorID = suite.userID
	suite.workplaceID = uuid.NewString()
	suite.workplaceBase = "/api/v1/workplaces/" + suite.workplaceID

	suite.chartSvc = new(MockChartService)
	suite.taxRateSvc = new(MockTaxRateService)
	suite.ruleSvc = new(MockRuleService)
	suite.postingSvc = new(MockPostingService)
	suite.reportingSvc = new(MockReportingService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterGroupRoutes(v1, suite.chartSvc, suite.operatorID)
	wp := v1.Group("/workplaces/:workplace_id")
	handlers.RegisterAccountRoutes(wp, suite.chartSvc)
	handlers.RegisterTaxRateRoutes(wp, suite.taxRateSvc)
	handlers.RegisterRuleRoutes(wp, suite.ruleSvc)
	handlers.RegisterPostingRoutes(wp, suite.postingSvc)
	handlers.RegisterReportingRoutes(wp, suite.reportingSvc)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.chartSvc.AssertExpectations(suite.T())
	suite.taxRateSvc.AssertExpectations(suite.T())
	suite.ruleSvc.AssertExpectations(suite.T())
	suite.postingSvc.AssertExpectations(suite.T())
	suite.reportingSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	return suite.doAs(suite.userID, method, url, body)
}

func (suite *HandlerTestSuite) doAs(userID, method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, target any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), target), w.Body.String())
}

// --- Auth ---

func (suite *HandlerTestSuite) TestMissingTokenIsUnauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dre/groups", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.chartSvc.AssertNotCalled(suite.T(), "ListGroups", mock.Anything)
}

// --- Groups ---

func (suite *HandlerTestSuite) TestListGroups() {
	groups := append([]domain.Group(nil), domain.DefaultGroups()...)
	suite.chartSvc.On("ListGroups", mock.Anything).Return(groups, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/dre/groups", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListGroupsResponse
	suite.decode(w, &body)
	suite.Len(body.Groups, len(groups))
	suite.Equal(groups[0].Code, body.Groups[0].Code)
}

func (suite *HandlerTestSuite) TestUpdateGroupKindLocked() {
	groupID := uuid.NewString()
	kind := domain.KindCost
	suite.chartSvc.On("UpdateGroup", mock.Anything, groupID, dto.UpdateGroupRequest{Kind: &kind}, suite.userID).
		Return(nil, fmt.Errorf("%w: group has ledger entries", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPut, "/api/v1/dre/groups/"+groupID, gin.H{"kind": "COST"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateGroupRejectsUnknownKind() {
	w := suite.do(http.MethodPut, "/api/v1/dre/groups/"+uuid.NewString(), gin.H{"kind": "ASSET"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.chartSvc.AssertNotCalled(suite.T(), "UpdateGroup", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestUpdateGroupRequiresOperator() {
	w := suite.doAs(uuid.NewString(), http.MethodPut, "/api/v1/dre/groups/"+uuid.NewString(), gin.H{"isActive": false})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.chartSvc.AssertNotCalled(suite.T(), "UpdateGroup", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListGroupsOpenToEveryUser() {
	suite.chartSvc.On("ListGroups", mock.Anything).Return(domain.DefaultGroups(), nil).Once()

	w := suite.doAs(uuid.NewString(), http.MethodGet, "/api/v1/dre/groups", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func TestRequireOperatorWithoutOperatorRejectsEveryone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := "test-secret-key-that-is-long-enough"
	chartSvc := new(MockChartService)
	router := gin.New()
	handlers.RegisterGroupRoutes(router.Group("/api/v1", middleware.AuthMiddleware(secret)), chartSvc, "")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "system",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/dre/groups/"+uuid.NewString(), bytes.NewReader([]byte(`{"name":"X"}`)))
	req.Header.Set("Authorization", "Bearer "+signed)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	chartSvc.AssertNotCalled(t, "UpdateGroup", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Accounts ---

func (suite *HandlerTestSuite) TestCreateAccount() {
	req := dto.CreateAccountRequest{GroupID: uuid.NewString(), Name: "IVA Débito", DisplayOrder: 1}
	created := &domain.Account{
		AccountID:   uuid.NewString(),
		WorkplaceID: suite.workplaceID,
		GroupID:     req.GroupID,
		Name:        req.Name,
		IsActive:    true,
	}
	suite.chartSvc.On("CreateAccount", mock.Anything, suite.workplaceID, req, suite.userID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, suite.workplaceBase+"/dre/accounts", req)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.AccountResponse
	suite.decode(w, &body)
	suite.Equal(created.AccountID, body.AccountID)
	suite.True(body.IsActive)
}

func (suite *HandlerTestSuite) TestCreateAccountDuplicateNameIsConflict() {
	req := dto.CreateAccountRequest{GroupID: uuid.NewString(), Name: "Fretes"}
	suite.chartSvc.On("CreateAccount", mock.Anything, suite.workplaceID, req, suite.userID).
		Return(nil, fmt.Errorf("%w: account \"Fretes\"", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, suite.workplaceBase+"/dre/accounts", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAccountMissingName() {
	w := suite.do(http.MethodPost, suite.workplaceBase+"/dre/accounts", gin.H{"groupID": uuid.NewString()})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListAccountsByKind() {
	accounts := []domain.Account{{AccountID: uuid.NewString(), Name: "Vendas", IsActive: true}}
	suite.chartSvc.On("ListAccountsByKind", mock.Anything, suite.workplaceID, domain.KindRevenue, suite.userID).Return(accounts, nil).Once()

	w := suite.do(http.MethodGet, suite.workplaceBase+"/dre/accounts?kind=REVENUE", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListAccountsResponse
	suite.decode(w, &body)
	suite.Len(body.Accounts, 1)
	suite.chartSvc.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListAccountsByGroup() {
	groupID := uuid.NewString()
	suite.chartSvc.On("ListAccountsByGroup", mock.Anything, suite.workplaceID, groupID, suite.userID).Return([]domain.Account{}, nil).Once()

	w := suite.do(http.MethodGet, suite.workplaceBase+"/dre/accounts?groupID="+groupID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"accounts":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestListAccountsFiltersCannotBeCombined() {
	w := suite.do(http.MethodGet, suite.workplaceBase+"/dre/accounts?kind=COST&groupID=abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDeactivateAccount() {
	accountID := uuid.NewString()
	suite.chartSvc.On("DeactivateAccount", mock.Anything, suite.workplaceID, accountID, suite.userID).Return(nil).Once()

	w := suite.do(http.MethodDelete, suite.workplaceBase+"/dre/accounts/"+accountID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestGetAccountNotFound() {
	accountID := uuid.NewString()
	suite.chartSvc.On("GetAccountByID", mock.Anything, suite.workplaceID, accountID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, suite.workplaceBase+"/dre/accounts/"+accountID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestResolveLegacyName() {
	account := &domain.Account{AccountID: uuid.NewString(), Name: "Comissões", LegacyName: "COMISSAO", IsActive: true}
	suite.chartSvc.On("FindAccountByLegacyName", mock.Anything, suite.workplaceID, "COMISSAO", suite.userID).Return(account, nil).Once()

	w := suite.do(http.MethodGet, suite.workplaceBase+"/dre/legacy-names/COMISSAO", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.AccountResponse
	suite.decode(w, &body)
	suite.Equal(account.AccountID, body.AccountID)
	suite.Equal("COMISSAO", body.LegacyName)
}

// --- Tax rates ---

func (suite *HandlerTestSuite) TestCreateTaxRate() {
	rate := &domain.TaxRate{TaxRateID: uuid.NewString(), Sigla: "IVA", Name: "IVA", Percentage: decimal.NewFromInt(10), IsActive: true}
	suite.taxRateSvc.On("CreateTaxRate", mock.Anything, suite.workplaceID,
		mock.MatchedBy(func(r dto.CreateTaxRateRequest) bool {
			return r.Sigla == "IVA" && r.Percentage.Equal(decimal.NewFromInt(10))
		}), suite.userID).Return(rate, nil).Once()

	w := suite.do(http.MethodPost, suite.workplaceBase+"/dre/tax-rates", gin.H{"sigla": "IVA", "name": "IVA", "percentage": "10"})

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.TaxRateResponse
	suite.decode(w, &body)
	suite.Equal("IVA", body.Sigla)
	suite.True(decimal.NewFromInt(10).Equal(body.Percentage))
}

func (suite *HandlerTestSuite) TestCreateTaxRateRejectsPercentageAbove100() {
	w := suite.do(http.MethodPost, suite.workplaceBase+"/dre/tax-rates", gin.H{"sigla": "X", "name": "X", "percentage": "150"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.taxRateSvc.AssertNotCalled(suite.T(), "CreateTaxRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestDeactivateTaxRateAlreadyInactive() {
	taxRateID := uuid.NewString()
	suite.taxRateSvc.On("DeactivateTaxRate", mock.Anything, suite.workplaceID, taxRateID, suite.userID).
		Return(fmt.Errorf("%w: already inactive", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodDelete, suite.workplaceBase+"/dre/tax-rates/"+taxRateID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Rules ---

func (suite *HandlerTestSuite) TestCreateRuleForbidden() {
	suite.ruleSvc.On("CreateRule", mock.Anything, suite.workplaceID, mock.AnythingOfType("dto.CreateRuleRequest"), suite.userID).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodPost, suite.workplaceBase+"/dre/rules", gin.H{
		"name": "Gross sale", "accountID": uuid.NewString(), "trigger": "SALE_CONFIRMED",
	})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestCreateRuleRejectsUnknownTrigger() {
	w := suite.do(http.MethodPost, suite.workplaceBase+"/dre/rules", gin.H{
		"name": "Gross sale", "accountID": uuid.NewString(), "trigger": "SALE_SHIPPED",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateRuleReportsEffectiveSourceField() {
	rule := &domain.Rule{RuleID: uuid.NewString(), Name: "Gross sale", AccountID: uuid.NewString(), Trigger: domain.TriggerSaleConfirmed, IsActive: true}
	suite.ruleSvc.On("CreateRule", mock.Anything, suite.workplaceID, mock.AnythingOfType("dto.CreateRuleRequest"), suite.userID).Return(rule, nil).Once()

	w := suite.do(http.MethodPost, suite.workplaceBase+"/dre/rules", gin.H{
		"name": rule.Name, "accountID": rule.AccountID, "trigger": "SALE_CONFIRMED",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.RuleResponse
	suite.decode(w, &body)
	suite.Equal(domain.FieldTotalAmount, body.SourceField)
	suite.Nil(body.Percentage)
}

// --- Posting ---

func (suite *HandlerTestSuite) TestPostEvent() {
	occurredAt := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	result := &domain.PostingResult{
		WorkplaceID: suite.workplaceID,
		EventID:     "sale-1",
		Trigger:     domain.TriggerSaleConfirmed,
		Entries: []domain.LedgerEntry{{
			EntryID:     uuid.NewString(),
			AccountID:   uuid.NewString(),
			RuleID:      uuid.NewString(),
			EventID:     "sale-1",
			Trigger:     domain.TriggerSaleConfirmed,
			Amount:      decimal.NewFromInt(100),
			PostingDate: domain.DateOnly(occurredAt),
		}},
	}
	suite.postingSvc.On("PostEvent", mock.Anything,
		mock.MatchedBy(func(e domain.BusinessEvent) bool {
			total, ok := e.Amount(domain.FieldTotalAmount)
			_, hasFreight := e.Amount(domain.FieldFreightAmount)
			return e.WorkplaceID == suite.workplaceID &&
				e.EventID == "sale-1" &&
				e.SaleSubtype != nil && *e.SaleSubtype == domain.SubtypeDirect &&
				ok && total.Equal(decimal.NewFromInt(1000)) &&
				!hasFreight &&
				e.OccurredAt.Equal(occurredAt)
		}), suite.userID).Return(result, nil).Once()

	w := suite.do(http.MethodPost, suite.workplaceBase+"/dre/events", gin.H{
		"eventID":     "sale-1",
		"trigger":     "SALE_CONFIRMED",
		"saleSubtype": "DIRECT",
		"occurredAt":  occurredAt.Format(time.RFC3339),
		"totalAmount": "1000.00",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.PostingResultResponse
	suite.decode(w, &body)
	suite.Require().Len(body.Entries, 1)
	suite.Equal("2024-03-15", body.Entries[0].PostingDate)
	suite.True(decimal.NewFromInt(100).Equal(body.Entries[0].Amount))
}

func (suite *HandlerTestSuite) TestPostEventWithoutMatchingRule() {
	suite.postingSvc.On("PostEvent", mock.Anything, mock.AnythingOfType("domain.BusinessEvent"), suite.userID).
		Return(&domain.PostingResult{EventID: "exp-1", Trigger: domain.TriggerExpenseRecorded, Entries: []domain.LedgerEntry{}}, nil).Once()

	w := suite.do(http.MethodPost, suite.workplaceBase+"/dre/events", gin.H{
		"eventID": "exp-1", "trigger": "EXPENSE_RECORDED", "totalAmount": 50,
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"eventID":"exp-1","trigger":"EXPENSE_RECORDED","entries":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestPostEventTwiceIsConflict() {
	suite.postingSvc.On("PostEvent", mock.Anything, mock.AnythingOfType("domain.BusinessEvent"), suite.userID).
		Return(nil, fmt.Errorf("%w: event sale-1 already posted", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, suite.workplaceBase+"/dre/events", gin.H{
		"eventID": "sale-1", "trigger": "SALE_CONFIRMED", "totalAmount": "10",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestPostEventStorageFailureIsHidden() {
	suite.postingSvc.On("PostEvent", mock.Anything, mock.AnythingOfType("domain.BusinessEvent"), suite.userID).
		Return(nil, fmt.Errorf("connection reset by peer")).Once()

	w := suite.do(http.MethodPost, suite.workplaceBase+"/dre/events", gin.H{
		"eventID": "sale-1", "trigger": "SALE_CONFIRMED", "totalAmount": "10",
	})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection reset")
}

func (suite *HandlerTestSuite) TestListEntriesByEvent() {
	suite.postingSvc.On("ListEntriesByEvent", mock.Anything, suite.workplaceID, "sale-1", suite.userID).Return([]domain.LedgerEntry{}, nil).Once()

	w := suite.do(http.MethodGet, suite.workplaceBase+"/dre/events/sale-1/entries", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"entries":[]}`, w.Body.String())
}

// --- Reporting ---

func (suite *HandlerTestSuite) TestIncomeStatement() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	statement := &domain.IncomeStatement{
		WorkplaceID: suite.workplaceID,
		Period:      domain.Period{Start: start, End: end},
		Lines:       []domain.AccountTotal{},
		Groups:      []domain.GroupStatement{},
		Totals: domain.StatementTotals{
			GrossRevenue:    decimal.NewFromInt(1000),
			Deductions:      decimal.NewFromInt(100),
			NetRevenue:      decimal.NewFromInt(900),
			Costs:           decimal.Zero,
			GrossProfit:     decimal.NewFromInt(900),
			Expenses:        decimal.Zero,
			OperatingProfit: decimal.NewFromInt(900),
		},
	}
	sameDay := func(want time.Time) any {
		return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
	}
	suite.reportingSvc.On("IncomeStatement", mock.Anything, suite.workplaceID, sameDay(start), sameDay(end), suite.userID).Return(statement, nil).Once()

	w := suite.do(http.MethodGet, suite.workplaceBase+"/reports/income-statement?startDate=2024-01-01&endDate=2024-01-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.IncomeStatementResponse
	suite.decode(w, &body)
	suite.Equal(dto.PeriodResponse{Start: "2024-01-01", End: "2024-01-31"}, body.Period)
	suite.Equal("900", body.Totals.NetRevenue.String())
	suite.Equal("900", body.Totals.OperatingProfit.String())
}

func (suite *HandlerTestSuite) TestIncomeStatementBadDate() {
	w := suite.do(http.MethodGet, suite.workplaceBase+"/reports/income-statement?startDate=01/01/2024&endDate=2024-01-31", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestIncomeStatementRequiresBothDates() {
	w := suite.do(http.MethodGet, suite.workplaceBase+"/reports/income-statement?startDate=2024-01-01", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestIncomeStatementInvertedPeriod() {
	suite.reportingSvc.On("IncomeStatement", mock.Anything, suite.workplaceID, mock.Anything, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: start date after end date", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodGet, suite.workplaceBase+"/reports/income-statement?startDate=2024-02-01&endDate=2024-01-01", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
