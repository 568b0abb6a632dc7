package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/dre_backoffice/internal/core/ports/services"
	"github.com/SscSPs/dre_backoffice/internal/dto"
	"github.com/SscSPs/dre_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chartHandler handles HTTP requests related to the DRE chart of accounts.
type chartHandler struct {
	chartService portssvc.ChartSvcFacade
}

func newChartHandler(cs portssvc.ChartSvcFacade) *chartHandler {
	return &chartHandler{chartService: cs}
}

// RegisterGroupRoutes registers the routes of the shared DRE groups. Groups are
// shared by every workplace, so only operatorUserID may change them.
func RegisterGroupRoutes(rg *gin.RouterGroup, chartService portssvc.ChartSvcFacade, operatorUserID string) {
	RegisterValidators()
	h := newChartHandler(chartService)

	groups := rg.Group("/dre/groups")
	{
		groups.GET("", h.listGroups)
		groups.GET("/:groupID", h.getGroup)
		groups.PUT("/:groupID", middleware.RequireOperator(operatorUserID), h.updateGroup)
	}
}

// RegisterAccountRoutes registers account routes on a workplace-scoped group.
func RegisterAccountRoutes(rg *gin.RouterGroup, chartService portssvc.ChartSvcFacade) {
	RegisterValidators()
	h := newChartHandler(chartService)

	accounts := rg.Group("/dre/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.PUT("/:accountID", h.updateAccount)
		accounts.DELETE("/:accountID", h.deactivateAccount)
	}
	rg.GET("/dre/legacy-names/:legacyName", h.resolveLegacyName)
}

// listGroups godoc
// @Summary List DRE groups
// @Description Lists the fixed income-statement groups in display order
// @Tags dre-groups
// @Produce json
// @Success 200 {object} dto.ListGroupsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dre/groups [get]
func (h *chartHandler) listGroups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	groups, err := h.chartService.ListGroups(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "list groups")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGroupsResponse(groups))
}

// getGroup godoc
// @Summary Get a DRE group
// @Tags dre-groups
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {object} dto.GroupResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /dre/groups/{groupID} [get]
func (h *chartHandler) getGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("groupID")

	group, err := h.chartService.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("group_id", groupID)), err, "get group")
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// updateGroup godoc
// @Summary Update a DRE group
// @Description Renames, reorders, (de)activates or reclassifies a group. The kind is locked once entries exist under the group.
// @Tags dre-groups
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param group body dto.UpdateGroupRequest true "Fields to update"
// @Success 200 {object} dto.GroupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Caller is not the operator"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /dre/groups/{groupID} [put]
func (h *chartHandler) updateGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	groupID := c.Param("groupID")
	logger = logger.With(slog.String("group_id", groupID))

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	group, err := h.chartService.UpdateGroup(c.Request.Context(), groupID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "update group")
		return
	}
	logger.Info("Group updated")
	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// createAccount godoc
// @Summary Create a DRE account
// @Description Creates an account under one of the DRE groups
// @Tags dre-accounts
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} ErrorResponse "Name already used in the group"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/accounts [post]
func (h *chartHandler) createAccount(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	account, err := h.chartService.CreateAccount(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "create account")
		return
	}
	logger.Info("Account created", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List DRE accounts
// @Description Lists active accounts, optionally filtered by group or by group kind
// @Tags dre-accounts
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param groupID query string false "Group ID"
// @Param kind query string false "Group kind" Enums(REVENUE, DEDUCTION, COST, EXPENSE)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/accounts [get]
func (h *chartHandler) listAccounts(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, logger, err)
		return
	}
	if params.GroupID != "" && params.Kind != "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "groupID and kind cannot be combined"})
		return
	}

	var (
		accounts []domain.Account
		err      error
	)
	switch {
	case params.GroupID != "":
		accounts, err = h.chartService.ListAccountsByGroup(c.Request.Context(), workplaceID, params.GroupID, userID)
	case params.Kind != "":
		accounts, err = h.chartService.ListAccountsByKind(c.Request.Context(), workplaceID, domain.GroupKind(params.Kind), userID)
	default:
		accounts, err = h.chartService.ListAccounts(c.Request.Context(), workplaceID, userID)
	}
	if err != nil {
		respondWithError(c, logger, err, "list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// getAccount godoc
// @Summary Get a DRE account
// @Tags dre-accounts
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/accounts/{accountID} [get]
func (h *chartHandler) getAccount(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	accountID := c.Param("accountID")

	account, err := h.chartService.GetAccountByID(c.Request.Context(), workplaceID, accountID, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("account_id", accountID)), err, "get account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update a DRE account
// @Description Updates an active account. Moving it to another group only affects future reports.
// @Tags dre-accounts
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param accountID path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/accounts/{accountID} [put]
func (h *chartHandler) updateAccount(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	accountID := c.Param("accountID")
	logger = logger.With(slog.String("account_id", accountID))

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	account, err := h.chartService.UpdateAccount(c.Request.Context(), workplaceID, accountID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "update account")
		return
	}
	logger.Info("Account updated")
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate a DRE account
// @Description Soft-deletes an account. Its ledger history keeps counting in reports.
// @Tags dre-accounts
// @Param workplace_id path string true "Workplace ID"
// @Param accountID path string true "Account ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Already inactive"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/accounts/{accountID} [delete]
func (h *chartHandler) deactivateAccount(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	accountID := c.Param("accountID")
	logger = logger.With(slog.String("account_id", accountID))

	if err := h.chartService.DeactivateAccount(c.Request.Context(), workplaceID, accountID, userID); err != nil {
		respondWithError(c, logger, err, "deactivate account")
		return
	}
	logger.Info("Account deactivated")
	c.Status(http.StatusNoContent)
}

// resolveLegacyName godoc
// @Summary Resolve a legacy classification name
// @Description Finds the account a legacy category name maps to. Used by data migration only.
// @Tags dre-accounts
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param legacyName path string true "Legacy name"
// @Success 200 {object} dto.AccountResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/legacy-names/{legacyName} [get]
func (h *chartHandler) resolveLegacyName(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	legacyName := c.Param("legacyName")

	account, err := h.chartService.FindAccountByLegacyName(c.Request.Context(), workplaceID, legacyName, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("legacy_name", legacyName)), err, "resolve legacy name")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
