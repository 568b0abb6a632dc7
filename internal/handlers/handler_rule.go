package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/dre_backoffice/internal/core/ports/services"
	"github.com/SscSPs/dre_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
)

type ruleHandler struct {
	ruleService portssvc.RuleSvcFacade
}

func newRuleHandler(rs portssvc.RuleSvcFacade) *ruleHandler {
	return &ruleHandler{ruleService: rs}
}

// RegisterRuleRoutes registers the posting rule routes on a workplace-scoped group.
func RegisterRuleRoutes(rg *gin.RouterGroup, ruleService portssvc.RuleSvcFacade) {
	RegisterValidators()
	h := newRuleHandler(ruleService)

	rules := rg.Group("/dre/rules")
	{
		rules.POST("", h.createRule)
		rules.GET("", h.listRules)
		rules.GET("/:ruleID", h.getRule)
		rules.PUT("/:ruleID", h.updateRule)
		rules.DELETE("/:ruleID", h.deactivateRule)
	}
}

// createRule godoc
// @Summary Create a posting rule
// @Description A rule tells the posting engine which account receives which share of an event
// @Tags dre-rules
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param rule body dto.CreateRuleRequest true "Rule"
// @Success 201 {object} dto.RuleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Account or tax rate not found"
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/rules [post]
func (h *ruleHandler) createRule(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "create rule")
		return
	}
	logger.Info("Rule created", slog.String("rule_id", rule.RuleID), slog.String("trigger", string(rule.Trigger)))
	c.JSON(http.StatusCreated, dto.ToRuleResponse(rule))
}

// listRules godoc
// @Summary List posting rules
// @Description Lists active and inactive rules ordered by name
// @Tags dre-rules
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Success 200 {object} dto.ListRulesResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/rules [get]
func (h *ruleHandler) listRules(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	rules, err := h.ruleService.ListRules(c.Request.Context(), workplaceID, userID)
	if err != nil {
		respondWithError(c, logger, err, "list rules")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRulesResponse(rules))
}

// getRule godoc
// @Summary Get a posting rule
// @Tags dre-rules
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param ruleID path string true "Rule ID"
// @Success 200 {object} dto.RuleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/rules/{ruleID} [get]
func (h *ruleHandler) getRule(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	ruleID := c.Param("ruleID")

	rule, err := h.ruleService.GetRule(c.Request.Context(), workplaceID, ruleID, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("rule_id", ruleID)), err, "get rule")
		return
	}
	c.JSON(http.StatusOK, dto.ToRuleResponse(rule))
}

// updateRule godoc
// @Summary Update a posting rule
// @Description Optional references are removed with the clear* flags
// @Tags dre-rules
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param ruleID path string true "Rule ID"
// @Param rule body dto.UpdateRuleRequest true "Fields to update"
// @Success 200 {object} dto.RuleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/rules/{ruleID} [put]
func (h *ruleHandler) updateRule(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	ruleID := c.Param("ruleID")
	logger = logger.With(slog.String("rule_id", ruleID))

	var req dto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	rule, err := h.ruleService.UpdateRule(c.Request.Context(), workplaceID, ruleID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "update rule")
		return
	}
	logger.Info("Rule updated")
	c.JSON(http.StatusOK, dto.ToRuleResponse(rule))
}

// deactivateRule godoc
// @Summary Deactivate a posting rule
// @Description Entries already posted by the rule are kept
// @Tags dre-rules
// @Param workplace_id path string true "Workplace ID"
// @Param ruleID path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Already inactive"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/rules/{ruleID} [delete]
func (h *ruleHandler) deactivateRule(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	ruleID := c.Param("ruleID")
	logger = logger.With(slog.String("rule_id", ruleID))

	if err := h.ruleService.DeactivateRule(c.Request.Context(), workplaceID, ruleID, userID); err != nil {
		respondWithError(c, logger, err, "deactivate rule")
		return
	}
	logger.Info("Rule deactivated")
	c.Status(http.StatusNoContent)
}
