package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/dre_backoffice/internal/core/ports/services"
	"github.com/SscSPs/dre_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
)

type taxRateHandler struct {
	taxRateService portssvc.TaxRateSvcFacade
}

func newTaxRateHandler(ts portssvc.TaxRateSvcFacade) *taxRateHandler {
	return &taxRateHandler{taxRateService: ts}
}

// RegisterTaxRateRoutes registers the tax/percentage registry routes on a workplace-scoped group.
func RegisterTaxRateRoutes(rg *gin.RouterGroup, taxRateService portssvc.TaxRateSvcFacade) {
	RegisterValidators()
	h := newTaxRateHandler(taxRateService)

	rates := rg.Group("/dre/tax-rates")
	{
		rates.POST("", h.createTaxRate)
		rates.GET("", h.listTaxRates)
		rates.GET("/:taxRateID", h.getTaxRate)
		rates.PUT("/:taxRateID", h.updateTaxRate)
		rates.DELETE("/:taxRateID", h.deactivateTaxRate)
	}
}

// createTaxRate godoc
// @Summary Register a tax rate
// @Description Registers a named percentage (e.g. IVA 10%) that rules can reference
// @Tags dre-tax-rates
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param taxRate body dto.CreateTaxRateRequest true "Tax rate"
// @Success 201 {object} dto.TaxRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Sigla already registered"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/tax-rates [post]
func (h *taxRateHandler) createTaxRate(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	rate, err := h.taxRateService.CreateTaxRate(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "create tax rate")
		return
	}
	logger.Info("Tax rate created", slog.String("tax_rate_id", rate.TaxRateID), slog.String("sigla", rate.Sigla))
	c.JSON(http.StatusCreated, dto.ToTaxRateResponse(rate))
}

// listTaxRates godoc
// @Summary List tax rates
// @Tags dre-tax-rates
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Success 200 {object} dto.ListTaxRatesResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/tax-rates [get]
func (h *taxRateHandler) listTaxRates(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	rates, err := h.taxRateService.ListTaxRates(c.Request.Context(), workplaceID, userID)
	if err != nil {
		respondWithError(c, logger, err, "list tax rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTaxRatesResponse(rates))
}

// getTaxRate godoc
// @Summary Get a tax rate
// @Tags dre-tax-rates
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param taxRateID path string true "Tax rate ID"
// @Success 200 {object} dto.TaxRateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/tax-rates/{taxRateID} [get]
func (h *taxRateHandler) getTaxRate(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	taxRateID := c.Param("taxRateID")

	rate, err := h.taxRateService.GetTaxRate(c.Request.Context(), workplaceID, taxRateID, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("tax_rate_id", taxRateID)), err, "get tax rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxRateResponse(rate))
}

// updateTaxRate godoc
// @Summary Update a tax rate
// @Description Changing the percentage only affects events posted afterwards
// @Tags dre-tax-rates
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param taxRateID path string true "Tax rate ID"
// @Param taxRate body dto.UpdateTaxRateRequest true "Fields to update"
// @Success 200 {object} dto.TaxRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/tax-rates/{taxRateID} [put]
func (h *taxRateHandler) updateTaxRate(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	taxRateID := c.Param("taxRateID")
	logger = logger.With(slog.String("tax_rate_id", taxRateID))

	var req dto.UpdateTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	rate, err := h.taxRateService.UpdateTaxRate(c.Request.Context(), workplaceID, taxRateID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "update tax rate")
		return
	}
	logger.Info("Tax rate updated")
	c.JSON(http.StatusOK, dto.ToTaxRateResponse(rate))
}

// deactivateTaxRate godoc
// @Summary Deactivate a tax rate
// @Tags dre-tax-rates
// @Param workplace_id path string true "Workplace ID"
// @Param taxRateID path string true "Tax rate ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Already inactive"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/tax-rates/{taxRateID} [delete]
func (h *taxRateHandler) deactivateTaxRate(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	taxRateID := c.Param("taxRateID")
	logger = logger.With(slog.String("tax_rate_id", taxRateID))

	if err := h.taxRateService.DeactivateTaxRate(c.Request.Context(), workplaceID, taxRateID, userID); err != nil {
		respondWithError(c, logger, err, "deactivate tax rate")
		return
	}
	logger.Info("Tax rate deactivated")
	c.Status(http.StatusNoContent)
}
