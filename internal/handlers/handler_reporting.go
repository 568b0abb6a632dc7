package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/dre_backoffice/internal/core/ports/services"
	"github.com/SscSPs/dre_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	RegisterValidators()
	h := newReportingHandler(reportingService)

	// Routes for reports are nested under a specific workplace
	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/income-statement", h.getIncomeStatement)
	}
}

// getIncomeStatement godoc
// @Summary Generate the income statement (DRE)
// @Description Aggregates the ledger entries posted between startDate and endDate (both inclusive) per account and group, with derived totals
// @Tags reports
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden (User not authorized)"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.IncomeStatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, logger, err)
		return
	}

	start, err := time.Parse(dto.DateLayout, params.StartDate)
	if err != nil {
		logger.Warn("Invalid start date format", slog.String("startDate", params.StartDate), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid startDate format. Use YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dto.DateLayout, params.EndDate)
	if err != nil {
		logger.Warn("Invalid end date format", slog.String("endDate", params.EndDate), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid endDate format. Use YYYY-MM-DD"})
		return
	}

	logger = logger.With(slog.String("startDate", params.StartDate), slog.String("endDate", params.EndDate))
	logger.Info("Received request to generate income statement")

	statement, err := h.reportingService.IncomeStatement(c.Request.Context(), workplaceID, start, end, userID)
	if err != nil {
		respondWithError(c, logger, err, "generate income statement")
		return
	}

	logger.Info("Income statement generated successfully", slog.Int("line_count", len(statement.Lines)))
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(statement))
}
