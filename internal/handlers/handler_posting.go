package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/dre_backoffice/internal/core/ports/services"
	"github.com/SscSPs/dre_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
)

type postingHandler struct {
	postingService portssvc.PostingSvcFacade
	now            func() time.Time
}

func newPostingHandler(ps portssvc.PostingSvcFacade) *postingHandler {
	return &postingHandler{postingService: ps, now: time.Now}
}

// RegisterPostingRoutes registers the business event routes on a workplace-scoped group.
func RegisterPostingRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	RegisterValidators()
	h := newPostingHandler(postingService)

	events := rg.Group("/dre/events")
	{
		events.POST("", h.postEvent)
		events.GET("/:eventID/entries", h.listEntriesByEvent)
	}
}

// postEvent godoc
// @Summary Post a business event
// @Description Applies every active rule matching the event trigger (and sale subtype) and writes one ledger entry per rule, atomically.
// @Description Returns 201 when entries were written and 200 when no rule matched.
// @Tags dre-posting
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param event body dto.PostEventRequest true "Business event"
// @Success 201 {object} dto.PostingResultResponse
// @Success 200 {object} dto.PostingResultResponse "No rule matched"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "A rule points to a missing account or tax rate"
// @Failure 409 {object} ErrorResponse "Event already posted"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/events [post]
func (h *postingHandler) postEvent(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.PostEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}
	logger = logger.With(slog.String("event_id", req.EventID), slog.String("trigger", string(req.Trigger)))

	result, err := h.postingService.PostEvent(c.Request.Context(), req.ToBusinessEvent(workplaceID, h.now()), userID)
	if err != nil {
		respondWithError(c, logger, err, "post event")
		return
	}

	status := http.StatusCreated
	if len(result.Entries) == 0 {
		status = http.StatusOK
	}
	logger.Info("Event posted", slog.Int("entry_count", len(result.Entries)))
	c.JSON(status, dto.ToPostingResultResponse(result))
}

// listEntriesByEvent godoc
// @Summary List ledger entries of an event
// @Tags dre-posting
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/dre/events/{eventID}/entries [get]
func (h *postingHandler) listEntriesByEvent(c *gin.Context) {
	logger, workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	eventID := c.Param("eventID")

	entries, err := h.postingService.ListEntriesByEvent(c.Request.Context(), workplaceID, eventID, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("event_id", eventID)), err, "list ledger entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLedgerEntriesResponse(entries))
}
