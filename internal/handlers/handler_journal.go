package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/SscSPs/compta_maroc/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalEntryHandler handles HTTP requests related to journal entries.
type journalEntryHandler struct {
	journalService portssvc.JournalEntrySvcFacade
}

func newJournalEntryHandler(js portssvc.JournalEntrySvcFacade) *journalEntryHandler {
	return &journalEntryHandler{journalService: js}
}

// RegisterJournalEntryRoutes registers routes related to journal entries.
func RegisterJournalEntryRoutes(rg *gin.RouterGroup, journalService portssvc.JournalEntrySvcFacade) {
	h := newJournalEntryHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/lines", h.addLine)
		entries.DELETE("/:entryID/lines/:lineID", h.removeLine)
		entries.POST("/:entryID/post", h.postEntry)
		entries.POST("/:entryID/cancel", h.cancelEntry)
	}
}

// createEntry godoc
// @Summary Create a draft journal entry
// @Description Opens a DRAFT entry with its initial lines. Balance is only enforced when posting.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Entry header and lines"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown account"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Entry number already exists"
// @Failure 500 {object} map[string]string "Failed to create journal entry"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalEntryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if !bindJSON(c, logger, &req, "CreateJournalEntry") {
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create journal entry", slog.String("entry_type", req.EntryType), slog.Int("line_count", len(req.Lines)))
	entry, err := h.journalService.CreateEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create journal entry")
		return
	}

	logger.Info("Journal entry created", slog.String("entry_id", entry.EntryID), slog.String("entry_number", entry.EntryNumber))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags journal-entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Security BearerAuth
// @Router /journal-entries/{entryID} [get]
func (h *journalEntryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("entryID")))

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Retrieves entries newest first using token-based pagination
// @Tags journal-entries
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   status query string false "Filter by status" Enums(DRAFT, POSTED, CANCELLED)
// @Param   entryType query string false "Filter by entry type"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalEntryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListJournalEntriesParams
	if !bindQuery(c, logger, &params, "ListJournalEntries") {
		return
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list journal entries")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// addLine godoc
// @Summary Add a line to a draft entry
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   line body dto.JournalLineRequest true "Line"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid line"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Security BearerAuth
// @Router /journal-entries/{entryID}/lines [post]
func (h *journalEntryHandler) addLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("entryID")))
	var req dto.JournalLineRequest
	if !bindJSON(c, logger, &req, "AddJournalLine") {
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.journalService.AddLine(c.Request.Context(), c.Param("entryID"), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add journal line")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// removeLine godoc
// @Summary Remove a line from a draft entry
// @Tags journal-entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   lineID path string true "Line ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Journal entry or line not found"
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Security BearerAuth
// @Router /journal-entries/{entryID}/lines/{lineID} [delete]
func (h *journalEntryHandler) removeLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("entry_id", c.Param("entryID")),
		slog.String("line_id", c.Param("lineID")),
	)

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.journalService.RemoveLine(c.Request.Context(), c.Param("entryID"), c.Param("lineID"), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to remove journal line")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// postEntry godoc
// @Summary Post a draft entry
// @Description Moves a balanced DRAFT entry to POSTED
// @Tags journal-entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Failure 422 {object} map[string]string "Entry is not balanced"
// @Security BearerAuth
// @Router /journal-entries/{entryID}/post [post]
func (h *journalEntryHandler) postEntry(c *gin.Context) {
	h.transition(c, domain.Posted)
}

// cancelEntry godoc
// @Summary Cancel a draft entry
// @Tags journal-entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Security BearerAuth
// @Router /journal-entries/{entryID}/cancel [post]
func (h *journalEntryHandler) cancelEntry(c *gin.Context) {
	h.transition(c, domain.Cancelled)
}

func (h *journalEntryHandler) transition(c *gin.Context, to domain.EntryStatus) {
	entryID := c.Param("entryID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("entry_id", entryID),
		slog.String("to_status", string(to)),
	)

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var (
		entry *domain.JournalEntry
		err   error
	)
	if to == domain.Posted {
		entry, err = h.journalService.PostEntry(c.Request.Context(), entryID, userID)
	} else {
		entry, err = h.journalService.CancelEntry(c.Request.Context(), entryID, userID)
	}
	if err != nil {
		respondWithError(c, logger, err, "Failed to update journal entry status")
		return
	}

	logger.Info("Journal entry status changed")
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}
