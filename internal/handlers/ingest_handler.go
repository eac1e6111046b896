package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "quantboard/internal/errors"
	"quantboard/internal/pagination"
	"quantboard/internal/services"
)

// IngestHandler handles market data ingestion requests.
type IngestHandler struct {
	ingestService services.IngestServicer
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(ingestService services.IngestServicer) *IngestHandler {
	return &IngestHandler{ingestService: ingestService}
}

// IngestBulkRequest represents the request payload for bulk ingestion.
type IngestBulkRequest struct {
	Symbols []string `json:"symbols" binding:"required,min=1,dive,required"`
}

// IngestSymbol handles synchronous single-symbol ingestion.
// @Summary     Ingest symbol
// @Description Fetch metadata, price history, and financial statements for one symbol and persist what is new (pipeline endpoint)
// @Tags        ingest
// @Produce     json
// @Security    ApiKeyAuth
// @Param       symbol path string true "Ticker symbol"
// @Success     200 {object} models.Stock "Up-to-date stock"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     404 {object} ErrorResponse "Provider has no record for the symbol"
// @Failure     502 {object} ErrorResponse "Provider unreachable"
// @Failure     503 {object} ErrorResponse "Pipeline not configured"
// @Router      /ingest/{symbol} [post]
func (h *IngestHandler) IngestSymbol(c *gin.Context) {
	symbol := c.Param("symbol")
	if symbol == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required"))
		return
	}

	stock, err := h.ingestService.Ingest(c.Request.Context(), symbol)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stock": stock})
}

// IngestBulk handles bulk ingestion. The job is detached: the request is
// acknowledged immediately and ingestion continues in the background, with
// the outcome recorded as an ingestion run.
// @Summary     Bulk ingest
// @Description Start a background job that ingests each symbol in turn, isolating per-symbol failures (pipeline endpoint)
// @Tags        ingest
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body IngestBulkRequest true "Symbols to ingest"
// @Success     202 {object} map[string]string "Job accepted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Pipeline not configured"
// @Router      /ingest/bulk [post]
func (h *IngestHandler) IngestBulk(c *gin.Context) {
	var req IngestBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	// Detach from the request context so the job outlives this request.
	go h.ingestService.IngestBulk(context.Background(), req.Symbols)

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Bulk ingestion started in the background",
	})
}

// ListRuns handles listing the bulk ingestion audit trail.
// @Summary     List ingestion runs
// @Description Get a paginated list of bulk ingestion runs, newest first
// @Tags        ingest
// @Produce     json
// @Security    ApiKeyAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.IngestionRun] "Paginated runs"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /ingest/runs [get]
func (h *IngestHandler) ListRuns(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.ingestService.ListRuns(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
