package handlers

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "quantboard/internal/errors"
	"quantboard/internal/models"
	"quantboard/internal/pagination"
	"quantboard/internal/provider"
	"quantboard/internal/services"
)

// --- mock ingest service ---

type mockIngestService struct {
	ingestFn     func(ctx context.Context, symbol string) (*models.Stock, error)
	ingestBulkFn func(ctx context.Context, symbols []string) services.BulkResult
	listRunsFn   func(page pagination.PageRequest) (*pagination.PageResponse[models.IngestionRun], error)
}

var _ services.IngestServicer = (*mockIngestService)(nil)

func (m *mockIngestService) Ingest(ctx context.Context, symbol string) (*models.Stock, error) {
	if m.ingestFn != nil {
		return m.ingestFn(ctx, symbol)
	}
	return &models.Stock{Base: models.Base{ID: 1}, Code: symbol}, nil
}

func (m *mockIngestService) IngestBulk(ctx context.Context, symbols []string) services.BulkResult {
	if m.ingestBulkFn != nil {
		return m.ingestBulkFn(ctx, symbols)
	}
	return services.BulkResult{}
}

func (m *mockIngestService) MergePrices(*models.Stock, []provider.Bar) (int, error) {
	return 0, nil
}

func (m *mockIngestService) MergeStatements(*models.Stock, models.PeriodType, []provider.StatementRow) error {
	return nil
}

func (m *mockIngestService) ListRuns(page pagination.PageRequest) (*pagination.PageResponse[models.IngestionRun], error) {
	if m.listRunsFn != nil {
		return m.listRunsFn(page)
	}
	resp := pagination.NewPageResponse([]models.IngestionRun{}, 1, 20, 0)
	return &resp, nil
}

func setupIngestRouter(handler *IngestHandler) *gin.Engine {
	r := gin.New()
	r.POST("/ingest/bulk", handler.IngestBulk)
	r.GET("/ingest/runs", handler.ListRuns)
	r.POST("/ingest/:symbol", handler.IngestSymbol)
	return r
}

// --- tests ---

func TestIngestHandler_IngestSymbol(t *testing.T) {
	t.Run("returns_200_on_success", func(t *testing.T) {
		svc := &mockIngestService{
			ingestFn: func(_ context.Context, symbol string) (*models.Stock, error) {
				return &models.Stock{Base: models.Base{ID: 1}, Code: symbol, Name: "Apple Inc."}, nil
			},
		}
		r := setupIngestRouter(NewIngestHandler(svc))

		rec := doRequest(r, "POST", "/ingest/AAPL", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		stock := result["stock"].(map[string]interface{})
		if stock["code"] != "AAPL" {
			t.Errorf("expected code=AAPL, got %v", stock["code"])
		}
	})

	t.Run("returns_404_unknown_symbol", func(t *testing.T) {
		svc := &mockIngestService{
			ingestFn: func(context.Context, string) (*models.Stock, error) {
				return nil, apperrors.ErrSymbolNotFound
			},
		}
		r := setupIngestRouter(NewIngestHandler(svc))

		rec := doRequest(r, "POST", "/ingest/NOPE", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "SYMBOL_NOT_FOUND")
	})

	t.Run("returns_502_provider_down", func(t *testing.T) {
		svc := &mockIngestService{
			ingestFn: func(context.Context, string) (*models.Stock, error) {
				return nil, apperrors.ErrProviderUnavailable
			},
		}
		r := setupIngestRouter(NewIngestHandler(svc))

		rec := doRequest(r, "POST", "/ingest/AAPL", "")

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "PROVIDER_UNAVAILABLE")
	})
}

func TestIngestHandler_IngestBulk(t *testing.T) {
	t.Run("returns_202_and_runs_in_background", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)
		var gotSymbols []string
		svc := &mockIngestService{
			ingestBulkFn: func(_ context.Context, symbols []string) services.BulkResult {
				gotSymbols = symbols
				wg.Done()
				return services.BulkResult{Success: len(symbols)}
			},
		}
		r := setupIngestRouter(NewIngestHandler(svc))

		rec := doRequest(r, "POST", "/ingest/bulk", `{"symbols":["AAPL","MSFT"]}`)

		if rec.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
		}

		wg.Wait()
		if len(gotSymbols) != 2 {
			t.Errorf("expected 2 symbols passed to the job, got %v", gotSymbols)
		}
	})

	t.Run("returns_400_empty_symbols", func(t *testing.T) {
		r := setupIngestRouter(NewIngestHandler(&mockIngestService{}))

		rec := doRequest(r, "POST", "/ingest/bulk", `{"symbols":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns_400_missing_body", func(t *testing.T) {
		r := setupIngestRouter(NewIngestHandler(&mockIngestService{}))

		rec := doRequest(r, "POST", "/ingest/bulk", ``)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestIngestHandler_ListRuns(t *testing.T) {
	t.Run("returns_200_with_runs", func(t *testing.T) {
		svc := &mockIngestService{
			listRunsFn: func(page pagination.PageRequest) (*pagination.PageResponse[models.IngestionRun], error) {
				resp := pagination.NewPageResponse([]models.IngestionRun{
					{Base: models.Base{ID: 1}, Status: models.RunStatusCompleted, TotalSymbols: 2},
				}, 1, 20, 1)
				return &resp, nil
			},
		}
		r := setupIngestRouter(NewIngestHandler(svc))

		rec := doRequest(r, "GET", "/ingest/runs", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 1 {
			t.Errorf("expected 1 run, got %d", len(data))
		}
	})
}
