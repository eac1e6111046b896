package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quantboard/internal/handlers"
	"quantboard/internal/logger"
	"quantboard/internal/middleware"
	"quantboard/internal/models"
	"quantboard/internal/provider"
	"quantboard/internal/services"
	"quantboard/internal/validator"
)

const testPipelineKey = "test-pipeline-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Market *marketServer
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// marketServer is an httptest server speaking the Yahoo Finance JSON wire
// format, loaded with per-symbol fixtures.
type marketServer struct {
	server *httptest.Server

	mu         sync.Mutex
	profiles   map[string]string // symbol -> quoteSummary profile body
	charts     map[string]string // symbol -> chart body
	statements map[string]string // symbol -> quoteSummary statement body (both periods)
}

func newMarketServer(t *testing.T) *marketServer {
	t.Helper()
	m := &marketServer{
		profiles:   make(map[string]string),
		charts:     make(map[string]string),
		statements: make(map[string]string),
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.server.Close)
	return m
}

func (m *marketServer) handle(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := r.URL.Path
	switch {
	case strings.HasPrefix(path, "/v10/finance/quoteSummary/"):
		symbol := strings.TrimPrefix(path, "/v10/finance/quoteSummary/")
		var body string
		var ok bool
		if strings.Contains(r.URL.Query().Get("modules"), "assetProfile") {
			body, ok = m.profiles[symbol]
		} else {
			body, ok = m.statements[symbol]
			if !ok {
				// Symbol is known but reports no statements.
				if _, known := m.profiles[symbol]; known {
					body, ok = `{"quoteSummary":{"result":[{}],"error":null}}`, true
				}
			}
		}
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	case strings.HasPrefix(path, "/v8/finance/chart/"):
		symbol := strings.TrimPrefix(path, "/v8/finance/chart/")
		body, ok := m.charts[symbol]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// addSymbol loads a minimal, consistent fixture set for a symbol: a profile,
// a two-day chart, and one annual statement period.
func (m *marketServer) addSymbol(symbol, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.profiles[symbol] = fmt.Sprintf(`{
		"quoteSummary": {
			"result": [{
				"assetProfile": {"industry": "Consumer Electronics", "sector": "Technology", "country": "United States", "website": "https://example.com"},
				"price": {"symbol": %q, "longName": %q, "currency": "USD", "exchangeName": "NasdaqGS", "marketCap": {"raw": 1000000000}}
			}],
			"error": null
		}
	}`, symbol, name)

	day1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Unix()
	day2 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC).Unix()
	m.charts[symbol] = fmt.Sprintf(`{
		"chart": {
			"result": [{
				"timestamp": [%d, %d],
				"indicators": {
					"quote": [{"open": [100.0, 101.0], "high": [102.0, 103.0], "low": [99.0, 100.5], "close": [101.5, 102.5], "volume": [1000000, 1100000]}],
					"adjclose": [{"adjclose": [101.0, 102.0]}]
				},
				"events": {}
			}],
			"error": null
		}
	}`, day1, day2)

	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC).Unix()
	m.statements[symbol] = fmt.Sprintf(`{
		"quoteSummary": {
			"result": [{
				"incomeStatementHistory": {
					"incomeStatementHistory": [
						{"endDate": {"raw": %d}, "totalRevenue": {"raw": 5000000}, "netIncome": {"raw": 1200000}}
					]
				}
			}],
			"error": null
		}
	}`, end)
}

// extendChart appends a third trading day to a symbol's chart fixture.
func (m *marketServer) extendChart(symbol string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	day1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Unix()
	day2 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC).Unix()
	day3 := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC).Unix()
	m.charts[symbol] = fmt.Sprintf(`{
		"chart": {
			"result": [{
				"timestamp": [%d, %d, %d],
				"indicators": {
					"quote": [{"open": [999.0, 999.0, 102.0], "high": [999.0, 999.0, 104.0], "low": [999.0, 999.0, 101.5], "close": [999.0, 999.0, 103.5], "volume": [1, 1, 1200000]}],
					"adjclose": [{"adjclose": [999.0, 999.0, 103.0]}]
				},
				"events": {}
			}],
			"error": null
		}
	}`, day1, day2, day3)
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Stock{},
		&models.DailyPrice{},
		&models.FinancialStatement{},
		&models.IngestionRun{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database and a local market data fixture server.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	market := newMarketServer(t)

	marketData := provider.NewYahooProvider(market.server.Client(), market.server.URL)
	stockService := services.NewStockService(db)
	ingestService := services.NewIngestService(db, marketData, stockService, 10*time.Second)

	stockHandler := handlers.NewStockHandler(stockService)
	ingestHandler := handlers.NewIngestHandler(ingestService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	stocks := v1.Group("/stocks")
	stocks.GET("", stockHandler.ListStocks)
	stocks.POST("", stockHandler.CreateStock)
	stocks.GET("/:code", stockHandler.GetStock)
	stocks.GET("/:code/prices", stockHandler.GetDailyPrices)
	stocks.GET("/:code/financials", stockHandler.GetFinancialStatements)
	stocks.POST("/:code/financials", stockHandler.CreateFinancialStatement)

	ingest := v1.Group("/ingest")
	ingest.Use(middleware.PipelineAuth(testPipelineKey))
	ingest.POST("/bulk", ingestHandler.IngestBulk)
	ingest.GET("/runs", ingestHandler.ListRuns)
	ingest.POST("/:symbol", ingestHandler.IngestSymbol)

	return &testApp{DB: db, Router: router, Market: market}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// pipelineRequest makes a request carrying the pipeline API key.
func (app *testApp) pipelineRequest(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testPipelineKey)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
