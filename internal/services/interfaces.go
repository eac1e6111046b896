package services

import (
	"context"
	"time"

	"quantboard/internal/models"
	"quantboard/internal/pagination"
	"quantboard/internal/provider"
)

// StockMetadata carries the metadata fields applied to a stock on create or
// upsert. Upserts overwrite every field with these values, including zero
// ones; there is no field-level merge.
type StockMetadata struct {
	Name      string
	Industry  string
	Sector    string
	Country   string
	Exchange  string
	Currency  string
	MarketCap *int64
	Website   string
}

// StatementInput carries the fields for a manually registered financial
// statement. Metric values are already integral; nil means unreported.
type StatementInput struct {
	PeriodType        models.PeriodType
	PeriodEndDate     time.Time
	TotalRevenue      *int64
	CostOfRevenue     *int64
	GrossProfit       *int64
	OperatingIncome   *int64
	NetIncome         *int64
	TotalAssets       *int64
	TotalLiabilities  *int64
	ShareholderEquity *int64
	FreeCashFlow      *int64
}

// StockServicer defines the contract for the stock catalog and its read paths.
type StockServicer interface {
	CreateStock(code string, meta StockMetadata) (*models.Stock, error)
	UpsertStock(code string, meta StockMetadata) (*models.Stock, error)
	GetStockByCode(code string) (*models.Stock, error)
	GetStockDetail(code string) (*models.Stock, error)
	ListStocks(page pagination.PageRequest) (*pagination.PageResponse[models.Stock], error)
	GetDailyPrices(stockID uint, from, to *time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.DailyPrice], error)
	GetFinancialStatements(stockID uint, periodType *models.PeriodType, periodEndDate *time.Time) ([]models.FinancialStatement, error)
	CreateFinancialStatement(stockID uint, input StatementInput) (*models.FinancialStatement, error)
}

// BulkResult aggregates the outcome of a bulk ingestion job.
type BulkResult struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// IngestServicer defines the contract for fetching external market data and
// reconciling it into the store.
type IngestServicer interface {
	// Ingest runs the full per-symbol workflow: metadata upsert, price
	// history merge, annual and quarterly statement merges.
	Ingest(ctx context.Context, symbol string) (*models.Stock, error)

	// IngestBulk ingests symbols sequentially with per-symbol failure
	// isolation and records an IngestionRun row for the job.
	IngestBulk(ctx context.Context, symbols []string) BulkResult

	// MergePrices writes the fetched bars dated strictly after the stock's
	// latest persisted price date and reports how many rows were written.
	MergePrices(stock *models.Stock, bars []provider.Bar) (int, error)

	// MergeStatements inserts fetched statement rows whose
	// (period type, period end date) key is not yet persisted for the stock.
	MergeStatements(stock *models.Stock, periodType models.PeriodType, rows []provider.StatementRow) error

	ListRuns(page pagination.PageRequest) (*pagination.PageResponse[models.IngestionRun], error)
}
