// Package provider defines the interface for fetching stock metadata, price
// history, and financial statements from external market data sources.
package provider

import (
	"context"
	"errors"
	"time"
)

// ErrSymbolNotFound is returned when the data source has no record for the
// requested symbol. Transport-level failures are returned as ordinary errors.
var ErrSymbolNotFound = errors.New("symbol not found")

// Period selects between annual and quarterly statement series.
type Period string

const (
	PeriodAnnual    Period = "annual"
	PeriodQuarterly Period = "quarterly"
)

// Statement metric keys. Providers report metrics under these names;
// anything else is ignored by the ingestion layer.
const (
	MetricTotalRevenue      = "total_revenue"
	MetricCostOfRevenue     = "cost_of_revenue"
	MetricGrossProfit       = "gross_profit"
	MetricOperatingIncome   = "operating_income"
	MetricNetIncome         = "net_income"
	MetricTotalAssets       = "total_assets"
	MetricTotalLiabilities  = "total_liabilities"
	MetricShareholderEquity = "shareholder_equity"
	MetricFreeCashFlow      = "free_cash_flow"
)

// Profile contains the company metadata for a symbol.
type Profile struct {
	Symbol    string
	Name      string
	Industry  string
	Sector    string
	Country   string
	Exchange  string
	Currency  string
	Website   string
	MarketCap *float64
}

// Bar is one day's trading summary. Price fields are nil when the source
// omits them; all numeric fields are unsanitized provider values.
type Bar struct {
	Date        time.Time // calendar date, UTC midnight
	Open        *float64
	High        *float64
	Low         *float64
	Close       *float64
	AdjClose    *float64
	Volume      *float64
	Dividends   float64
	StockSplits float64
}

// StatementRow is one reporting period's metrics, keyed by the Metric*
// constants. Values may be nil (unreported) or non-finite (sentinel junk);
// consumers must sanitize before storage.
type StatementRow struct {
	PeriodEndDate time.Time
	Metrics       map[string]*float64
}

// MarketData fetches metadata, daily price history, and financial statements
// for a symbol. Implementations may return partial or malformed data; callers
// must tolerate all of it.
type MarketData interface {
	// Name identifies the data source in logs.
	Name() string

	// FetchProfile returns company metadata, or ErrSymbolNotFound when the
	// source has no record of the symbol.
	FetchProfile(ctx context.Context, symbol string) (*Profile, error)

	// FetchDailyHistory returns the full available daily bar series in
	// ascending date order. An unknown symbol yields ErrSymbolNotFound;
	// a known symbol with no history yields an empty slice.
	FetchDailyHistory(ctx context.Context, symbol string) ([]Bar, error)

	// FetchStatements returns the statement series for the given period type,
	// one row per reporting period.
	FetchStatements(ctx context.Context, symbol string, period Period) ([]StatementRow, error)
}
