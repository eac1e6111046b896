package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "quantboard/internal/errors"
	"quantboard/internal/logger"
	"quantboard/internal/models"
	"quantboard/internal/pagination"
	"quantboard/internal/provider"
	"quantboard/internal/sanitize"
)

// ingestService fetches external market data and reconciles it into the
// store. The service itself is stateless; all durable state lives in the
// database, and each merge step is its own commit.
type ingestService struct {
	db           *gorm.DB
	provider     provider.MarketData
	stocks       StockServicer
	fetchTimeout time.Duration
}

// NewIngestService creates a new IngestServicer.
func NewIngestService(db *gorm.DB, marketData provider.MarketData, stocks StockServicer, fetchTimeout time.Duration) IngestServicer {
	return &ingestService{
		db:           db,
		provider:     marketData,
		stocks:       stocks,
		fetchTimeout: fetchTimeout,
	}
}

// Ingest fetches and persists everything the provider has for one symbol:
// metadata upsert, then price history, then annual and quarterly statements,
// strictly in that order. A failure in a later step leaves the earlier
// steps' commits in place; partial success is an accepted outcome.
func (s *ingestService) Ingest(ctx context.Context, symbol string) (*models.Stock, error) {
	profile, err := s.fetchProfile(ctx, symbol)
	if err != nil {
		return nil, err
	}

	meta := StockMetadata{
		Name:      profile.Name,
		Industry:  profile.Industry,
		Sector:    profile.Sector,
		Country:   profile.Country,
		Exchange:  profile.Exchange,
		Currency:  profile.Currency,
		MarketCap: sanitize.Int64(profile.MarketCap),
		Website:   profile.Website,
	}
	// The catalog record is keyed by the symbol exactly as requested, not by
	// whatever casing the provider echoes back.
	stock, err := s.stocks.UpsertStock(symbol, meta)
	if err != nil {
		return nil, err
	}

	bars, err := s.fetchDailyHistory(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if len(bars) > 0 {
		written, err := s.MergePrices(stock, bars)
		if err != nil {
			return nil, err
		}
		logger.Get().Infow("merged price history", "provider", s.provider.Name(), "symbol", symbol, "written", written)
	}

	for _, periodType := range []models.PeriodType{models.PeriodTypeAnnual, models.PeriodTypeQuarterly} {
		rows, err := s.fetchStatements(ctx, symbol, periodType)
		if err != nil {
			return nil, err
		}
		if err := s.MergeStatements(stock, periodType, rows); err != nil {
			return nil, err
		}
	}

	return stock, nil
}

// IngestBulk ingests symbols one at a time. Any per-symbol error (unknown
// symbol, provider outage, store failure) is logged and counted, and the
// batch moves on; one bad symbol never aborts the job. The outcome is
// persisted as an IngestionRun row.
func (s *ingestService) IngestBulk(ctx context.Context, symbols []string) BulkResult {
	log := logger.Get()
	log.Infow("starting bulk ingestion", "provider", s.provider.Name(), "symbols", len(symbols))

	run := s.startRun(len(symbols))

	var result BulkResult
	for _, symbol := range symbols {
		if _, err := s.Ingest(ctx, symbol); err != nil {
			log.Warnw("symbol ingestion failed", "symbol", symbol, "error", err)
			result.Failure++
			continue
		}
		result.Success++
	}

	s.finishRun(run, result)
	log.Infow("bulk ingestion finished", "success", result.Success, "failure", result.Failure)
	return result
}

// MergePrices appends the fetched bars dated strictly after the stock's
// latest persisted price date, as a single batch insert, and reports the
// count written. Bars at or before that date are dropped even when their
// values differ from what is stored; same-day rows are never corrected.
// When the fetched series repeats a calendar date (a live intraday bar
// alongside the regular close), only the first bar for that date is kept.
func (s *ingestService) MergePrices(stock *models.Stock, bars []provider.Bar) (int, error) {
	var latest models.DailyPrice
	hasHistory := true
	err := s.db.Where("stock_id = ?", stock.ID).Order("date DESC").First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hasHistory = false
	} else if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var rows []models.DailyPrice
	seen := make(map[time.Time]struct{}, len(bars))
	for _, bar := range bars {
		if hasHistory && !bar.Date.After(latest.Date) {
			continue
		}
		if _, dup := seen[bar.Date]; dup {
			continue
		}
		seen[bar.Date] = struct{}{}
		rows = append(rows, models.DailyPrice{
			StockID:     stock.ID,
			Date:        bar.Date,
			Open:        sanitize.Float64(bar.Open),
			High:        sanitize.Float64(bar.High),
			Low:         sanitize.Float64(bar.Low),
			Close:       sanitize.Float64(bar.Close),
			AdjClose:    sanitize.Float64(bar.AdjClose),
			Volume:      sanitize.Int64(bar.Volume),
			Dividends:   bar.Dividends,
			StockSplits: bar.StockSplits,
		})
	}

	if len(rows) == 0 {
		return 0, nil
	}
	if err := s.db.Create(&rows).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return len(rows), nil
}

// MergeStatements inserts each fetched row whose (period type, period end
// date) key is not yet persisted for the stock. Existing keys are skipped
// entirely: statements are immutable facts and provider restatements are
// intentionally not propagated.
func (s *ingestService) MergeStatements(stock *models.Stock, periodType models.PeriodType, rows []provider.StatementRow) error {
	for _, row := range rows {
		var count int64
		err := s.db.Model(&models.FinancialStatement{}).
			Where("stock_id = ? AND period_type = ? AND period_end_date = ?", stock.ID, periodType, row.PeriodEndDate).
			Count(&count).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			continue
		}

		statement := models.FinancialStatement{
			StockID:           stock.ID,
			PeriodType:        periodType,
			PeriodEndDate:     row.PeriodEndDate,
			TotalRevenue:      sanitize.Int64(row.Metrics[provider.MetricTotalRevenue]),
			CostOfRevenue:     sanitize.Int64(row.Metrics[provider.MetricCostOfRevenue]),
			GrossProfit:       sanitize.Int64(row.Metrics[provider.MetricGrossProfit]),
			OperatingIncome:   sanitize.Int64(row.Metrics[provider.MetricOperatingIncome]),
			NetIncome:         sanitize.Int64(row.Metrics[provider.MetricNetIncome]),
			TotalAssets:       sanitize.Int64(row.Metrics[provider.MetricTotalAssets]),
			TotalLiabilities:  sanitize.Int64(row.Metrics[provider.MetricTotalLiabilities]),
			ShareholderEquity: sanitize.Int64(row.Metrics[provider.MetricShareholderEquity]),
			FreeCashFlow:      sanitize.Int64(row.Metrics[provider.MetricFreeCashFlow]),
		}
		if err := s.db.Create(&statement).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}

// ListRuns returns the bulk ingestion audit trail, newest first.
func (s *ingestService) ListRuns(page pagination.PageRequest) (*pagination.PageResponse[models.IngestionRun], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.IngestionRun{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var runs []models.IngestionRun
	if err := base.Order("started_at DESC").Scopes(pagination.Paginate(page)).Find(&runs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(runs, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// fetchProfile fetches metadata with a per-call timeout, mapping provider
// errors into the application taxonomy.
func (s *ingestService) fetchProfile(ctx context.Context, symbol string) (*provider.Profile, error) {
	ctx, cancel := s.fetchContext(ctx)
	defer cancel()

	profile, err := s.provider.FetchProfile(ctx, symbol)
	if err != nil {
		if errors.Is(err, provider.ErrSymbolNotFound) {
			return nil, apperrors.ErrSymbolNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrProviderUnavailable, err)
	}
	return profile, nil
}

func (s *ingestService) fetchDailyHistory(ctx context.Context, symbol string) ([]provider.Bar, error) {
	ctx, cancel := s.fetchContext(ctx)
	defer cancel()

	bars, err := s.provider.FetchDailyHistory(ctx, symbol)
	if err != nil {
		if errors.Is(err, provider.ErrSymbolNotFound) {
			// Metadata resolved but no chart data exists; treat as empty history.
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrProviderUnavailable, err)
	}
	return bars, nil
}

func (s *ingestService) fetchStatements(ctx context.Context, symbol string, periodType models.PeriodType) ([]provider.StatementRow, error) {
	ctx, cancel := s.fetchContext(ctx)
	defer cancel()

	rows, err := s.provider.FetchStatements(ctx, symbol, provider.Period(periodType))
	if err != nil {
		if errors.Is(err, provider.ErrSymbolNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrProviderUnavailable, err)
	}
	return rows, nil
}

func (s *ingestService) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.fetchTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.fetchTimeout)
}

// startRun records the beginning of a bulk job. Bookkeeping failures are
// logged but never disturb the ingestion itself.
func (s *ingestService) startRun(totalSymbols int) *models.IngestionRun {
	run := &models.IngestionRun{
		Status:       models.RunStatusRunning,
		TotalSymbols: totalSymbols,
		StartedAt:    time.Now().UTC(),
	}
	if err := s.db.Create(run).Error; err != nil {
		logger.Get().Errorw("failed to record ingestion run", "error", err)
		return nil
	}
	return run
}

func (s *ingestService) finishRun(run *models.IngestionRun, result BulkResult) {
	if run == nil {
		return
	}
	now := time.Now().UTC()
	run.Status = models.RunStatusCompleted
	run.SuccessCount = result.Success
	run.FailureCount = result.Failure
	run.FinishedAt = &now
	if err := s.db.Save(run).Error; err != nil {
		logger.Get().Errorw("failed to finalize ingestion run", "error", err, "run_id", run.ID)
	}
}
