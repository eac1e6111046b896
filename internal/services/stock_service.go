package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "quantboard/internal/errors"
	"quantboard/internal/models"
	"quantboard/internal/pagination"
)

// stockService handles the stock catalog and its read paths.
type stockService struct {
	db *gorm.DB
}

// NewStockService creates a new StockServicer.
func NewStockService(db *gorm.DB) StockServicer {
	return &stockService{db: db}
}

// CreateStock registers a new stock manually. A code that already exists is
// rejected; only the fetch-based upsert path treats that case as an update.
func (s *stockService) CreateStock(code string, meta StockMetadata) (*models.Stock, error) {
	if strings.TrimSpace(code) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Code is required")
	}
	if strings.TrimSpace(meta.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}

	stock := &models.Stock{Code: code}
	applyMetadata(stock, meta)

	if err := s.db.Create(stock).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateStock
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return stock, nil
}

// UpsertStock creates the stock if its code is unknown, otherwise overwrites
// every metadata field with the supplied values (last-write-wins, no diffing).
// The code is matched exactly as supplied.
func (s *stockService) UpsertStock(code string, meta StockMetadata) (*models.Stock, error) {
	var stock models.Stock
	err := s.db.Where("code = ?", code).First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.CreateStock(code, meta)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	applyMetadata(&stock, meta)
	// Save writes all fields, so cleared metadata is not retained.
	if err := s.db.Save(&stock).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &stock, nil
}

// GetStockByCode returns the bare stock record for a code.
func (s *stockService) GetStockByCode(code string) (*models.Stock, error) {
	var stock models.Stock
	if err := s.db.Where("code = ?", code).First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stock, nil
}

// GetStockDetail returns the stock with its full price history and statements
// loaded. Both collections are fetched explicitly here; nothing is loaded
// lazily on attribute access.
func (s *stockService) GetStockDetail(code string) (*models.Stock, error) {
	var stock models.Stock
	err := s.db.Where("code = ?", code).
		Preload("DailyPrices", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC")
		}).
		Preload("FinancialStatements", func(db *gorm.DB) *gorm.DB {
			return db.Order("period_end_date DESC")
		}).
		First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stock, nil
}

// ListStocks returns a paginated catalog listing ordered by code.
func (s *stockService) ListStocks(page pagination.PageRequest) (*pagination.PageResponse[models.Stock], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Stock{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var stocks []models.Stock
	if err := base.Order("code ASC").Scopes(pagination.Paginate(page)).Find(&stocks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(stocks, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetDailyPrices returns paginated daily prices for a stock, optionally
// bounded by an inclusive date range, in ascending date order.
func (s *stockService) GetDailyPrices(stockID uint, from, to *time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.DailyPrice], error) {
	page.Defaults()

	base := s.db.Model(&models.DailyPrice{}).Where("stock_id = ?", stockID)
	if from != nil {
		base = base.Where("date >= ?", *from)
	}
	if to != nil {
		base = base.Where("date <= ?", *to)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var prices []models.DailyPrice
	if err := base.Order("date ASC").Scopes(pagination.Paginate(page)).Find(&prices).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(prices, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetFinancialStatements returns a stock's statements, newest period first,
// optionally filtered by period type and exact period end date.
func (s *stockService) GetFinancialStatements(stockID uint, periodType *models.PeriodType, periodEndDate *time.Time) ([]models.FinancialStatement, error) {
	query := s.db.Where("stock_id = ?", stockID)
	if periodType != nil {
		query = query.Where("period_type = ?", *periodType)
	}
	if periodEndDate != nil {
		query = query.Where("period_end_date = ?", *periodEndDate)
	}

	var statements []models.FinancialStatement
	if err := query.Order("period_end_date DESC").Find(&statements).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return statements, nil
}

// CreateFinancialStatement inserts a manually supplied statement. An existing
// (period type, period end date) key for the stock is rejected, keeping the
// one-statement-per-period invariant.
func (s *stockService) CreateFinancialStatement(stockID uint, input StatementInput) (*models.FinancialStatement, error) {
	var count int64
	err := s.db.Model(&models.FinancialStatement{}).
		Where("stock_id = ? AND period_type = ? AND period_end_date = ?", stockID, input.PeriodType, input.PeriodEndDate).
		Count(&count).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateStatement
	}

	statement := &models.FinancialStatement{
		StockID:           stockID,
		PeriodType:        input.PeriodType,
		PeriodEndDate:     input.PeriodEndDate,
		TotalRevenue:      input.TotalRevenue,
		CostOfRevenue:     input.CostOfRevenue,
		GrossProfit:       input.GrossProfit,
		OperatingIncome:   input.OperatingIncome,
		NetIncome:         input.NetIncome,
		TotalAssets:       input.TotalAssets,
		TotalLiabilities:  input.TotalLiabilities,
		ShareholderEquity: input.ShareholderEquity,
		FreeCashFlow:      input.FreeCashFlow,
	}
	if err := s.db.Create(statement).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateStatement
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return statement, nil
}

// applyMetadata overwrites every metadata field of a stock.
func applyMetadata(stock *models.Stock, meta StockMetadata) {
	stock.Name = meta.Name
	stock.Industry = meta.Industry
	stock.Sector = meta.Sector
	stock.Country = meta.Country
	stock.Exchange = meta.Exchange
	stock.Currency = meta.Currency
	stock.MarketCap = meta.MarketCap
	stock.Website = meta.Website
}

// isUniqueConstraintError checks if a GORM error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
