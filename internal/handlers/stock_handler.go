package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "quantboard/internal/errors"
	"quantboard/internal/models"
	"quantboard/internal/pagination"
	"quantboard/internal/services"
)

// StockHandler handles stock catalog requests.
type StockHandler struct {
	stockService services.StockServicer
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService services.StockServicer) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// CreateStockRequest represents the request payload for manual stock registration.
type CreateStockRequest struct {
	Code      string `json:"code" binding:"required,symbol,max=20"`
	Name      string `json:"name" binding:"required,min=1,max=200"`
	Industry  string `json:"industry,omitempty"`
	Sector    string `json:"sector,omitempty"`
	Country   string `json:"country,omitempty"`
	Exchange  string `json:"exchange,omitempty"`
	Currency  string `json:"currency,omitempty"`
	MarketCap *int64 `json:"market_cap,omitempty"`
	Website   string `json:"website,omitempty"`
}

// CreateStatementRequest represents the request payload for a manual statement insert.
type CreateStatementRequest struct {
	PeriodType        models.PeriodType `json:"period_type" binding:"required,period_type"`
	PeriodEndDate     string            `json:"period_end_date" binding:"required"`
	TotalRevenue      *int64            `json:"total_revenue,omitempty"`
	CostOfRevenue     *int64            `json:"cost_of_revenue,omitempty"`
	GrossProfit       *int64            `json:"gross_profit,omitempty"`
	OperatingIncome   *int64            `json:"operating_income,omitempty"`
	NetIncome         *int64            `json:"net_income,omitempty"`
	TotalAssets       *int64            `json:"total_assets,omitempty"`
	TotalLiabilities  *int64            `json:"total_liabilities,omitempty"`
	ShareholderEquity *int64            `json:"shareholder_equity,omitempty"`
	FreeCashFlow      *int64            `json:"free_cash_flow,omitempty"`
}

// ListStocks handles listing the stock catalog.
// @Summary     List stocks
// @Description Get a paginated list of tracked stocks ordered by code
// @Tags        stocks
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Stock] "Paginated stocks"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /stocks [get]
func (h *StockHandler) ListStocks(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.stockService.ListStocks(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateStock handles manual stock registration.
// @Summary     Register stock
// @Description Manually register a new stock; fails if the code already exists
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Param       request body CreateStockRequest true "Stock details"
// @Success     201 {object} models.Stock "Stock created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate code"
// @Router      /stocks [post]
func (h *StockHandler) CreateStock(c *gin.Context) {
	var req CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	stock, err := h.stockService.CreateStock(req.Code, services.StockMetadata{
		Name:      req.Name,
		Industry:  req.Industry,
		Sector:    req.Sector,
		Country:   req.Country,
		Exchange:  req.Exchange,
		Currency:  req.Currency,
		MarketCap: req.MarketCap,
		Website:   req.Website,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"stock": stock})
}

// GetStock handles retrieving one stock with its full history.
// @Summary     Get stock by code
// @Description Get a stock with its daily prices and financial statements
// @Tags        stocks
// @Produce     json
// @Param       code path string true "Stock code"
// @Success     200 {object} models.Stock "Stock with history"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Router      /stocks/{code} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	stock, err := h.stockService.GetStockDetail(c.Param("code"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stock": stock})
}

// GetDailyPrices handles retrieving a stock's price history.
// @Summary     Get daily prices
// @Description Get a stock's daily prices, optionally bounded by a date range
// @Tags        stocks
// @Produce     json
// @Param       code      path  string true  "Stock code"
// @Param       from_date query string false "Start date (YYYY-MM-DD)"
// @Param       to_date   query string false "End date (YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.DailyPrice] "Paginated prices"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Router      /stocks/{code}/prices [get]
func (h *StockHandler) GetDailyPrices(c *gin.Context) {
	stock, err := h.stockService.GetStockByCode(c.Param("code"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, err := optionalDate(c.Query("from_date"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	to, err := optionalDate(c.Query("to_date"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.stockService.GetDailyPrices(stock.ID, from, to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetFinancialStatements handles retrieving a stock's statements.
// @Summary     Get financial statements
// @Description Get a stock's statements, filtered by period type and end date
// @Tags        stocks
// @Produce     json
// @Param       code            path  string true  "Stock code"
// @Param       period_type     query string false "annual or quarterly"
// @Param       period_end_date query string false "Exact period end date (YYYY-MM-DD)"
// @Success     200 {object} map[string][]models.FinancialStatement "Statements"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Router      /stocks/{code}/financials [get]
func (h *StockHandler) GetFinancialStatements(c *gin.Context) {
	stock, err := h.stockService.GetStockByCode(c.Param("code"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	var periodType *models.PeriodType
	if v := c.Query("period_type"); v != "" {
		pt := models.PeriodType(v)
		if pt != models.PeriodTypeAnnual && pt != models.PeriodTypeQuarterly {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "period_type must be annual or quarterly"))
			return
		}
		periodType = &pt
	}

	endDate, err := optionalDate(c.Query("period_end_date"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	statements, err := h.stockService.GetFinancialStatements(stock.ID, periodType, endDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"financial_statements": statements})
}

// CreateFinancialStatement handles a manual statement insert.
// @Summary     Add financial statement
// @Description Manually add a statement for a reporting period; an existing period is rejected
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Param       code    path string                  true "Stock code"
// @Param       request body CreateStatementRequest true "Statement details"
// @Success     201 {object} models.FinancialStatement "Statement created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Failure     409 {object} ErrorResponse "Duplicate period"
// @Router      /stocks/{code}/financials [post]
func (h *StockHandler) CreateFinancialStatement(c *gin.Context) {
	stock, err := h.stockService.GetStockByCode(c.Param("code"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	endDate, err := parseDate(req.PeriodEndDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	statement, err := h.stockService.CreateFinancialStatement(stock.ID, services.StatementInput{
		PeriodType:        req.PeriodType,
		PeriodEndDate:     endDate,
		TotalRevenue:      req.TotalRevenue,
		CostOfRevenue:     req.CostOfRevenue,
		GrossProfit:       req.GrossProfit,
		OperatingIncome:   req.OperatingIncome,
		NetIncome:         req.NetIncome,
		TotalAssets:       req.TotalAssets,
		TotalLiabilities:  req.TotalLiabilities,
		ShareholderEquity: req.ShareholderEquity,
		FreeCashFlow:      req.FreeCashFlow,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"financial_statement": statement})
}
