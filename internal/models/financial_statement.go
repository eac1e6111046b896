package models

import "time"

// PeriodType distinguishes annual from quarterly reporting periods.
type PeriodType string

const (
	PeriodTypeAnnual    PeriodType = "annual"
	PeriodTypeQuarterly PeriodType = "quarterly"
)

// FinancialStatement represents one reporting period's accounting metrics for
// a stock, keyed by (stock, period type, period end date). Statements are
// treated as immutable historical facts: once a key exists the row is never
// updated, even if the provider later restates the period.
type FinancialStatement struct {
	Base
	StockID           uint       `gorm:"not null;uniqueIndex:uq_statements_stock_period_date" json:"stock_id"`
	PeriodType        PeriodType `gorm:"not null;uniqueIndex:uq_statements_stock_period_date" json:"period_type"`
	PeriodEndDate     time.Time  `gorm:"type:date;not null;uniqueIndex:uq_statements_stock_period_date" json:"period_end_date"`
	TotalRevenue      *int64     `gorm:"type:bigint" json:"total_revenue,omitempty"`
	CostOfRevenue     *int64     `gorm:"type:bigint" json:"cost_of_revenue,omitempty"`
	GrossProfit       *int64     `gorm:"type:bigint" json:"gross_profit,omitempty"`
	OperatingIncome   *int64     `gorm:"type:bigint" json:"operating_income,omitempty"`
	NetIncome         *int64     `gorm:"type:bigint" json:"net_income,omitempty"`
	TotalAssets       *int64     `gorm:"type:bigint" json:"total_assets,omitempty"`
	TotalLiabilities  *int64     `gorm:"type:bigint" json:"total_liabilities,omitempty"`
	ShareholderEquity *int64     `gorm:"type:bigint" json:"shareholder_equity,omitempty"`
	FreeCashFlow      *int64     `gorm:"type:bigint" json:"free_cash_flow,omitempty"`
}
