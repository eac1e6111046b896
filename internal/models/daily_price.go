package models

import "time"

// DailyPrice represents one trading day's summary for a stock.
// This is immutable time-series data: rows are only ever appended past the
// latest persisted date, never updated or deleted. No Base embed, no UpdatedAt.
type DailyPrice struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StockID     uint      `gorm:"not null;uniqueIndex:uq_daily_prices_stock_date" json:"stock_id"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uq_daily_prices_stock_date" json:"date"`
	Open        *float64  `json:"open,omitempty"`
	High        *float64  `json:"high,omitempty"`
	Low         *float64  `json:"low,omitempty"`
	Close       *float64  `json:"close,omitempty"`
	AdjClose    *float64  `json:"adj_close,omitempty"`
	Volume      *int64    `gorm:"type:bigint" json:"volume,omitempty"`
	Dividends   float64   `gorm:"default:0" json:"dividends"`
	StockSplits float64   `gorm:"default:0" json:"stock_splits"`
	CreatedAt   time.Time `json:"created_at"`
}
