package models

// Stock represents a tracked equity identified by its unique ticker code.
// Identity for all fetch/merge operations is the code, never the surrogate ID.
type Stock struct {
	Base
	Code      string `gorm:"not null;uniqueIndex:uq_stocks_code" json:"code"`
	Name      string `gorm:"not null" json:"name"`
	Industry  string `json:"industry,omitempty"`
	Sector    string `json:"sector,omitempty"`
	Country   string `json:"country,omitempty"`
	Exchange  string `json:"exchange,omitempty"`
	Currency  string `json:"currency,omitempty"`
	MarketCap *int64 `gorm:"type:bigint" json:"market_cap,omitempty"`
	Website   string `json:"website,omitempty"`

	DailyPrices         []DailyPrice         `gorm:"foreignKey:StockID" json:"daily_prices,omitempty"`
	FinancialStatements []FinancialStatement `gorm:"foreignKey:StockID" json:"financial_statements,omitempty"`
}
