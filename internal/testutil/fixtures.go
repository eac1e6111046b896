package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"quantboard/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date builds a UTC calendar date, the form every date column stores.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestStock creates a stock with a unique code.
func CreateTestStock(t *testing.T, db *gorm.DB) *models.Stock {
	t.Helper()
	code := fmt.Sprintf("TST%d", nextID())
	return CreateTestStockWithCode(t, db, code)
}

// CreateTestStockWithCode creates a stock with the given code.
func CreateTestStockWithCode(t *testing.T, db *gorm.DB, code string) *models.Stock {
	t.Helper()

	stock := &models.Stock{
		Code:     code,
		Name:     fmt.Sprintf("Test Corp %s", code),
		Sector:   "Technology",
		Exchange: "NASDAQ",
		Currency: "USD",
	}
	if err := db.Create(stock).Error; err != nil {
		t.Fatalf("failed to create test stock: %v", err)
	}
	return stock
}

// CreateTestDailyPrice creates a price row for the given stock and date.
func CreateTestDailyPrice(t *testing.T, db *gorm.DB, stockID uint, date time.Time, close float64) *models.DailyPrice {
	t.Helper()

	price := &models.DailyPrice{
		StockID: stockID,
		Date:    date,
		Close:   &close,
	}
	if err := db.Create(price).Error; err != nil {
		t.Fatalf("failed to create test daily price: %v", err)
	}
	return price
}

// CreateTestStatement creates a financial statement for the given stock and period.
func CreateTestStatement(t *testing.T, db *gorm.DB, stockID uint, periodType models.PeriodType, endDate time.Time) *models.FinancialStatement {
	t.Helper()

	revenue := int64(1000000)
	statement := &models.FinancialStatement{
		StockID:       stockID,
		PeriodType:    periodType,
		PeriodEndDate: endDate,
		TotalRevenue:  &revenue,
	}
	if err := db.Create(statement).Error; err != nil {
		t.Fatalf("failed to create test statement: %v", err)
	}
	return statement
}
