package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SalesSummary aggregates transactions over a date range. Amounts are
// decimal values, already converted from cents by the query.
type SalesSummary struct {
	TotalSales       float64 `json:"total_sales"`
	TransactionCount int64   `json:"transaction_count"`
	AverageSale      float64 `json:"average_sale"`
	CashSales        float64 `json:"cash_sales"`
	GCashSales       float64 `json:"gcash_sales"`
	CardSales        float64 `json:"card_sales"`
}

// TopProductResult is one row of the top-selling-products report
type TopProductResult struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	QuantitySold int64     `json:"quantity_sold"`
	Revenue      float64   `json:"revenue"`
}

// DashboardStats summarizes the store's day at a glance
type DashboardStats struct {
	TodaySales        float64 `json:"today_sales"`
	TodayTransactions int64   `json:"today_transactions"`
	TotalProducts     int64   `json:"total_products"`
	LowStockCount     int64   `json:"low_stock_count"`
}

// AnalyticsRepository defines read-only reporting aggregates
type AnalyticsRepository interface {
	GetSalesSummary(ctx context.Context, start, end time.Time) (*SalesSummary, error)
	GetTopProducts(ctx context.Context, limit int, start, end time.Time) ([]TopProductResult, error)
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}
