package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/atkinsguitar/pos-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetSalesSummary(ctx context.Context, start, end time.Time) (*repository.SalesSummary, error) {
	var summary repository.SalesSummary

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_amount), 0) / 100.0 AS total_sales,
			COUNT(*) AS transaction_count,
			COALESCE(AVG(total_amount), 0) / 100.0 AS average_sale,
			COALESCE(SUM(total_amount) FILTER (WHERE payment_type = 'cash'), 0) / 100.0 AS cash_sales,
			COALESCE(SUM(total_amount) FILTER (WHERE payment_type = 'gcash'), 0) / 100.0 AS gcash_sales,
			COALESCE(SUM(total_amount) FILTER (WHERE payment_type = 'card'), 0) / 100.0 AS card_sales
		FROM transactions
		WHERE created_at >= ? AND created_at < ?`, start, end).
		Scan(&summary).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute sales summary: %w", err)
	}

	return &summary, nil
}

func (r *analyticsRepository) GetTopProducts(ctx context.Context, limit int, start, end time.Time) ([]repository.TopProductResult, error) {
	var results []repository.TopProductResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			ti.product_id,
			ti.product_name,
			SUM(ti.quantity) AS quantity_sold,
			SUM(ti.subtotal) / 100.0 AS revenue
		FROM transaction_items ti
		JOIN transactions t ON t.id = ti.transaction_id
		WHERE t.created_at >= ? AND t.created_at < ?
		GROUP BY ti.product_id, ti.product_name
		ORDER BY quantity_sold DESC, revenue DESC
		LIMIT ?`, start, end, limit).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute top products: %w", err)
	}

	return results, nil
}

func (r *analyticsRepository) GetDashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	var stats repository.DashboardStats

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE((SELECT SUM(total_amount) FROM transactions WHERE created_at >= CURRENT_DATE), 0) / 100.0 AS today_sales,
			(SELECT COUNT(*) FROM transactions WHERE created_at >= CURRENT_DATE) AS today_transactions,
			(SELECT COUNT(*) FROM products WHERE deleted_at IS NULL AND is_active = true) AS total_products,
			(SELECT COUNT(*) FROM products WHERE deleted_at IS NULL AND is_active = true AND stock <= min_stock_threshold) AS low_stock_count`).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}

	return &stats, nil
}
