package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// CommitSale performs the atomic checkout commit. All stock decrements, the
// sequence allocation, and the transaction inserts run inside one database
// transaction: any failure rolls back every write.
func (r *transactionRepository) CommitSale(ctx context.Context, input *repository.SaleInput) (*repository.SaleResult, error) {
	var result repository.SaleResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Conditional decrement per line. RowsAffected == 0 means live
		// stock was below the requested quantity; collect every failing
		// line so the client sees the full list, then roll back.
		var conflicts []string
		for _, line := range input.Lines {
			res := tx.Model(&entity.Product{}).
				Where("id = ? AND stock >= ? AND is_active = ?", line.ProductID, line.Quantity, true).
				Update("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				conflicts = append(conflicts, line.Name)
			}
		}
		if len(conflicts) > 0 {
			return &repository.StockConflictError{ProductNames: conflicts}
		}

		number, err := nextTransactionNumber(tx)
		if err != nil {
			return err
		}

		var total int64
		for _, line := range input.Lines {
			total += line.UnitPrice * int64(line.Quantity)
		}

		txn := &entity.Transaction{
			TransactionNumber: number,
			CashierID:         input.CashierID,
			CashierName:       input.CashierName,
			TotalAmount:       total,
			PaymentType:       input.PaymentType,
			AmountPaid:        input.AmountPaid,
			ChangeAmount:      input.AmountPaid - total,
		}
		if input.Notes != "" {
			txn.Notes = &input.Notes
		}
		if err := tx.Create(txn).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		items := make([]entity.TransactionItem, 0, len(input.Lines))
		for _, line := range input.Lines {
			items = append(items, entity.TransactionItem{
				TransactionID: txn.ID,
				ProductID:     line.ProductID,
				ProductName:   line.Name,
				Quantity:      line.Quantity,
				PriceEach:     line.UnitPrice,
				Subtotal:      line.UnitPrice * int64(line.Quantity),
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create transaction items: %w", err)
		}

		result = repository.SaleResult{
			TransactionID:     txn.ID,
			TransactionNumber: txn.TransactionNumber,
		}
		return nil
	})
	if err != nil {
		var conflict *repository.StockConflictError
		if errors.As(err, &conflict) {
			return nil, conflict
		}
		return nil, err
	}

	return &result, nil
}

// nextTransactionNumber allocates the next per-day sequence with an upsert.
// The row lock taken by ON CONFLICT DO UPDATE serializes concurrent commits
// on the same day, so two checkouts can never share a number.
func nextTransactionNumber(tx *gorm.DB) (string, error) {
	day := time.Now().Format("20060102")

	var seq int
	err := tx.Raw(`
		INSERT INTO transaction_counters (day, last_seq)
		VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET last_seq = transaction_counters.last_seq + 1
		RETURNING last_seq`, day).Scan(&seq).Error
	if err != nil {
		return "", fmt.Errorf("failed to allocate transaction number: %w", err)
	}

	return fmt.Sprintf("TXN-%s-%04d", day, seq), nil
}

func (r *transactionRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txn entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

func (r *transactionRepository) List(ctx context.Context, limit int) ([]entity.Transaction, error) {
	var txns []entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (r *transactionRepository) ListByDateRange(ctx context.Context, start, end string) ([]entity.Transaction, error) {
	var txns []entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("created_at >= ?::date AND created_at < ?::date + interval '1 day'", start, end).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by date range: %w", err)
	}
	return txns, nil
}
