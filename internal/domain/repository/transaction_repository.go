package repository

import (
	"context"
	"strings"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/enum"
	"github.com/google/uuid"
)

// SaleLine is the projection of one cart line handed to the atomic commit.
type SaleLine struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice int64 // cents
}

// SaleInput is everything the atomic commit needs to persist a sale.
type SaleInput struct {
	CashierID   uuid.UUID
	CashierName string
	PaymentType enum.PaymentType
	AmountPaid  int64 // cents
	Notes       string
	Lines       []SaleLine
}

// SaleResult identifies the transaction created by a successful commit.
type SaleResult struct {
	TransactionID     uuid.UUID
	TransactionNumber string
}

// StockConflictError is returned by CommitSale when live stock was
// insufficient for one or more lines. The whole commit has been rolled back;
// nothing was written and no stock changed.
type StockConflictError struct {
	ProductNames []string
}

func (e *StockConflictError) Error() string {
	return "insufficient stock for: " + strings.Join(e.ProductNames, ", ")
}

// TransactionRepository defines the interface for sale persistence and the
// transaction history read path.
type TransactionRepository interface {
	// CommitSale atomically re-validates stock, decrements it, and inserts
	// the transaction with its items and a fresh transaction number. Either
	// every write lands or none do. Returns *StockConflictError when any
	// line loses the stock race.
	CommitSale(ctx context.Context, input *SaleInput) (*SaleResult, error)

	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	List(ctx context.Context, limit int) ([]entity.Transaction, error)
	ListByDateRange(ctx context.Context, start, end string) ([]entity.Transaction, error)
}
