package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
	"github.com/atkinsguitar/pos-api/pkg/apperror"
)

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 500
)

// TransactionService is the read side of the sale history: listing past
// transactions and fetching one with its items for detail views and reprints.
type TransactionService struct {
	txnRepo repository.TransactionRepository
}

func NewTransactionService(txnRepo repository.TransactionRepository) *TransactionService {
	return &TransactionService{txnRepo: txnRepo}
}

// List returns recent transactions, newest first. A non-positive limit
// falls back to the default; an oversized one is clamped to the maximum.
func (s *TransactionService) List(ctx context.Context, limit int) ([]entity.Transaction, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.txnRepo.List(ctx, limit)
}

func (s *TransactionService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, err := s.txnRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return txn, nil
}

// ListByDateRange returns transactions between two dates (inclusive),
// newest first. Dates are "YYYY-MM-DD".
func (s *TransactionService) ListByDateRange(ctx context.Context, start, end string) ([]entity.Transaction, error) {
	for _, d := range []string{start, end} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, apperror.NewBadRequestError("dates must be in YYYY-MM-DD format")
		}
	}
	return s.txnRepo.ListByDateRange(ctx, start, end)
}
