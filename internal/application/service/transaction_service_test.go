package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/enum"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
	"github.com/atkinsguitar/pos-api/pkg/apperror"
)

func seedSales(t *testing.T, txnRepo *mockTxnRepo, cashier *entity.User, n int) []uuid.UUID {
	t.Helper()
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		p := &entity.Product{Name: "Strings", Price: 1500, Stock: 1000, IsActive: true}
		require.NoError(t, txnRepo.products.Create(context.Background(), p))
		res, err := txnRepo.CommitSale(context.Background(), &repository.SaleInput{
			CashierID:   cashier.ID,
			CashierName: cashier.Name,
			PaymentType: enum.PaymentTypeCash,
			AmountPaid:  1500,
			Lines:       []repository.SaleLine{{ProductID: p.ID, Name: p.Name, Quantity: 1, UnitPrice: 1500}},
		})
		require.NoError(t, err)
		ids = append(ids, res.TransactionID)
	}
	return ids
}

func TestTransactionList_NewestFirst(t *testing.T) {
	productRepo := newMockProductRepo()
	txnRepo := newMockTxnRepo(productRepo)
	cashier := &entity.User{ID: uuid.New(), Name: "John Doe"}
	ids := seedSales(t, txnRepo, cashier, 3)

	svc := NewTransactionService(txnRepo)
	txns, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, ids[2], txns[0].ID)
	assert.Equal(t, ids[0], txns[2].ID)
}

func TestTransactionList_DefaultLimit(t *testing.T) {
	productRepo := newMockProductRepo()
	txnRepo := newMockTxnRepo(productRepo)
	cashier := &entity.User{ID: uuid.New(), Name: "John Doe"}
	seedSales(t, txnRepo, cashier, 2)

	svc := NewTransactionService(txnRepo)

	txns, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, txns, 2)

	txns, err = svc.List(context.Background(), -5)
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestTransactionList_ClampsOversizedLimit(t *testing.T) {
	productRepo := newMockProductRepo()
	txnRepo := newMockTxnRepo(productRepo)
	cashier := &entity.User{ID: uuid.New(), Name: "John Doe"}
	seedSales(t, txnRepo, cashier, 2)

	svc := NewTransactionService(txnRepo)

	_, err := svc.List(context.Background(), 9999)
	require.NoError(t, err)
	assert.Equal(t, 500, txnRepo.lastListLimit, "oversized limits clamp to the maximum, not the default")

	_, err = svc.List(context.Background(), 250)
	require.NoError(t, err)
	assert.Equal(t, 250, txnRepo.lastListLimit, "limits within range pass through")
}

func TestTransactionGetByID(t *testing.T) {
	productRepo := newMockProductRepo()
	txnRepo := newMockTxnRepo(productRepo)
	cashier := &entity.User{ID: uuid.New(), Name: "John Doe"}
	ids := seedSales(t, txnRepo, cashier, 1)

	svc := NewTransactionService(txnRepo)

	txn, err := svc.GetByID(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Len(t, txn.Items, 1)
	assert.Equal(t, "Strings", txn.Items[0].ProductName)

	_, err = svc.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestTransactionListByDateRange_RejectsBadDates(t *testing.T) {
	svc := NewTransactionService(newMockTxnRepo(newMockProductRepo()))

	_, err := svc.ListByDateRange(context.Background(), "01/02/2026", "2026-02-01")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
