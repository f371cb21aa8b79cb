package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/enum"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
)

type mockBackupRepo struct {
	exported *repository.BackupSnapshot
	restored *repository.BackupSnapshot
}

func (m *mockBackupRepo) Export(ctx context.Context) (*repository.BackupSnapshot, error) {
	return m.exported, nil
}

func (m *mockBackupRepo) Restore(ctx context.Context, snapshot *repository.BackupSnapshot) error {
	m.restored = snapshot
	return nil
}

func (m *mockBackupRepo) Stats(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{"products": 1}, nil
}

func sampleSnapshot() *repository.BackupSnapshot {
	return &repository.BackupSnapshot{
		Version:    1,
		BackupDate: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Products: []entity.Product{
			{ID: uuid.New(), Name: "Stratocaster", Price: 149900, Stock: 3, IsActive: true},
		},
		Transactions: []entity.Transaction{
			{
				ID:                uuid.New(),
				TransactionNumber: "TXN-20260830-0001",
				CashierName:       "John Doe",
				TotalAmount:       25000,
				PaymentType:       enum.PaymentTypeCash,
				AmountPaid:        30000,
				ChangeAmount:      5000,
			},
		},
		TransactionItems: []entity.TransactionItem{
			{ID: uuid.New(), ProductName: "Guitar Strings", Quantity: 2, PriceEach: 1500, Subtotal: 3000},
		},
		Settings: []entity.AppSettings{*entity.DefaultAppSettings()},
	}
}

// An exported backup travels as JSON and comes back through the standard
// decoder, the same path the restore endpoint uses. Every monetary field
// must survive in exact cents, or a restore silently destroys the data it
// was meant to protect.
func TestBackup_ExportRestoreRoundTripKeepsCents(t *testing.T) {
	repo := &mockBackupRepo{exported: sampleSnapshot()}
	svc := NewBackupService(repo)

	exported, err := svc.Export(context.Background())
	require.NoError(t, err)

	data, err := json.Marshal(exported)
	require.NoError(t, err)

	var decoded repository.BackupSnapshot
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.NoError(t, svc.Restore(context.Background(), &decoded))
	require.NotNil(t, repo.restored)

	require.Len(t, repo.restored.Products, 1)
	assert.Equal(t, int64(149900), repo.restored.Products[0].Price)

	require.Len(t, repo.restored.Transactions, 1)
	assert.Equal(t, int64(25000), repo.restored.Transactions[0].TotalAmount)
	assert.Equal(t, int64(30000), repo.restored.Transactions[0].AmountPaid)
	assert.Equal(t, int64(5000), repo.restored.Transactions[0].ChangeAmount)

	require.Len(t, repo.restored.TransactionItems, 1)
	assert.Equal(t, int64(1500), repo.restored.TransactionItems[0].PriceEach)
	assert.Equal(t, int64(3000), repo.restored.TransactionItems[0].Subtotal)

	assert.Equal(t, exported.Version, repo.restored.Version)
	assert.True(t, exported.BackupDate.Equal(repo.restored.BackupDate))
}

func TestBackupRestore_RejectsInvalidEnvelopes(t *testing.T) {
	repo := &mockBackupRepo{}
	svc := NewBackupService(repo)

	t.Run("nil payload", func(t *testing.T) {
		err := svc.Restore(context.Background(), nil)
		requireAppErrorCode(t, err, http.StatusBadRequest)
	})

	t.Run("missing version", func(t *testing.T) {
		s := sampleSnapshot()
		s.Version = 0
		err := svc.Restore(context.Background(), s)
		requireAppErrorCode(t, err, http.StatusBadRequest)
	})

	t.Run("missing backup date", func(t *testing.T) {
		s := sampleSnapshot()
		s.BackupDate = time.Time{}
		err := svc.Restore(context.Background(), s)
		requireAppErrorCode(t, err, http.StatusBadRequest)
	})

	t.Run("future backup date", func(t *testing.T) {
		s := sampleSnapshot()
		s.BackupDate = time.Now().Add(48 * time.Hour)
		err := svc.Restore(context.Background(), s)
		requireAppErrorCode(t, err, http.StatusBadRequest)
	})

	assert.Nil(t, repo.restored, "no rejected snapshot may reach the repository")
}
