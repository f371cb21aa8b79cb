package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
)

// backupVersion is the snapshot format version written by Export and
// accepted by Restore.
const backupVersion = 1

type backupRepository struct {
	db *gorm.DB
}

// NewBackupRepository creates a new backup repository
func NewBackupRepository(db *gorm.DB) repository.BackupRepository {
	return &backupRepository{db: db}
}

func (r *backupRepository) Export(ctx context.Context) (*repository.BackupSnapshot, error) {
	snapshot := &repository.BackupSnapshot{
		Version:    backupVersion,
		BackupDate: time.Now().UTC(),
	}

	db := r.db.WithContext(ctx)

	if err := db.Unscoped().Find(&snapshot.Products).Error; err != nil {
		return nil, fmt.Errorf("failed to export products: %w", err)
	}
	if err := db.Unscoped().Find(&snapshot.Users).Error; err != nil {
		return nil, fmt.Errorf("failed to export users: %w", err)
	}
	if err := db.Find(&snapshot.Transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to export transactions: %w", err)
	}
	if err := db.Find(&snapshot.TransactionItems).Error; err != nil {
		return nil, fmt.Errorf("failed to export transaction items: %w", err)
	}
	if err := db.Find(&snapshot.Settings).Error; err != nil {
		return nil, fmt.Errorf("failed to export settings: %w", err)
	}

	return snapshot, nil
}

// Restore wipes the current data and loads the snapshot inside one
// transaction. Hooks are skipped so IDs and timestamps survive the
// round trip unchanged.
func (r *backupRepository) Restore(ctx context.Context, snapshot *repository.BackupSnapshot) error {
	if snapshot.Version != backupVersion {
		return fmt.Errorf("unsupported backup version %d", snapshot.Version)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Children first, then parents.
		tables := []string{"transaction_items", "transactions", "transaction_counters", "products", "users", "app_settings", "idempotency_keys"}
		for _, table := range tables {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		insert := tx.Session(&gorm.Session{SkipHooks: true})

		if len(snapshot.Users) > 0 {
			if err := insert.Create(&snapshot.Users).Error; err != nil {
				return fmt.Errorf("failed to restore users: %w", err)
			}
		}
		if len(snapshot.Products) > 0 {
			if err := insert.Create(&snapshot.Products).Error; err != nil {
				return fmt.Errorf("failed to restore products: %w", err)
			}
		}
		if len(snapshot.Transactions) > 0 {
			// Detach preloaded items; they are restored from their own list.
			for i := range snapshot.Transactions {
				snapshot.Transactions[i].Items = nil
			}
			if err := insert.Create(&snapshot.Transactions).Error; err != nil {
				return fmt.Errorf("failed to restore transactions: %w", err)
			}
		}
		if len(snapshot.TransactionItems) > 0 {
			if err := insert.Create(&snapshot.TransactionItems).Error; err != nil {
				return fmt.Errorf("failed to restore transaction items: %w", err)
			}
		}
		if len(snapshot.Settings) > 0 {
			if err := insert.Create(&snapshot.Settings).Error; err != nil {
				return fmt.Errorf("failed to restore settings: %w", err)
			}
		}

		return rebuildTransactionCounters(tx)
	})
}

// rebuildTransactionCounters recomputes per-day sequence highs from the
// restored transaction numbers so new sales keep numbering correctly.
func rebuildTransactionCounters(tx *gorm.DB) error {
	err := tx.Exec(`
		INSERT INTO transaction_counters (day, last_seq)
		SELECT
			SUBSTRING(transaction_number FROM 5 FOR 8) AS day,
			MAX(CAST(SUBSTRING(transaction_number FROM 14) AS integer)) AS last_seq
		FROM transactions
		WHERE transaction_number ~ '^TXN-[0-9]{8}-[0-9]+$'
		GROUP BY day`).Error
	if err != nil {
		return fmt.Errorf("failed to rebuild transaction counters: %w", err)
	}
	return nil
}

func (r *backupRepository) Stats(ctx context.Context) (map[string]int64, error) {
	stats := make(map[string]int64)
	db := r.db.WithContext(ctx)

	counts := []struct {
		name  string
		model interface{}
	}{
		{"products", &entity.Product{}},
		{"users", &entity.User{}},
		{"transactions", &entity.Transaction{}},
		{"transaction_items", &entity.TransactionItem{}},
	}
	for _, c := range counts {
		var n int64
		if err := db.Model(c.model).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
		stats[c.name] = n
	}

	return stats, nil
}
