package repository

import (
	"context"
	"time"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
)

// BackupSnapshot is the full-database export envelope. Version and
// BackupDate are validated before a restore is attempted.
type BackupSnapshot struct {
	Version          int                      `json:"version"`
	BackupDate       time.Time                `json:"backup_date"`
	Products         []entity.Product         `json:"products"`
	Users            []entity.User            `json:"users"`
	Transactions     []entity.Transaction     `json:"transactions"`
	TransactionItems []entity.TransactionItem `json:"transaction_items"`
	Settings         []entity.AppSettings     `json:"app_settings"`
}

// BackupRepository exports and restores the whole data set
type BackupRepository interface {
	Export(ctx context.Context) (*BackupSnapshot, error)
	// Restore replaces all current data with the snapshot contents inside
	// one transaction; a failed restore leaves the database untouched.
	Restore(ctx context.Context, snapshot *BackupSnapshot) error
	Stats(ctx context.Context) (map[string]int64, error)
}
