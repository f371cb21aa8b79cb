package service

import (
	"context"
	"time"

	"github.com/atkinsguitar/pos-api/internal/domain/repository"
	"github.com/atkinsguitar/pos-api/pkg/apperror"
)

// BackupService exports the full data set as a JSON snapshot and restores
// from one. Restores are destructive and admin-only; the handler gates them.
type BackupService struct {
	backupRepo repository.BackupRepository
}

func NewBackupService(backupRepo repository.BackupRepository) *BackupService {
	return &BackupService{backupRepo: backupRepo}
}

func (s *BackupService) Export(ctx context.Context) (*repository.BackupSnapshot, error) {
	return s.backupRepo.Export(ctx)
}

// Restore validates the snapshot envelope and replaces the current data set.
func (s *BackupService) Restore(ctx context.Context, snapshot *repository.BackupSnapshot) error {
	if snapshot == nil {
		return apperror.NewBadRequestError("backup payload is required")
	}
	if snapshot.Version == 0 || snapshot.BackupDate.IsZero() {
		return apperror.NewBadRequestError("not a valid backup file: missing version or backup date")
	}
	if snapshot.BackupDate.After(time.Now().Add(time.Hour)) {
		return apperror.NewBadRequestError("backup date is in the future")
	}
	return s.backupRepo.Restore(ctx, snapshot)
}

// Stats reports row counts per table, shown before an export or restore.
func (s *BackupService) Stats(ctx context.Context) (map[string]int64, error) {
	return s.backupRepo.Stats(ctx)
}
