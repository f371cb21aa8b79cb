package repository

import (
	"context"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
)

// SettingsRepository defines the interface for app settings data access.
// The settings table holds at most one row.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.AppSettings, error)
	Save(ctx context.Context, settings *entity.AppSettings) error
}
