package service

import (
	"context"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
	"github.com/atkinsguitar/pos-api/pkg/apperror"
)

// SettingsService reads and updates the store settings singleton.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns the current settings, or the built-in defaults when no row
// exists yet.
func (s *SettingsService) Get(ctx context.Context) (*entity.AppSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return entity.DefaultAppSettings(), nil
	}
	return settings, nil
}

// UpdateSettingsInput carries a full settings replacement.
type UpdateSettingsInput struct {
	StoreName                string
	StoreAddress             string
	StorePhone               string
	StoreEmail               string
	DefaultLowStockThreshold int
	ReceiptFooter            string
}

func (s *SettingsService) Update(ctx context.Context, input *UpdateSettingsInput) (*entity.AppSettings, error) {
	if input.StoreName == "" {
		return nil, apperror.NewBadRequestError("store name is required")
	}
	if input.DefaultLowStockThreshold < 0 {
		return nil, apperror.NewBadRequestError("low stock threshold cannot be negative")
	}

	settings := &entity.AppSettings{
		StoreName:                input.StoreName,
		StoreAddress:             input.StoreAddress,
		StorePhone:               input.StorePhone,
		StoreEmail:               input.StoreEmail,
		DefaultLowStockThreshold: input.DefaultLowStockThreshold,
		ReceiptFooter:            input.ReceiptFooter,
	}
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
