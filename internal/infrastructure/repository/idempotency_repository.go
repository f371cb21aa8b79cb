package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
)

type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository creates a new idempotency repository
func NewIdempotencyRepository(db *gorm.DB) repository.IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	var record entity.IdempotencyKey
	err := r.db.WithContext(ctx).
		Where("key = ? AND user_id = ?", key, userID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get idempotency key: %w", err)
	}
	return &record, nil
}

func (r *idempotencyRepository) Create(ctx context.Context, key *entity.IdempotencyKey) error {
	if err := r.db.WithContext(ctx).Create(key).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return repository.ErrKeyAlreadyReserved
		}
		return fmt.Errorf("failed to create idempotency key: %w", err)
	}
	return nil
}

// isUniqueViolation matches the Postgres unique constraint error the key
// index raises when two requests race the same reservation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *idempotencyRepository) Update(ctx context.Context, key *entity.IdempotencyKey) error {
	if err := r.db.WithContext(ctx).Save(key).Error; err != nil {
		return fmt.Errorf("failed to update idempotency key: %w", err)
	}
	return nil
}

func (r *idempotencyRepository) Delete(ctx context.Context, key string, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("key = ? AND user_id = ?", key, userID).
		Delete(&entity.IdempotencyKey{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete idempotency key: %w", err)
	}
	return nil
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&entity.IdempotencyKey{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete expired idempotency keys: %w", err)
	}
	return nil
}
