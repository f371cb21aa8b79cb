package repository

import (
	"context"
	"errors"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/google/uuid"
)

// ErrKeyAlreadyReserved is returned by Create when the key is already held,
// by this or a concurrent request.
var ErrKeyAlreadyReserved = errors.New("idempotency key already reserved")

// IdempotencyRepository defines the interface for idempotency key storage.
// Keys are reserved before their request runs and settled afterwards, so a
// concurrent duplicate fails closed on the unique key index.
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	// Create inserts a reservation. Returns ErrKeyAlreadyReserved when the
	// key exists already.
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	// Update settles a reserved key with its response.
	Update(ctx context.Context, key *entity.IdempotencyKey) error
	// Delete releases a key so the client may retry with it.
	Delete(ctx context.Context, key string, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) error
}
