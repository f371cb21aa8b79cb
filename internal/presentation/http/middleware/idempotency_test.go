package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
)

type memoryKeyRepo struct {
	mu   sync.Mutex
	keys map[string]*entity.IdempotencyKey
}

func newMemoryKeyRepo() *memoryKeyRepo {
	return &memoryKeyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (m *memoryKeyRepo) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, ok := m.keys[key]
	if !ok || k.UserID != userID {
		return nil, nil
	}
	cp := *k
	return &cp, nil
}

func (m *memoryKeyRepo) Create(ctx context.Context, key *entity.IdempotencyKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.keys[key.Key]; exists {
		return repository.ErrKeyAlreadyReserved
	}
	cp := *key
	m.keys[key.Key] = &cp
	return nil
}

func (m *memoryKeyRepo) Update(ctx context.Context, key *entity.IdempotencyKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *key
	m.keys[key.Key] = &cp
	return nil
}

func (m *memoryKeyRepo) Delete(ctx context.Context, key string, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, key)
	return nil
}

func (m *memoryKeyRepo) DeleteExpired(ctx context.Context) error {
	return nil
}

// idempotentRouter wires a protected endpoint whose handler counts
// executions and answers with the given status.
func idempotentRouter(repo repository.IdempotencyRepository, userID uuid.UUID, status *int, executions *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/checkout",
		func(c *gin.Context) {
			c.Set(ContextUserID, userID)
			c.Next()
		},
		IdempotencyRequired(repo),
		func(c *gin.Context) {
			*executions++
			c.JSON(*status, gin.H{"success": *status < 400, "attempt": *executions})
		},
	)
	return router
}

func doRequest(router *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency_MissingKeyRejected(t *testing.T) {
	status, executions := http.StatusCreated, 0
	router := idempotentRouter(newMemoryKeyRepo(), uuid.New(), &status, &executions)

	w := doRequest(router, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, executions)
}

func TestIdempotency_ReplaySameKey(t *testing.T) {
	status, executions := http.StatusCreated, 0
	router := idempotentRouter(newMemoryKeyRepo(), uuid.New(), &status, &executions)

	first := doRequest(router, "key-1")
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, 1, executions)

	second := doRequest(router, "key-1")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, executions, "a replayed key must not execute the handler again")
}

func TestIdempotency_PendingKeyFailsClosed(t *testing.T) {
	repo := newMemoryKeyRepo()
	userID := uuid.New()
	status, executions := http.StatusCreated, 0
	router := idempotentRouter(repo, userID, &status, &executions)

	// A concurrent duplicate is still in flight: its reservation exists
	// but has not settled.
	require.NoError(t, repo.Create(context.Background(), &entity.IdempotencyKey{
		Key:       "key-race",
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	w := doRequest(router, "key-race")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, executions, "the loser of a key race must not execute")
}

func TestIdempotency_ServerErrorReleasesKey(t *testing.T) {
	repo := newMemoryKeyRepo()
	userID := uuid.New()
	status, executions := http.StatusInternalServerError, 0
	router := idempotentRouter(repo, userID, &status, &executions)

	w := doRequest(router, "key-err")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, executions)

	stored, err := repo.GetByKey(context.Background(), "key-err", userID)
	require.NoError(t, err)
	assert.Nil(t, stored, "an unsettled outcome must not hold the reservation")

	// Retry with the same key runs again and, once settled, is cached.
	status = http.StatusCreated
	w = doRequest(router, "key-err")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 2, executions)

	w = doRequest(router, "key-err")
	assert.Equal(t, "true", w.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, 2, executions)
}

func TestIdempotency_AcceptedOutcomeIsCached(t *testing.T) {
	// The committed-but-unconfirmed checkout path answers 202. It must be
	// cached so a retry replays the outcome instead of re-committing.
	status, executions := http.StatusAccepted, 0
	router := idempotentRouter(newMemoryKeyRepo(), uuid.New(), &status, &executions)

	first := doRequest(router, "key-202")
	assert.Equal(t, http.StatusAccepted, first.Code)

	second := doRequest(router, "key-202")
	assert.Equal(t, http.StatusAccepted, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, 1, executions, "a retry after an unconfirmed commit must not execute again")
}

func TestIdempotency_ExpiredKeyStartsOver(t *testing.T) {
	repo := newMemoryKeyRepo()
	userID := uuid.New()
	status, executions := http.StatusCreated, 0
	router := idempotentRouter(repo, userID, &status, &executions)

	require.NoError(t, repo.Create(context.Background(), &entity.IdempotencyKey{
		Key:          "key-old",
		UserID:       userID,
		ResponseCode: http.StatusCreated,
		ResponseBody: `{"stale":true}`,
		ExpiresAt:    time.Now().Add(-time.Minute),
	}))

	w := doRequest(router, "key-old")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, 1, executions)
}
