package middleware

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/dto/response"
)

// idempotencyKeyTTL is how long a processed request can be replayed.
const idempotencyKeyTTL = 24 * time.Hour

// bodyRecorder captures the response body so it can be cached for replays
type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// IdempotencyRequired protects an endpoint against duplicate submissions.
// The client must send an Idempotency-Key header. The key is RESERVED
// before the handler runs, so a concurrent duplicate fails closed on the
// unique key index instead of executing twice. A repeated key within the
// TTL gets the original response replayed instead of a second execution.
// This is how a register recovers from an unknown checkout outcome: re-ask
// with the same key, never re-submit blind.
func IdempotencyRequired(repo repository.IdempotencyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			response.Error(c, http.StatusBadRequest, "Idempotency-Key header is required", nil)
			c.Abort()
			return
		}

		userID, ok := UserIDFromContext(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			c.Abort()
			return
		}

		ctx := c.Request.Context()

		existing, err := repo.GetByKey(ctx, key, userID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
			c.Abort()
			return
		}
		if existing != nil {
			switch {
			case existing.IsExpired():
				// Stale reservation or cache; release it and start over.
				if err := repo.Delete(ctx, key, userID); err != nil {
					response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
					c.Abort()
					return
				}
			case existing.IsPending():
				response.Error(c, http.StatusConflict, "Request with this idempotency key is still being processed", nil)
				c.Abort()
				return
			default:
				c.Header("X-Idempotency-Replayed", "true")
				c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
				c.Abort()
				return
			}
		}

		record := &entity.IdempotencyKey{
			Key:       key,
			UserID:    userID,
			Endpoint:  c.Request.Method + " " + c.FullPath(),
			ExpiresAt: time.Now().Add(idempotencyKeyTTL),
		}
		if err := repo.Create(ctx, record); err != nil {
			if errors.Is(err, repository.ErrKeyAlreadyReserved) {
				// Lost the race to a concurrent duplicate; fail closed.
				response.Error(c, http.StatusConflict, "Request with this idempotency key is still being processed", nil)
			} else {
				response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
			}
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		c.Next()

		// Settle the key with the outcome. 5xx means the operation did not
		// settle, so the reservation is released and the client may retry
		// with the same key. Everything below 5xx is cached for replay,
		// including the committed-but-unconfirmed outcome.
		status := c.Writer.Status()
		if status >= http.StatusInternalServerError {
			if err := repo.Delete(ctx, key, userID); err != nil {
				log.Printf("failed to release idempotency key: %v", err)
			}
			return
		}

		record.ResponseCode = status
		record.ResponseBody = recorder.body.String()
		if err := repo.Update(ctx, record); err != nil {
			// A failed cache write must not fail the already-sent response,
			// but the key has to be released or replays would see a
			// pending row forever.
			log.Printf("failed to settle idempotency key: %v", err)
			if err := repo.Delete(ctx, key, userID); err != nil {
				log.Printf("failed to release idempotency key: %v", err)
			}
		}
	}
}

// CleanupExpiredKeys deletes expired idempotency keys on a fixed interval.
// Run it from main in its own goroutine.
func CleanupExpiredKeys(repo repository.IdempotencyRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := repo.DeleteExpired(context.Background()); err != nil {
			log.Printf("failed to delete expired idempotency keys: %v", err)
		}
	}
}
