// Package middleware provides HTTP middleware components for the bank API.
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "X-Idempotent-Replayed"
	maxIdempotencyKeyLen = 255
)

// ErrCodeIdempotencyKeyInUse is returned while another request holds the same key
const ErrCodeIdempotencyKeyInUse = "idempotency_key_in_use"

// DefaultInFlightTTL bounds how long a crashed request can hold a key.
const DefaultInFlightTTL = time.Minute

// idempotentPaths lists the mutating endpoints that honour Idempotency-Key
var idempotentPaths = []string{
	"/api/v1/transfers/initiate",
	"/api/v1/transfers/validate",
	"/api/v1/beneficiaries",
}

// idempotentActions are admin transfer actions addressed by id
var idempotentActions = []string{"/approve", "/reject"}

const adminTransfersPrefix = "/api/v1/admin/transfers/"

// IdempotencyStore persists replayable responses
type IdempotencyStore interface {
	// Get returns nil when nothing is cached for scope and key.
	Get(ctx context.Context, scope, key string) (*models.IdempotencyKey, error)
	Store(ctx context.Context, record *models.IdempotencyKey) error
	// Reserve claims scope and key for one in-flight request. It reports
	// false when another request already holds the claim.
	Reserve(ctx context.Context, scope, key string) (bool, error)
	Release(ctx context.Context, scope, key string) error
}

// RedisIdempotencyStore keeps cached responses in Redis with a TTL
type RedisIdempotencyStore struct {
	client      *redis.Client
	ttl         time.Duration
	inFlightTTL time.Duration
}

// NewRedisIdempotencyStore creates a store whose entries expire after ttl
func NewRedisIdempotencyStore(client *redis.Client, ttl time.Duration) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client, ttl: ttl, inFlightTTL: DefaultInFlightTTL}
}

func redisKey(scope, key string) string {
	return "idempotency:" + scope + ":" + key
}

func inFlightKey(scope, key string) string {
	return "idempotency-inflight:" + scope + ":" + key
}

// Get loads a cached response
func (s *RedisIdempotencyStore) Get(ctx context.Context, scope, key string) (*models.IdempotencyKey, error) {
	raw, err := s.client.Get(ctx, redisKey(scope, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read idempotency key: %w", err)
	}

	var record models.IdempotencyKey
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode idempotency key: %w", err)
	}
	return &record, nil
}

// Store saves record unless an entry already exists for its scope and key
func (s *RedisIdempotencyStore) Store(ctx context.Context, record *models.IdempotencyKey) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode idempotency key: %w", err)
	}

	if err := s.client.SetNX(ctx, redisKey(record.Scope, record.Key), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}
	return nil
}

// Reserve takes the in-flight claim for scope and key
func (s *RedisIdempotencyStore) Reserve(ctx context.Context, scope, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, inFlightKey(scope, key), time.Now().UnixMilli(), s.inFlightTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to reserve idempotency key: %w", err)
	}
	return ok, nil
}

// Release drops the in-flight claim for scope and key
func (s *RedisIdempotencyStore) Release(ctx context.Context, scope, key string) error {
	if err := s.client.Del(ctx, inFlightKey(scope, key)).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}

type responseCapture struct {
	http.ResponseWriter
	body       bytes.Buffer
	statusCode int
}

func newResponseCapture(w http.ResponseWriter) *responseCapture {
	return &responseCapture{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rc *responseCapture) WriteHeader(code int) {
	rc.statusCode = code
	rc.ResponseWriter.WriteHeader(code)
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	rc.body.Write(b)
	return rc.ResponseWriter.Write(b)
}

// Idempotency replays the first successful response for a repeated
// Idempotency-Key. Keys are scoped to the caller and the request path, so it
// must run after Authenticate. A duplicate arriving while the first request is
// still running gets 409. Store failures fail open.
func Idempotency(store IdempotencyStore, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requiresIdempotency(r) {
				next.ServeHTTP(w, r)
				return
			}

			idempotencyKey := strings.TrimSpace(r.Header.Get(idempotencyKeyHeader))
			if idempotencyKey == "" {
				next.ServeHTTP(w, r)
				return
			}
			if len(idempotencyKey) > maxIdempotencyKeyLen {
				writeError(w, http.StatusBadRequest, "invalid_request", "Idempotency-Key is too long")
				return
			}

			requestPath := normalizeRequestPath(r.URL.Path)
			scope := requestScope(r.Context(), requestPath)
			ctx := r.Context()

			cached, err := store.Get(ctx, scope, idempotencyKey)
			if err != nil {
				logger.Error("failed to check idempotency cache", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if cached != nil {
				replay(w, cached, logger)
				return
			}

			reserved, err := store.Reserve(ctx, scope, idempotencyKey)
			if err != nil {
				logger.Error("failed to reserve idempotency key", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if !reserved {
				writeError(w, http.StatusConflict, ErrCodeIdempotencyKeyInUse,
					"a request with this Idempotency-Key is still in progress")
				return
			}
			defer func() {
				if err := store.Release(context.WithoutCancel(ctx), scope, idempotencyKey); err != nil {
					logger.Error("failed to release idempotency key", "error", err, "key", idempotencyKey)
				}
			}()

			// the previous holder may have stored its response between Get and Reserve
			if cached, err := store.Get(ctx, scope, idempotencyKey); err == nil && cached != nil {
				replay(w, cached, logger)
				return
			}

			capture := newResponseCapture(w)
			next.ServeHTTP(capture, r)

			if shouldCacheResponse(capture.statusCode) {
				record := &models.IdempotencyKey{
					Key:            idempotencyKey,
					Scope:          scope,
					RequestPath:    requestPath,
					ResponseStatus: capture.statusCode,
					ResponseBody:   capture.body.String(),
					CreatedAt:      time.Now(),
				}

				if err := store.Store(context.WithoutCancel(ctx), record); err != nil {
					logger.Error("failed to store idempotency key",
						"error", err,
						"key", idempotencyKey,
					)
				}
			}
		})
	}
}

func replay(w http.ResponseWriter, cached *models.IdempotencyKey, logger *slog.Logger) {
	logger.Debug("returning cached idempotent response",
		"key", cached.Key,
		"path", cached.RequestPath,
		"status", cached.ResponseStatus,
	)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(replayedHeader, "true")
	w.WriteHeader(cached.ResponseStatus)
	//nolint:errcheck // Best effort response writing
	w.Write([]byte(cached.ResponseBody))
}

func requestScope(ctx context.Context, path string) string {
	caller := "anonymous"
	if id, ok := IdentityFrom(ctx); ok {
		caller = id.UserID.String()
	}
	return caller + ":" + path
}

func requiresIdempotency(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}

	path := normalizeRequestPath(r.URL.Path)
	for _, p := range idempotentPaths {
		if path == p {
			return true
		}
	}

	if strings.HasPrefix(path, adminTransfersPrefix) {
		for _, action := range idempotentActions {
			if strings.HasSuffix(path, action) {
				return true
			}
		}
	}
	return false
}

func normalizeRequestPath(urlPath string) string {
	return strings.TrimSuffix(urlPath, "/")
}

func shouldCacheResponse(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
