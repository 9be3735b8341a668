package idempotency

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"backoffice.app/billing/model"
	"backoffice.app/billing/response"
	"backoffice.app/pkg/errs"
)

var (
	IDEMPOTENCY_HEADER = "X-Idempotency-Key"
	REPLAYED_HEADER    = "Idempotent-Replayed"
)

// MaxBodyBytes bounds the body buffered for hashing. It matches the limit the
// handlers decode with.
const MaxBodyBytes = 1 << 16

const (
	statusProcessing = model.IdempotencyProcessing
	statusCompleted  = model.IdempotencyCompleted
)

// Middleware makes POST handlers safe to resubmit. The first request for a
// key runs, later ones with the same body replay its response.
type Middleware struct {
	cache  Cache
	logger *zap.Logger
	now    func() time.Time
}

func NewMiddleware(cache Cache, logger *zap.Logger) *Middleware {
	return &Middleware{
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idempotencyKey, err := extractIdempotencyKey(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		body, readErr := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
		if readErr != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(readErr, &tooLarge) {
				response.Error(w, &errs.Error{Code: errs.InvalidArgument, Message: "request body too large"})
				return
			}
			response.Error(w, &errs.Error{Code: errs.InvalidArgument, Message: "failed to read request body"})
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		bodyHash := hashing(body)

		cacheKey := model.IdempotencyKey{
			Resource: r.URL.Path,
			Key:      idempotencyKey,
		}

		acquired, markErr := m.markAsProcessing(r.Context(), cacheKey, bodyHash)
		if markErr != nil {
			response.Error(w, markErr)
			return
		}
		if !acquired {
			m.handleExistingEntry(w, r, cacheKey, bodyHash, idempotencyKey)
			return
		}

		rec := &responseRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		// The request context may already be cancelled by a timeout.
		ctx := context.WithoutCancel(r.Context())
		if rec.successful() {
			m.markAsCompleted(ctx, cacheKey, bodyHash, idempotencyKey, rec)
		} else {
			m.deleteCacheEntry(ctx, cacheKey)
		}
	})
}

// extractIdempotencyKey extracts and validates the idempotency key from headers
func extractIdempotencyKey(r *http.Request) (string, *errs.Error) {
	idempotencyKey := strings.TrimSpace(r.Header.Get(IDEMPOTENCY_HEADER))
	if len(idempotencyKey) == 0 {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}
	return idempotencyKey, nil
}

// handleExistingEntry handles cases where a cache entry already exists
func (m *Middleware) handleExistingEntry(w http.ResponseWriter, r *http.Request, cacheKey model.IdempotencyKey, bodyHash, idempotencyKey string) {
	entry, err := m.cache.Get(r.Context(), cacheKey)
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			// Expired between the reservation attempt and the read.
			m.handleProcessingEntry(w, idempotencyKey)
			return
		}
		m.logger.Error("failed to check idempotency", zap.String("key", idempotencyKey), zap.Error(err))
		response.Error(w, &errs.Error{Code: errs.Internal, Message: "Failed to check idempotency"})
		return
	}

	if err := validateBodyHash(entry, bodyHash); err != nil {
		response.Error(w, err)
		return
	}

	switch entry.Status {
	case statusProcessing:
		m.handleProcessingEntry(w, idempotencyKey)
	case statusCompleted:
		m.handleCompletedEntry(w, entry, idempotencyKey)
	default:
		m.logger.Warn("unknown cache entry status", zap.String("key", idempotencyKey), zap.String("status", string(entry.Status)))
		response.Error(w, &errs.Error{Code: errs.Aborted, Message: "idempotency entry is unusable, retry with a new key"})
	}
}

// validateBodyHash checks for conflicts in request body hash
func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

// handleProcessingEntry handles concurrent request detection
func (m *Middleware) handleProcessingEntry(w http.ResponseWriter, idempotencyKey string) {
	m.logger.Info("concurrent request detected", zap.String("key", idempotencyKey))
	response.Error(w, &errs.Error{Code: errs.Aborted, Message: "Request is already being processed."})
}

// handleCompletedEntry replays the stored response
func (m *Middleware) handleCompletedEntry(w http.ResponseWriter, entry model.IdempotencyCacheEntry, idempotencyKey string) {
	if !entry.Replayable() {
		m.logger.Warn("cached response is empty", zap.String("key", idempotencyKey))
		response.Error(w, &errs.Error{Code: errs.Aborted, Message: "idempotency entry is unusable, retry with a new key"})
		return
	}

	m.logger.Info("returning cached response", zap.String("key", idempotencyKey))

	statusCode := entry.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(REPLAYED_HEADER, "true")
	w.WriteHeader(statusCode)
	_, _ = w.Write(entry.Response)
}

// markAsProcessing reserves the key. It reports false when another request
// already holds it.
func (m *Middleware) markAsProcessing(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string) (bool, *errs.Error) {
	acquired, err := m.cache.SetIfAbsent(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:          statusProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       m.now(),
	})
	if err != nil {
		m.logger.Error("failed to mark request as processing", zap.Error(err))
		return false, &errs.Error{Code: errs.Internal, Message: "Failed to mark request as processing"}
	}
	return acquired, nil
}

// deleteCacheEntry removes processing entry to allow retry
func (m *Middleware) deleteCacheEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if err := m.cache.Delete(ctx, cacheKey); err != nil {
		m.logger.Error("failed to clear failed request from cache", zap.Error(err))
	}
}

// markAsCompleted caches the successful response
func (m *Middleware) markAsCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash, idempotencyKey string, rec *responseRecorder) {
	payload := bytes.TrimSpace(rec.body.Bytes())
	if !json.Valid(payload) {
		m.logger.Error("response is not JSON, not caching", zap.String("key", idempotencyKey))
		m.deleteCacheEntry(ctx, cacheKey)
		return
	}

	now := m.now()
	completedEntry := model.IdempotencyCacheEntry{
		Status:          statusCompleted,
		RequestBodyHash: bodyHash,
		StatusCode:      rec.status(),
		Response:        payload,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := m.cache.Set(ctx, cacheKey, completedEntry); err != nil {
		m.logger.Error("failed to cache successful response", zap.Error(err))
		return
	}

	m.logger.Debug("request completed and response cached", zap.String("key", idempotencyKey))
}

// hashing creates a stable hash of the JSON request body
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	hash := md5.New()
	hash.Write(body)
	return hex.EncodeToString(hash.Sum(nil))
}

// responseRecorder copies what the handler writes so it can be cached.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (r *responseRecorder) WriteHeader(code int) {
	if r.statusCode == 0 {
		r.statusCode = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) status() int {
	if r.statusCode == 0 {
		return http.StatusOK
	}
	return r.statusCode
}

func (r *responseRecorder) successful() bool {
	code := r.status()
	return code >= 200 && code < 300
}
