package model

import (
	"encoding/json"
	"strings"
	"time"
)

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

// IdempotencyKey scopes a client key to the mutation it guards, so the same
// key sent to a payment and an adjustment route never collides.
type IdempotencyKey struct {
	Resource string
	Key      string
}

// Path is the storage path of the key, without any deployment prefix.
func (k IdempotencyKey) Path() string {
	return "idempotency/" + strings.Trim(k.Resource, "/") + "/" + k.Key
}

// IdempotencyCacheEntry is the stored outcome of a payment or adjustment request.
type IdempotencyCacheEntry struct {
	Status          IdempotencyStatus `json:"status"`
	RequestBodyHash string            `json:"request_body_hash"`
	StatusCode      int               `json:"status_code,omitempty"`
	Response        json.RawMessage   `json:"response,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Replayable reports whether the entry holds a finished response that can be
// returned verbatim.
func (e IdempotencyCacheEntry) Replayable() bool {
	return e.Status == IdempotencyCompleted && len(e.Response) > 0
}
