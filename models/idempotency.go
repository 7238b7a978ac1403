package models

import "time"

// Idempotency record states. A record is reserved before its operation runs and
// completed once the serialized outcome is stored.
const (
	IdempotencyStatusPending   = "PENDING"
	IdempotencyStatusCompleted = "COMPLETED"
)

// IdempotencyRecord pins a (user, method, path, key) tuple to a single executed
// operation. Hash is unique in storage; Response holds the original outcome so
// replays can return it unchanged. Records expire 24 hours after creation.
type IdempotencyRecord struct {
	Hash      string    `bson:"hash" json:"hash"`
	UserID    string    `bson:"user_id" json:"userId"`
	Method    string    `bson:"method" json:"method"`
	Path      string    `bson:"path" json:"path"`
	Key       string    `bson:"key" json:"key"`
	Status    string    `bson:"status" json:"status"`
	Response  []byte    `bson:"response,omitempty" json:"response,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	ExpiresAt time.Time `bson:"expires_at" json:"expiresAt"`
}

// Live reports whether the record is still within its validity window. An
// expired record that has not been purged yet must never satisfy a lookup.
func (r *IdempotencyRecord) Live(now time.Time) bool {
	return r.ExpiresAt.After(now)
}
