package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	idempotencyRepo "skymate/database/repository/idempotency"
	"skymate/models"
)

// recordTTL is how long a key pins its operation's outcome.
const recordTTL = 24 * time.Hour

// ErrInFlight signals that a request with the same key is still executing.
// The client should treat it like a duplicate: wait and retry the same key to
// receive the original outcome.
var ErrInFlight = errors.New("request with this idempotency key is already in flight")

// Operation is the side-effecting call being guarded. Its return value is
// serialized and replayed to later requests carrying the same key.
type Operation func(ctx context.Context) (interface{}, error)

// Guard ensures a client-supplied idempotency key causes at most one execution
// of an operation per (user, method, path, key) tuple within the TTL window.
//
// Replay policy: a replayed request receives the original serialized result
// (never a duplicate-request rejection), so retried requests are
// indistinguishable from their first attempt apart from the reused flag.
//
// Concurrency: the guard reserves its record before running the operation.
// The storage-level unique constraint on the hash makes a second concurrent
// reservation fail, which is treated as "found", so two racing requests can
// never both commit.
type Guard struct {
	Repo   idempotencyRepo.IdempotencyRepository
	Logger *zap.Logger
}

// NewGuard builds a guard over the given record store.
func NewGuard(repo idempotencyRepo.IdempotencyRepository, logger *zap.Logger) *Guard {
	return &Guard{Repo: repo, Logger: logger}
}

// HashKey derives the stable lookup hash for a request tuple. Anonymous
// callers share the "anon" marker, matching key scoping for unauthenticated
// endpoints.
func HashKey(userID, method, path, key string) string {
	if userID == "" {
		userID = "anon"
	}
	sum := sha256.Sum256([]byte(userID + "|" + method + "|" + path + "|" + key))
	return hex.EncodeToString(sum[:])
}

// Do runs op at most once per (userID, method, path, key) tuple. It returns
// reused=true with the original serialized result on replay. An empty key
// disables deduplication and runs op unconditionally: without a key there is
// nothing to dedupe on, a deliberate weak-idempotency fallback.
func (g *Guard) Do(ctx context.Context, userID, method, path, key string, op Operation) (bool, json.RawMessage, error) {
	if key == "" {
		result, err := op(ctx)
		if err != nil {
			return false, nil, err
		}
		payload, err := json.Marshal(result)
		if err != nil {
			return false, nil, fmt.Errorf("failed to serialize operation result: %w", err)
		}
		return false, payload, nil
	}

	now := time.Now().UTC()
	if err := g.Repo.PurgeExpired(now); err != nil {
		// Housekeeping only; liveness is still checked per record below.
		g.Logger.Warn("failed to purge expired idempotency records", zap.Error(err))
	}

	hash := HashKey(userID, method, path, key)
	record := &models.IdempotencyRecord{
		Hash:      hash,
		UserID:    userID,
		Method:    method,
		Path:      path,
		Key:       key,
		Status:    models.IdempotencyStatusPending,
		CreatedAt: now,
		ExpiresAt: now.Add(recordTTL),
	}

	// One retry: the losing branch may find an expired leftover, delete it
	// and reserve again.
	for attempt := 0; attempt < 2; attempt++ {
		err := g.Repo.Reserve(record)
		if err == nil {
			return g.execute(ctx, hash, op)
		}
		if !errors.Is(err, idempotencyRepo.ErrDuplicateHash) {
			return false, nil, err
		}

		existing, err := g.Repo.FindByHash(hash)
		if err != nil {
			return false, nil, err
		}
		if existing == nil {
			// Reservation vanished between insert and lookup; try again.
			continue
		}
		if !existing.Live(now) {
			if err := g.Repo.Delete(hash); err != nil {
				return false, nil, err
			}
			continue
		}
		if existing.Status == models.IdempotencyStatusCompleted {
			return true, json.RawMessage(existing.Response), nil
		}
		return false, nil, ErrInFlight
	}
	return false, nil, ErrInFlight
}

func (g *Guard) execute(ctx context.Context, hash string, op Operation) (bool, json.RawMessage, error) {
	result, err := op(ctx)
	if err != nil {
		// Release the reservation so the client's retry can execute.
		if delErr := g.Repo.Delete(hash); delErr != nil {
			g.Logger.Warn("failed to release idempotency reservation", zap.String("hash", hash), zap.Error(delErr))
		}
		return false, nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		if delErr := g.Repo.Delete(hash); delErr != nil {
			g.Logger.Warn("failed to release idempotency reservation", zap.String("hash", hash), zap.Error(delErr))
		}
		return false, nil, fmt.Errorf("failed to serialize operation result: %w", err)
	}

	if err := g.Repo.Complete(hash, payload); err != nil {
		// The operation committed, so the reservation must stand to keep the
		// at-most-once guarantee; replays of this key will see in-flight
		// until it expires.
		g.Logger.Error("failed to store idempotency result",
			zap.String("hash", hash), zap.Error(err))
	}
	return false, payload, nil
}
