package idempotencyRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skymate/database"
	"skymate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateHash is returned by Reserve when another request already holds a
// record for the same hash. The unique index on the hash column is what makes
// two concurrent reservations impossible; the second insert fails here rather
// than racing.
var ErrDuplicateHash = errors.New("idempotency hash already reserved")

// IdempotencyRepository persists idempotency records keyed by their hash.
type IdempotencyRepository interface {
	// Reserve inserts a pending record. Returns ErrDuplicateHash when a
	// record with the same hash already exists.
	Reserve(record *models.IdempotencyRecord) error

	// FindByHash returns the record for a hash, or (nil, nil) when absent.
	FindByHash(hash string) (*models.IdempotencyRecord, error)

	// Complete stores the serialized operation result on a reserved record.
	Complete(hash string, response []byte) error

	// Delete removes a record, releasing its reservation.
	Delete(hash string) error

	// PurgeExpired removes records whose expiry has passed. Best-effort
	// housekeeping; an expired record is never treated as live regardless.
	PurgeExpired(now time.Time) error
}

// MongoIdempotencyRepo implements IdempotencyRepository using MongoDB.
type MongoIdempotencyRepo struct {
	coll *mongo.Collection
}

// NewMongoIdempotencyRepo creates an IdempotencyRepository backed by MongoDB.
func NewMongoIdempotencyRepo() IdempotencyRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("idempotency_keys")
	repo := &MongoIdempotencyRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create idempotency indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoIdempotencyRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "hash", Value: 1}}, Options: options.Index().SetUnique(true)},
		// MongoDB reaps expired records in the background; the guard still
		// purges lazily so correctness never depends on the reaper.
		{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoIdempotencyRepo) Reserve(record *models.IdempotencyRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateHash
		}
		return fmt.Errorf("failed to reserve idempotency record: %w", err)
	}
	return nil
}

func (r *MongoIdempotencyRepo) FindByHash(hash string) (*models.IdempotencyRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var record models.IdempotencyRecord
	err := r.coll.FindOne(ctx, bson.M{"hash": hash}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch idempotency record: %w", err)
	}
	return &record, nil
}

func (r *MongoIdempotencyRepo) Complete(hash string, response []byte) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":   models.IdempotencyStatusCompleted,
		"response": response,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"hash": hash}, update)
	if err != nil {
		return fmt.Errorf("failed to complete idempotency record: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("idempotency record %s not found", hash)
	}
	return nil
}

func (r *MongoIdempotencyRepo) Delete(hash string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"hash": hash}); err != nil {
		return fmt.Errorf("failed to delete idempotency record: %w", err)
	}
	return nil
}

func (r *MongoIdempotencyRepo) PurgeExpired(now time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": now}}); err != nil {
		return fmt.Errorf("failed to purge expired idempotency records: %w", err)
	}
	return nil
}
