package userRepo

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

// UserRepository defines data access for user profiles and saved travelers.
type UserRepository interface {
	// Ensure returns the user with the given id, creating a placeholder
	// profile when none exists yet.
	Ensure(id string) (*models.User, error)

	// GetByID fetches a user, or (nil, nil) when absent.
	GetByID(id string) (*models.User, error)

	// UpdateFields applies a $set document to a user and returns the
	// updated profile.
	UpdateFields(id string, fields bson.M) (*models.User, error)

	// CreateTraveler saves a traveler profile for a user.
	CreateTraveler(traveler *models.Traveler) error
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	users     *mongo.Collection
	travelers *mongo.Collection
}

// NewMongoUserRepo creates a UserRepository backed by MongoDB.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &MongoUserRepo{
		users:     db.Collection("users"),
		travelers: db.Collection("travelers"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	if _, err := r.travelers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create traveler indexes: %w", err)
	}
	return nil
}

// Ensure upserts a placeholder profile so callers can rely on the user row
// existing. The placeholder email mirrors the dev-login identity scheme.
func (r *MongoUserRepo) Ensure(id string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{"id": id}
	update := bson.M{
		"$setOnInsert": bson.M{
			"id":         id,
			"email":      id + "@example.dev",
			"created_at": now,
			"updated_at": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	if err := r.users.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to ensure user %s: %w", id, err)
	}
	return &user, nil
}

func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	err := r.users.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return &user, nil
}

func (r *MongoUserRepo) UpdateFields(id string, fields bson.M) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updated_at"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.users.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return &user, nil
}

func (r *MongoUserRepo) CreateTraveler(traveler *models.Traveler) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	traveler.CreatedAt = time.Now().UTC()
	if _, err := r.travelers.InsertOne(ctx, traveler); err != nil {
		return fmt.Errorf("failed to create traveler: %w", err)
	}
	return nil
}
