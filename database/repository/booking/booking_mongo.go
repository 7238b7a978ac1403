package bookingRepo

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

// ErrCursorNotFound is returned when a pagination cursor does not resolve to a
// booking owned by the requesting user.
var ErrCursorNotFound = errors.New("pagination cursor not found")

// MongoBookingRepo implements BookingRepository using MongoDB. Segments are
// embedded in the booking document, so booking-plus-segment creation is a
// single-document insert and therefore atomic.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetForUser(id, userID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id, "user_id": userID}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) UpdateFieldsForUser(id, userID string, fields bson.M) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updated_at"] = time.Now().UTC()
	filter := bson.M{"id": id, "user_id": userID}
	update := bson.M{"$set": fields}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return &updated, nil
}

// ListForUser pages through a user's bookings ordered by (created_at desc,
// id desc). The cursor id names the first booking of the requested page; its
// (created_at, id) pair anchors the range filter so the ordering stays total
// even when two bookings share a timestamp.
func (r *MongoBookingRepo) ListForUser(userID, status, cursorID string, limit int) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	if status != "" {
		filter["status"] = status
	}

	if cursorID != "" {
		cursor, err := r.GetForUser(cursorID, userID)
		if err != nil {
			return nil, err
		}
		if cursor == nil {
			return nil, ErrCursorNotFound
		}
		filter["$or"] = bson.A{
			bson.M{"created_at": bson.M{"$lt": cursor.CreatedAt}},
			bson.M{"created_at": cursor.CreatedAt, "id": bson.M{"$lte": cursor.ID}},
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "id", Value: -1}}).
		SetLimit(int64(limit + 1))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}
