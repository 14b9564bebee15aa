package notestore

import (
	"context"
	"time"

	"github.com/salesboard/salesboard/internal/app/system/apperr"
	"github.com/salesboard/salesboard/internal/app/system/htmlsanitize"
	"github.com/salesboard/salesboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxNoteBytes bounds a single note body.
const maxNoteBytes = 16 << 10 // 16 KiB

// Store provides access to the notes collection. Notes are private to their
// owner; every query is scoped by user_id.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("notes")}
}

// ListByUser returns a user's notes, newest first.
func (s *Store) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, apperr.Store(err)
	}
	defer cur.Close(ctx)

	var notes []models.Note
	if err := cur.All(ctx, &notes); err != nil {
		return nil, apperr.Store(err)
	}
	return notes, nil
}

// Create inserts a sanitized note for userID.
func (s *Store) Create(ctx context.Context, userID primitive.ObjectID, body string) (models.Note, error) {
	body = htmlsanitize.Sanitize(body)
	if body == "" {
		return models.Note{}, apperr.Validation("note body is required")
	}
	if len(body) > maxNoteBytes {
		return models.Note{}, apperr.Validation("note body is too long")
	}

	now := time.Now().UTC()
	n := models.Note{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.Note{}, apperr.Store(err)
	}
	return n, nil
}

// Update replaces the body of a note owned by userID.
func (s *Store) Update(ctx context.Context, userID, noteID primitive.ObjectID, body string) (models.Note, error) {
	body = htmlsanitize.Sanitize(body)
	if body == "" {
		return models.Note{}, apperr.Validation("note body is required")
	}
	if len(body) > maxNoteBytes {
		return models.Note{}, apperr.Validation("note body is too long")
	}

	now := time.Now().UTC()
	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": noteID, "user_id": userID},
		bson.M{"$set": bson.M{"body": body, "updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	var n models.Note
	if err := res.Decode(&n); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Note{}, apperr.NotFound("note not found")
		}
		return models.Note{}, apperr.Store(err)
	}
	return n, nil
}

// Delete removes a note owned by userID.
func (s *Store) Delete(ctx context.Context, userID, noteID primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": noteID, "user_id": userID})
	if err != nil {
		return apperr.Store(err)
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("note not found")
	}
	return nil
}
