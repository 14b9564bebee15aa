package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/salesboard/salesboard/internal/app/system/clock"
	"github.com/salesboard/salesboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// FixedClock returns a deterministic clock provider pinned to the given
// instant in UTC, plus the underlying Fixed clock for simulating rollovers.
func FixedClock(t *testing.T, at time.Time) (*clock.Provider, *clock.Fixed) {
	t.Helper()
	fixed := clock.NewFixed(at)
	provider, err := clock.NewProvider(fixed, "UTC")
	if err != nil {
		t.Fatalf("clock provider: %v", err)
	}
	return provider, fixed
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a test user with the given counters, watermarked today.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string, ftds int) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:            primitive.NewObjectID(),
		Name:          name,
		NameCI:        text.Fold(name),
		Email:         email,
		PasswordHash:  "$2a$10$fixturefixturefixturefixturefixturefixturefixturefix",
		FTDs:          ftds,
		LastResetDate: now.Format(clock.DateLayout),
		CreatedAt:     now,
		LastUpdated:   now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateAdmin inserts a test user with the admin flag set.
func (f *Fixtures) CreateAdmin(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	u := f.CreateUser(ctx, name, email, 0)
	if _, err := f.db.Collection("users").UpdateOne(ctx,
		map[string]any{"_id": u.ID},
		map[string]any{"$set": map[string]any{"is_admin": true}}); err != nil {
		f.t.Fatalf("failed to promote test admin: %v", err)
	}
	u.IsAdmin = true
	return u
}
