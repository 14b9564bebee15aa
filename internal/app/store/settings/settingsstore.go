// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/salesboard/salesboard/internal/app/system/apperr"
	"github.com/salesboard/salesboard/internal/app/system/clock"
	"github.com/salesboard/salesboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the settings singleton. Exactly one document
// exists system-wide, guarded by the unique index on the constant "key"
// field (see indexes.EnsureAll).
type Store struct {
	c     *mongo.Collection
	clock *clock.Provider
}

// New creates a new settings store.
func New(db *mongo.Database, clocks *clock.Provider) *Store {
	return &Store{c: db.Collection("settings"), clock: clocks}
}

// Get returns the settings singleton, creating it lazily with defaults on
// first access. Two racing first-time calls both converge on one document:
// the loser's insert fails on the unique key and falls back to re-reading
// the winner's. A stale month rolls the target forward to the current month.
func (s *Store) Get(ctx context.Context) (models.Settings, error) {
	month := s.clock.Month()

	var settings models.Settings
	err := s.c.FindOne(ctx, bson.M{"key": models.SettingsKey}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		settings = models.Settings{
			ID:            primitive.NewObjectID(),
			Key:           models.SettingsKey,
			MonthlyTarget: 0,
			CurrentMonth:  month,
			UpdatedAt:     s.clock.Now(),
		}
		if _, insErr := s.c.InsertOne(ctx, settings); insErr != nil {
			if !wafflemongo.IsDup(insErr) {
				return models.Settings{}, apperr.Store(insErr)
			}
			// Lost the create race; the singleton exists now.
			if rereadErr := s.c.FindOne(ctx, bson.M{"key": models.SettingsKey}).Decode(&settings); rereadErr != nil {
				return models.Settings{}, apperr.Store(rereadErr)
			}
		}
		return s.rollMonth(ctx, settings, month)
	}
	if err != nil {
		return models.Settings{}, apperr.Store(err)
	}
	return s.rollMonth(ctx, settings, month)
}

// rollMonth advances a stale settings document into the current month,
// zeroing the target. Like the daily reset, this is lazy: it happens on the
// first read of a new month, not on a timer.
func (s *Store) rollMonth(ctx context.Context, settings models.Settings, month string) (models.Settings, error) {
	if settings.CurrentMonth == month {
		return settings, nil
	}

	settings.CurrentMonth = month
	settings.MonthlyTarget = 0
	settings.UpdatedAt = s.clock.Now()

	_, err := s.c.UpdateOne(ctx,
		bson.M{"key": models.SettingsKey},
		bson.M{"$set": bson.M{
			"current_month":  settings.CurrentMonth,
			"monthly_target": settings.MonthlyTarget,
			"updated_at":     settings.UpdatedAt,
		}})
	if err != nil {
		return models.Settings{}, apperr.Store(err)
	}
	return settings, nil
}

// SetMonthlyTarget upserts the singleton with a new team-wide target for the
// current month.
func (s *Store) SetMonthlyTarget(ctx context.Context, value int) (models.Settings, error) {
	if value < 0 {
		return models.Settings{}, apperr.Validation("monthly target cannot be negative")
	}

	settings := models.Settings{
		Key:           models.SettingsKey,
		MonthlyTarget: value,
		CurrentMonth:  s.clock.Month(),
		UpdatedAt:     s.clock.Now(),
	}

	update := bson.M{
		"$set": bson.M{
			"monthly_target": settings.MonthlyTarget,
			"current_month":  settings.CurrentMonth,
			"updated_at":     settings.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
			"key": models.SettingsKey,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := s.c.UpdateOne(ctx, bson.M{"key": models.SettingsKey}, update, opts); err != nil {
		return models.Settings{}, apperr.Store(err)
	}
	return settings, nil
}
