package userstore

import (
	"context"

	"github.com/dalemusser/waffle/pantry/text"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/salesboard/salesboard/internal/app/policy/streakpolicy"
	"github.com/salesboard/salesboard/internal/app/system/apperr"
	"github.com/salesboard/salesboard/internal/app/system/authutil"
	"github.com/salesboard/salesboard/internal/app/system/clock"
	"github.com/salesboard/salesboard/internal/app/system/normalize"
	"github.com/salesboard/salesboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxProfilePictureBytes caps stored avatars (URL or data-URI form).
const maxProfilePictureBytes = 1 << 20 // 1 MiB

// ErrDuplicateEmail is returned when attempting to create a user with an
// email that already exists.
var ErrDuplicateEmail = apperr.Validation("a user with this email already exists")

// Store provides access to the users collection. Every path that loads a
// record for mutation runs the daily rollover first, so the reset watermark
// never lags behind the current day in the configured zone.
type Store struct {
	c     *mongo.Collection
	clock *clock.Provider
}

func New(db *mongo.Database, clocks *clock.Provider) *Store {
	return &Store{c: db.Collection("users"), clock: clocks}
}

/* ───────────────────────────── creation ───────────────────────────── */

// NewUser holds the fields accepted when creating an account.
type NewUser struct {
	Name        string
	Email       string
	Password    string
	IsAdmin     bool
	DailyTarget int
}

// Create inserts a new user after normalizing & validating fields. The reset
// watermark is initialized to the creation day, so the first elapsed-day
// transition always compares against real prior-day data.
func (s *Store) Create(ctx context.Context, nu NewUser) (models.User, error) {
	name := normalize.Name(nu.Name)
	email := normalize.Email(nu.Email)
	if name == "" {
		return models.User{}, apperr.Validation("name is required")
	}
	if email == "" {
		return models.User{}, apperr.Validation("email is required")
	}
	if len(nu.Password) < authutil.MinPasswordLength {
		return models.User{}, apperr.Validation("password must be at least %d characters", authutil.MinPasswordLength)
	}
	if nu.DailyTarget < 0 {
		return models.User{}, apperr.Validation("daily target cannot be negative")
	}

	hash, err := authutil.HashPassword(nu.Password)
	if err != nil {
		return models.User{}, apperr.Store(err)
	}

	now := s.clock.Now()
	u := models.User{
		ID:            primitive.NewObjectID(),
		Name:          name,
		NameCI:        text.Fold(name),
		Email:         email,
		PasswordHash:  hash,
		DailyTarget:   nu.DailyTarget,
		LastResetDate: s.clock.Today(),
		IsAdmin:       nu.IsAdmin,
		CreatedAt:     now,
		LastUpdated:   now,
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, apperr.Store(err)
	}
	return u, nil
}

/* ───────────────────────────── reads ───────────────────────────── */

// GetByID loads a user by ObjectID. The daily rollover is applied to the
// returned copy so callers always see today's state; it is persisted on the
// next mutation rather than on read.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Store(err)
	}
	streakpolicy.Apply(&u, s.clock.Today())
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Store(err)
	}
	streakpolicy.Apply(&u, s.clock.Today())
	return &u, nil
}

// List returns all users in creation order, with the daily rollover applied
// to each returned copy.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.Store(err)
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, apperr.Store(err)
	}
	today := s.clock.Today()
	for i := range users {
		streakpolicy.Apply(&users[i], today)
	}
	return users, nil
}

/* ───────────────────────────── mutations ───────────────────────────── */

// mutate is the single load-modify-save path for counter and profile
// mutations. It loads the document, runs the daily rollover, applies fn, and
// replaces the document. Per-document atomicity is all this model needs:
// every mutation touches exactly one record.
func (s *Store) mutate(ctx context.Context, id primitive.ObjectID, fn func(*models.User) error) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Store(err)
	}

	streakpolicy.Apply(&u, s.clock.Today())

	if err := fn(&u); err != nil {
		return nil, err
	}

	u.LastUpdated = s.clock.Now()
	if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, u); err != nil {
		return nil, apperr.Store(err)
	}
	return &u, nil
}

// SetFTDs absolute-sets the cumulative FTD counter. An absolute set is a
// correction, not a deposit event, so today's count is left alone.
func (s *Store) SetFTDs(ctx context.Context, id primitive.ObjectID, value int) (*models.User, error) {
	if value < 0 {
		return nil, apperr.Validation("ftds cannot be negative")
	}
	return s.mutate(ctx, id, func(u *models.User) error {
		u.FTDs = value
		return nil
	})
}

// IncrementFTD records a new deposit: it counts toward today and can satisfy
// the daily target.
func (s *Store) IncrementFTD(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.mutate(ctx, id, func(u *models.User) error {
		u.FTDs++
		u.TodayFTDs++
		if u.DailyTarget > 0 && u.TodayFTDs >= u.DailyTarget {
			u.DailyTargetAchieved = true
		}
		return nil
	})
}

// DecrementFTD backs out a deposit. Today's count floors at zero; the
// cumulative counter refuses to go below it.
func (s *Store) DecrementFTD(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.mutate(ctx, id, func(u *models.User) error {
		if u.FTDs <= 0 {
			return apperr.Precondition("ftds is already zero")
		}
		u.FTDs--
		if u.TodayFTDs > 0 {
			u.TodayFTDs--
		}
		return nil
	})
}

// SetPlusOnes absolute-sets the bonus counter. Plus ones are not part of the
// daily-target model.
func (s *Store) SetPlusOnes(ctx context.Context, id primitive.ObjectID, value int) (*models.User, error) {
	if value < 0 {
		return nil, apperr.Validation("plusOnes cannot be negative")
	}
	return s.mutate(ctx, id, func(u *models.User) error {
		u.PlusOnes = value
		return nil
	})
}

func (s *Store) IncrementPlusOne(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.mutate(ctx, id, func(u *models.User) error {
		u.PlusOnes++
		return nil
	})
}

func (s *Store) DecrementPlusOne(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.mutate(ctx, id, func(u *models.User) error {
		if u.PlusOnes <= 0 {
			return apperr.Precondition("plusOnes is already zero")
		}
		u.PlusOnes--
		return nil
	})
}

// SetDailyTarget sets the per-user goal for the current day. Zero disables
// daily tracking. Lowering the target below today's count marks it achieved.
func (s *Store) SetDailyTarget(ctx context.Context, id primitive.ObjectID, value int) (*models.User, error) {
	if value < 0 {
		return nil, apperr.Validation("daily target cannot be negative")
	}
	return s.mutate(ctx, id, func(u *models.User) error {
		u.DailyTarget = value
		u.DailyTargetAchieved = value > 0 && u.TodayFTDs >= value
		return nil
	})
}

// UpdateProfile updates a user's own display fields. Counters are not
// reachable through this path.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, picture string) (*models.User, error) {
	name = normalize.Name(name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if len(picture) > maxProfilePictureBytes {
		return nil, apperr.Validation("profile picture is too large")
	}
	return s.mutate(ctx, id, func(u *models.User) error {
		u.Name = name
		u.NameCI = text.Fold(name)
		u.ProfilePicture = picture
		return nil
	})
}

/* ───────────────────────────── admin ops ───────────────────────────── */

// Delete removes a user by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Store(err)
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

// ResetAll zeroes every user's counters, daily tracking, and streaks. Used by
// the admin leaderboard reset. Returns the number of users touched.
func (s *Store) ResetAll(ctx context.Context) (int64, error) {
	res, err := s.c.UpdateMany(ctx, bson.M{}, bson.M{"$set": bson.M{
		"ftds":                  0,
		"plus_ones":             0,
		"today_ftds":            0,
		"daily_target_achieved": false,
		"current_streak":        0,
		"longest_streak":        0,
		"total_days_achieved":   0,
		"last_reset_date":       s.clock.Today(),
		"last_updated":          s.clock.Now(),
	}})
	if err != nil {
		return 0, apperr.Store(err)
	}
	return res.ModifiedCount, nil
}

// PromoteAdmin grants the admin flag to the user with the given email.
// Used at startup to seed the first admin from config.
func (s *Store) PromoteAdmin(ctx context.Context, email string) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": normalize.Email(email)},
		bson.M{"$set": bson.M{"is_admin": true, "last_updated": s.clock.Now()}})
	if err != nil {
		return false, apperr.Store(err)
	}
	return res.MatchedCount > 0, nil
}

// Count returns the number of user documents.
func (s *Store) Count(ctx context.Context) (int64, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, apperr.Store(err)
	}
	return n, nil
}
