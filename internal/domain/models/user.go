// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents one sales rep on the leaderboard.
//
// NOTE:
//   - PasswordHash is bcrypt output and is never serialized to JSON.
//   - Rank is never stored; it is derived per read by the ranking policy.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	NameCI       string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`

	// Cumulative counters. FTDs drive the leaderboard order.
	FTDs     int `bson:"ftds" json:"ftds"`
	PlusOnes int `bson:"plus_ones" json:"plusOnes"`

	// Daily-target tracking. LastResetDate is a "YYYY-MM-DD" watermark in the
	// configured reset time zone; it never lags behind "today" after a save.
	DailyTarget         int    `bson:"daily_target" json:"dailyTarget"`
	TodayFTDs           int    `bson:"today_ftds" json:"todayFTDs"`
	LastResetDate       string `bson:"last_reset_date" json:"-"`
	DailyTargetAchieved bool   `bson:"daily_target_achieved" json:"dailyTargetAchieved"`

	// Streaks, adjusted once per elapsed day when the watermark advances.
	CurrentStreak     int `bson:"current_streak" json:"currentStreak"`
	LongestStreak     int `bson:"longest_streak" json:"longestStreak"`
	TotalDaysAchieved int `bson:"total_days_achieved" json:"totalDaysAchieved"`

	IsAdmin        bool   `bson:"is_admin" json:"isAdmin"`
	ProfilePicture string `bson:"profile_picture,omitempty" json:"profilePicture,omitempty"`

	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	LastUpdated time.Time `bson:"last_updated" json:"lastUpdated"`
}

// PublicUser is the profile shape returned by the API. Rank is populated only
// when the caller computed it in-context (leaderboard and profile reads).
type PublicUser struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	ProfilePicture      string    `json:"profilePicture,omitempty"`
	FTDs                int       `json:"ftds"`
	PlusOnes            int       `json:"plusOnes"`
	DailyTarget         int       `json:"dailyTarget"`
	TodayFTDs           int       `json:"todayFTDs"`
	DailyTargetAchieved bool      `json:"dailyTargetAchieved"`
	CurrentStreak       int       `json:"currentStreak"`
	LongestStreak       int       `json:"longestStreak"`
	TotalDaysAchieved   int       `json:"totalDaysAchieved"`
	IsAdmin             bool      `json:"isAdmin"`
	CreatedAt           time.Time `json:"createdAt"`
	LastUpdated         time.Time `json:"lastUpdated"`
	Rank                int       `json:"rank,omitempty"`
}

// Public converts a User to its API shape. rank <= 0 leaves Rank unset.
func (u *User) Public(rank int) PublicUser {
	p := PublicUser{
		ID:                  u.ID.Hex(),
		Name:                u.Name,
		Email:               u.Email,
		ProfilePicture:      u.ProfilePicture,
		FTDs:                u.FTDs,
		PlusOnes:            u.PlusOnes,
		DailyTarget:         u.DailyTarget,
		TodayFTDs:           u.TodayFTDs,
		DailyTargetAchieved: u.DailyTargetAchieved,
		CurrentStreak:       u.CurrentStreak,
		LongestStreak:       u.LongestStreak,
		TotalDaysAchieved:   u.TotalDaysAchieved,
		IsAdmin:             u.IsAdmin,
		CreatedAt:           u.CreatedAt,
		LastUpdated:         u.LastUpdated,
	}
	if rank > 0 {
		p.Rank = rank
	}
	return p
}
