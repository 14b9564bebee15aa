// internal/domain/models/settings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SettingsKey is the constant discriminator for the settings singleton.
// A unique index on "key" guarantees at most one document exists; racing
// first-time creates resolve by duplicate-key + re-read.
const SettingsKey = "global"

// Settings is the single team-wide configuration document.
type Settings struct {
	ID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Key string             `bson:"key" json:"-"`

	// MonthlyTarget is the aggregate team FTD goal for CurrentMonth ("YYYY-MM").
	MonthlyTarget int    `bson:"monthly_target" json:"monthlyTarget"`
	CurrentMonth  string `bson:"current_month" json:"currentMonth"`

	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
