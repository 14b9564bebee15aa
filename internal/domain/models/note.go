// internal/domain/models/note.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is a personal note on a user's profile page. Notes are private:
// only their owner can read or modify them.
type Note struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"-"`

	// Body is stored sanitized (see htmlsanitize); it may contain basic markup.
	Body string `bson:"body" json:"body"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
