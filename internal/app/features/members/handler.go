// Package members implements the admin console backend: user creation and
// deletion, counter mutations, and per-user daily targets, plus the public
// profile read used by the leaderboard UI.
package members

import (
	userstore "github.com/salesboard/salesboard/internal/app/store/users"
	"github.com/salesboard/salesboard/internal/app/system/apperr"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler owns all member management handlers.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

func NewHandler(users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Log: logger}
}

// parseID converts a chi URL parameter into an ObjectID.
func parseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("invalid user id")
	}
	return id, nil
}
