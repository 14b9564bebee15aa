// internal/app/features/profile/handler.go
package profile

import (
	notestore "github.com/salesboard/salesboard/internal/app/store/notes"
	userstore "github.com/salesboard/salesboard/internal/app/store/users"
	"github.com/salesboard/salesboard/internal/app/system/apperr"
	"github.com/salesboard/salesboard/internal/app/system/auth"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler owns the signed-in user's own profile: display fields and private
// notes. Counters are admin territory and are not reachable from here.
type Handler struct {
	Users *userstore.Store
	Notes *notestore.Store
	Log   *zap.Logger
}

func NewHandler(users *userstore.Store, notes *notestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Users: users,
		Notes: notes,
		Log:   logger,
	}
}

// callerID resolves the signed-in user's ObjectID from the session context.
func callerID(r *http.Request) (primitive.ObjectID, error) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return primitive.NilObjectID, apperr.Authorization("sign in required")
	}
	id, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return primitive.NilObjectID, apperr.Authorization("invalid session")
	}
	return id, nil
}
