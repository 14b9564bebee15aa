package members

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	userstore "github.com/salesboard/salesboard/internal/app/store/users"
	"github.com/salesboard/salesboard/internal/app/system/apperr"
	"github.com/salesboard/salesboard/internal/app/system/auth"
	"github.com/salesboard/salesboard/internal/app/system/httpjson"
	"github.com/salesboard/salesboard/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type createUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	IsAdmin     bool   `json:"isAdmin"`
	DailyTarget int    `json:"dailyTarget"`
}

// HandleCreate creates a user from the admin console.
// POST /api/users (admin)
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.Create(ctx, userstore.NewUser{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		IsAdmin:     req.IsAdmin,
		DailyTarget: req.DailyTarget,
	})
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("user created by admin", zap.String("user_id", u.ID.Hex()))
	httpjson.Write(w, http.StatusCreated, u.Public(0))
}

// HandleDelete removes a user. Admins cannot delete themselves.
// DELETE /api/users/{id} (admin)
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	if caller, ok := auth.CurrentUser(r); ok && caller.ID == id.Hex() {
		httpjson.Error(w, h.Log, apperr.Precondition("admins cannot delete their own account"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("user deleted", zap.String("user_id", id.Hex()))
	httpjson.Write(w, http.StatusOK, map[string]string{"status": "deleted"})
}
