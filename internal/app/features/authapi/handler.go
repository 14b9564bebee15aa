// Package authapi implements account registration and session login/logout.
// Credential hashing is bcrypt (authutil); the session itself is a signed
// cookie managed by auth.SessionManager.
package authapi

import (
	"context"
	"net/http"

	userstore "github.com/salesboard/salesboard/internal/app/store/users"
	"github.com/salesboard/salesboard/internal/app/system/auth"
	"github.com/salesboard/salesboard/internal/app/system/authutil"
	"github.com/salesboard/salesboard/internal/app/system/httpjson"
	"github.com/salesboard/salesboard/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Handler struct {
	Users      *userstore.Store
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(users *userstore.Store, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Users:      users,
		SessionMgr: sessionMgr,
		Log:        logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates an account and signs the new user in.
// POST /api/auth/register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.Create(ctx, userstore.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, &u); err != nil {
		h.Log.Error("session sign-in after register failed", zap.Error(err))
	}

	h.Log.Info("user registered", zap.String("user_id", u.ID.Hex()))
	httpjson.Write(w, http.StatusCreated, u.Public(0))
}

// HandleLogin verifies credentials and establishes a session.
// POST /api/auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	// Same response for unknown email and wrong password.
	if err != nil || !authutil.CheckPassword(u.PasswordHash, req.Password) {
		httpjson.Write(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		return
	}

	if err := h.SessionMgr.SignIn(w, r, u); err != nil {
		h.Log.Error("session sign-in failed", zap.Error(err))
		httpjson.Write(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.Log.Info("user logged in", zap.String("user_id", u.ID.Hex()))
	httpjson.Write(w, http.StatusOK, u.Public(0))
}

// HandleLogout tears down the session.
// POST /api/auth/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Error("session sign-out failed", zap.Error(err))
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"status": "signed out"})
}
