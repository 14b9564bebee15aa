// Package leaderboard serves the ranked scoreboard and the admin reset.
// Ranking is derived on every read by rankpolicy; nothing here is persisted.
package leaderboard

import (
	"context"
	"net/http"

	"github.com/salesboard/salesboard/internal/app/policy/rankpolicy"
	userstore "github.com/salesboard/salesboard/internal/app/store/users"
	"github.com/salesboard/salesboard/internal/app/system/httpjson"
	"github.com/salesboard/salesboard/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

func NewHandler(users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Log: logger}
}

// ServeLeaderboard returns all public profiles in rank order.
// GET /api/leaderboard
func (h *Handler) ServeLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Write(w, http.StatusOK, rankpolicy.Rank(users))
}

// HandleReset zeroes every user's counters, daily tracking, and streaks.
// POST /api/leaderboard/reset (admin)
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	n, err := h.Users.ResetAll(ctx)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("leaderboard reset", zap.Int64("users", n))
	httpjson.Write(w, http.StatusOK, map[string]any{"reset": n})
}
