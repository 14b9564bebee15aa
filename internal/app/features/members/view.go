package members

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/salesboard/salesboard/internal/app/policy/rankpolicy"
	"github.com/salesboard/salesboard/internal/app/system/httpjson"
	"github.com/salesboard/salesboard/internal/app/system/timeouts"
)

// ServeUser returns one public profile with its current leaderboard rank.
// GET /api/users/{id}
func (h *Handler) ServeUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	// Rank requires the whole field; it is derived, never stored.
	all, err := h.Users.List(ctx)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Write(w, http.StatusOK, u.Public(rankpolicy.RankOf(all, u.ID)))
}
