package leaderboard

import (
	"github.com/go-chi/chi/v5"
	"github.com/salesboard/salesboard/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.With(auth.RequireSignedIn).Get("/", h.ServeLeaderboard)
	r.With(auth.RequireAdmin).Post("/reset", h.HandleReset)
	return r
}
