package settings

import (
	"github.com/go-chi/chi/v5"
	"github.com/salesboard/salesboard/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.With(auth.RequireSignedIn).Get("/monthly-target", h.ServeMonthlyTarget)
	r.With(auth.RequireAdmin).Put("/monthly-target", h.HandleSetMonthlyTarget)
	return r
}
