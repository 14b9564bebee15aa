// internal/app/features/profile/routes.go
package profile

import (
	"github.com/go-chi/chi/v5"
	"github.com/salesboard/salesboard/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/", h.ServeProfile)
	r.Put("/", h.HandleUpdateProfile)

	r.Get("/notes", h.ServeNotes)
	r.Post("/notes", h.HandleCreateNote)
	r.Put("/notes/{noteID}", h.HandleUpdateNote)
	r.Delete("/notes/{noteID}", h.HandleDeleteNote)

	return r
}
