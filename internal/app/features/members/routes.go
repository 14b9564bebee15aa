package members

import (
	"github.com/go-chi/chi/v5"
	"github.com/salesboard/salesboard/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.With(auth.RequireSignedIn).Get("/{id}", h.ServeUser)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Post("/", h.HandleCreate)
		r.Delete("/{id}", h.HandleDelete)

		r.Put("/{id}/ftds", h.HandleSetFTDs)
		r.Post("/{id}/ftds/increment", h.HandleIncrementFTD)
		r.Post("/{id}/ftds/decrement", h.HandleDecrementFTD)

		r.Put("/{id}/plusones", h.HandleSetPlusOnes)
		r.Post("/{id}/plusones/increment", h.HandleIncrementPlusOne)
		r.Post("/{id}/plusones/decrement", h.HandleDecrementPlusOne)

		r.Put("/{id}/daily-target", h.HandleSetDailyTarget)
	})

	return r
}
