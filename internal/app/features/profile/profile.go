package profile

import (
	"context"
	"net/http"

	"github.com/salesboard/salesboard/internal/app/system/httpjson"
	"github.com/salesboard/salesboard/internal/app/system/timeouts"
)

type updateProfileRequest struct {
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture"`
}

// ServeProfile returns the caller's own profile.
// GET /api/profile
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	id, err := callerID(r)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Write(w, http.StatusOK, u.Public(0))
}

// HandleUpdateProfile updates the caller's own name and avatar.
// PUT /api/profile
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := callerID(r)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	var req updateProfileRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.UpdateProfile(ctx, id, req.Name, req.ProfilePicture)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Write(w, http.StatusOK, u.Public(0))
}
