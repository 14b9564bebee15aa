package profile

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/salesboard/salesboard/internal/app/system/apperr"
	"github.com/salesboard/salesboard/internal/app/system/httpjson"
	"github.com/salesboard/salesboard/internal/app/system/timeouts"
	"github.com/salesboard/salesboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type noteRequest struct {
	Body string `json:"body"`
}

func noteID(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "noteID"))
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("invalid note id")
	}
	return id, nil
}

// ServeNotes lists the caller's notes, newest first.
// GET /api/profile/notes
func (h *Handler) ServeNotes(w http.ResponseWriter, r *http.Request) {
	uid, err := callerID(r)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	notes, err := h.Notes.ListByUser(ctx, uid)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}
	httpjson.Write(w, http.StatusOK, notes)
}

// HandleCreateNote adds a note to the caller's profile.
// POST /api/profile/notes
func (h *Handler) HandleCreateNote(w http.ResponseWriter, r *http.Request) {
	uid, err := callerID(r)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	var req noteRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := h.Notes.Create(ctx, uid, req.Body)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Write(w, http.StatusCreated, n)
}

// HandleUpdateNote rewrites one of the caller's notes.
// PUT /api/profile/notes/{noteID}
func (h *Handler) HandleUpdateNote(w http.ResponseWriter, r *http.Request) {
	uid, err := callerID(r)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	nid, err := noteID(r)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	var req noteRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := h.Notes.Update(ctx, uid, nid, req.Body)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Write(w, http.StatusOK, n)
}

// HandleDeleteNote removes one of the caller's notes.
// DELETE /api/profile/notes/{noteID}
func (h *Handler) HandleDeleteNote(w http.ResponseWriter, r *http.Request) {
	uid, err := callerID(r)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	nid, err := noteID(r)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Notes.Delete(ctx, uid, nid); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"status": "deleted"})
}
