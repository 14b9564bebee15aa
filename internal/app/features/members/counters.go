package members

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/salesboard/salesboard/internal/app/system/httpjson"
	"github.com/salesboard/salesboard/internal/app/system/timeouts"
	"github.com/salesboard/salesboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type setValueRequest struct {
	Value int `json:"value"`
}

// counterOp runs one store mutation against the {id} URL parameter and
// returns the updated public profile.
func (h *Handler) counterOp(w http.ResponseWriter, r *http.Request,
	op func(context.Context, primitive.ObjectID) (*models.User, error)) {

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := op(ctx, id)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Write(w, http.StatusOK, u.Public(0))
}

// setOp is counterOp for absolute-set endpoints carrying {"value": n}.
func (h *Handler) setOp(w http.ResponseWriter, r *http.Request,
	op func(context.Context, primitive.ObjectID, int) (*models.User, error)) {

	var req setValueRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	h.counterOp(w, r, func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
		return op(ctx, id, req.Value)
	})
}

// HandleSetFTDs absolute-sets the cumulative FTD counter.
// PUT /api/users/{id}/ftds (admin)
func (h *Handler) HandleSetFTDs(w http.ResponseWriter, r *http.Request) {
	h.setOp(w, r, h.Users.SetFTDs)
}

// HandleIncrementFTD records one new deposit for today.
// POST /api/users/{id}/ftds/increment (admin)
func (h *Handler) HandleIncrementFTD(w http.ResponseWriter, r *http.Request) {
	h.counterOp(w, r, h.Users.IncrementFTD)
}

// HandleDecrementFTD backs out one deposit.
// POST /api/users/{id}/ftds/decrement (admin)
func (h *Handler) HandleDecrementFTD(w http.ResponseWriter, r *http.Request) {
	h.counterOp(w, r, h.Users.DecrementFTD)
}

// HandleSetPlusOnes absolute-sets the bonus counter.
// PUT /api/users/{id}/plusones (admin)
func (h *Handler) HandleSetPlusOnes(w http.ResponseWriter, r *http.Request) {
	h.setOp(w, r, h.Users.SetPlusOnes)
}

// HandleIncrementPlusOne adds one bonus point.
// POST /api/users/{id}/plusones/increment (admin)
func (h *Handler) HandleIncrementPlusOne(w http.ResponseWriter, r *http.Request) {
	h.counterOp(w, r, h.Users.IncrementPlusOne)
}

// HandleDecrementPlusOne removes one bonus point.
// POST /api/users/{id}/plusones/decrement (admin)
func (h *Handler) HandleDecrementPlusOne(w http.ResponseWriter, r *http.Request) {
	h.counterOp(w, r, h.Users.DecrementPlusOne)
}

// HandleSetDailyTarget sets the per-user goal for the current day.
// PUT /api/users/{id}/daily-target (admin)
func (h *Handler) HandleSetDailyTarget(w http.ResponseWriter, r *http.Request) {
	h.setOp(w, r, h.Users.SetDailyTarget)
}
