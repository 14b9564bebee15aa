// Package settings exposes the team-wide monthly target singleton.
package settings

import (
	"context"
	"net/http"

	settingsstore "github.com/salesboard/salesboard/internal/app/store/settings"
	"github.com/salesboard/salesboard/internal/app/system/httpjson"
	"github.com/salesboard/salesboard/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Handler struct {
	Settings *settingsstore.Store
	Log      *zap.Logger
}

func NewHandler(store *settingsstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Settings: store, Log: logger}
}

type setTargetRequest struct {
	Value int `json:"value"`
}

// ServeMonthlyTarget returns the singleton, creating it on first access.
// GET /api/settings/monthly-target
func (h *Handler) ServeMonthlyTarget(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	s, err := h.Settings.Get(ctx)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Write(w, http.StatusOK, s)
}

// HandleSetMonthlyTarget writes the team-wide target for the current month.
// PUT /api/settings/monthly-target (admin)
func (h *Handler) HandleSetMonthlyTarget(w http.ResponseWriter, r *http.Request) {
	var req setTargetRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	s, err := h.Settings.SetMonthlyTarget(ctx, req.Value)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("monthly target updated", zap.Int("value", s.MonthlyTarget), zap.String("month", s.CurrentMonth))
	httpjson.Write(w, http.StatusOK, s)
}
