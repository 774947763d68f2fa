package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clockday-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/validator"
	"github.com/clockday-hr/attendance-backend-go/internal/service/reconcile"
)

type ReconcileHandler interface {
	TriggerRun(w http.ResponseWriter, r *http.Request)
}

type ReconcileHandlerImpl struct {
	engine *reconcile.Service
}

func NewReconcileHandler(engine *reconcile.Service) ReconcileHandler {
	return &ReconcileHandlerImpl{engine: engine}
}

type triggerRunRequest struct {
	Date string `json:"date"`
}

// TriggerRun implements ReconcileHandler. The nightly cron covers normal
// operation; this endpoint exists for backfills and recomputation after
// late approvals.
func (h *ReconcileHandlerImpl) TriggerRun(w http.ResponseWriter, r *http.Request) {
	var req triggerRunRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("TriggerRun decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	summary, err := h.engine.Run(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reconciliation run completed", summary)
}
