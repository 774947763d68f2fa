package http

import (
	"net/http"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/activity"
	"github.com/clockday-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type ActivityHandler interface {
	GetRange(w http.ResponseWriter, r *http.Request)
}

type ActivityHandlerImpl struct {
	activityService activity.Service
}

func NewActivityHandler(activityService activity.Service) ActivityHandler {
	return &ActivityHandlerImpl{activityService: activityService}
}

// GetRange implements ActivityHandler.
func (h *ActivityHandlerImpl) GetRange(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	from, ok := validator.IsValidDate(r.URL.Query().Get("start_date"))
	if !ok {
		response.BadRequest(w, "start_date query parameter must be YYYY-MM-DD", nil)
		return
	}
	to, ok := validator.IsValidDate(r.URL.Query().Get("end_date"))
	if !ok {
		response.BadRequest(w, "end_date query parameter must be YYYY-MM-DD", nil)
		return
	}

	days, err := h.activityService.GetRange(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}
