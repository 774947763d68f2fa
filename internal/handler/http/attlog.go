package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/attlog"
	"github.com/clockday-hr/attendance-backend-go/internal/handler/http/response"
)

type LogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
}

type LogHandlerImpl struct {
	logService attlog.Service
}

func NewLogHandler(logService attlog.Service) LogHandler {
	return &LogHandlerImpl{logService: logService}
}

// Create implements LogHandler.
func (h *LogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attlog.CreateLogRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.logService.Ingest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Log recorded", created)
}
