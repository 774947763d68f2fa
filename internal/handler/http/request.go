package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/request"
	"github.com/clockday-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RequestHandler interface {
	CreateLeave(w http.ResponseWriter, r *http.Request)
	CreateMission(w http.ResponseWriter, r *http.Request)
	CreateOvertime(w http.ResponseWriter, r *http.Request)
	CreateManualLog(w http.ResponseWriter, r *http.Request)

	ListPendingLeave(w http.ResponseWriter, r *http.Request)
	ListPendingMissions(w http.ResponseWriter, r *http.Request)
	ListPendingOvertime(w http.ResponseWriter, r *http.Request)
	ListPendingManualLogs(w http.ResponseWriter, r *http.Request)

	ReviewLeave(w http.ResponseWriter, r *http.Request)
	ReviewMission(w http.ResponseWriter, r *http.Request)
	ReviewOvertime(w http.ResponseWriter, r *http.Request)
	ReviewManualLog(w http.ResponseWriter, r *http.Request)
}

type RequestHandlerImpl struct {
	requestService request.Service
}

func NewRequestHandler(requestService request.Service) RequestHandler {
	return &RequestHandlerImpl{requestService: requestService}
}

// CreateLeave implements RequestHandler.
func (h *RequestHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requestService.SubmitLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// CreateMission implements RequestHandler.
func (h *RequestHandlerImpl) CreateMission(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitMissionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateMission decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requestService.SubmitMission(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Mission request submitted", created)
}

// CreateOvertime implements RequestHandler.
func (h *RequestHandlerImpl) CreateOvertime(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitOvertimeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requestService.SubmitOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted", created)
}

// CreateManualLog implements RequestHandler.
func (h *RequestHandlerImpl) CreateManualLog(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitManualLogRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateManualLog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requestService.SubmitManualLog(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Manual log request submitted", created)
}

// ListPendingLeave implements RequestHandler.
func (h *RequestHandlerImpl) ListPendingLeave(w http.ResponseWriter, r *http.Request) {
	items, err := h.requestService.ListPendingLeave(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, items)
}

// ListPendingMissions implements RequestHandler.
func (h *RequestHandlerImpl) ListPendingMissions(w http.ResponseWriter, r *http.Request) {
	items, err := h.requestService.ListPendingMissions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, items)
}

// ListPendingOvertime implements RequestHandler.
func (h *RequestHandlerImpl) ListPendingOvertime(w http.ResponseWriter, r *http.Request) {
	items, err := h.requestService.ListPendingOvertime(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, items)
}

// ListPendingManualLogs implements RequestHandler.
func (h *RequestHandlerImpl) ListPendingManualLogs(w http.ResponseWriter, r *http.Request) {
	items, err := h.requestService.ListPendingManualLogs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, items)
}

// ReviewLeave implements RequestHandler.
func (h *RequestHandlerImpl) ReviewLeave(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeReview(w, r)
	if !ok {
		return
	}

	reviewed, err := h.requestService.ReviewLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request reviewed", reviewed)
}

// ReviewMission implements RequestHandler.
func (h *RequestHandlerImpl) ReviewMission(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeReview(w, r)
	if !ok {
		return
	}

	reviewed, err := h.requestService.ReviewMission(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Mission request reviewed", reviewed)
}

// ReviewOvertime implements RequestHandler.
func (h *RequestHandlerImpl) ReviewOvertime(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeReview(w, r)
	if !ok {
		return
	}

	reviewed, err := h.requestService.ReviewOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Overtime request reviewed", reviewed)
}

// ReviewManualLog implements RequestHandler.
func (h *RequestHandlerImpl) ReviewManualLog(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeReview(w, r)
	if !ok {
		return
	}

	reviewed, err := h.requestService.ReviewManualLog(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Manual log request reviewed", reviewed)
}

func decodeReview(w http.ResponseWriter, r *http.Request) (request.ReviewRequest, bool) {
	var req request.ReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return request.ReviewRequest{}, false
	}

	req.ID = chi.URLParam(r, "id")
	if req.ID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return request.ReviewRequest{}, false
	}
	return req, true
}
