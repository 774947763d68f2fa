package http

import (
	"net/http"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/report"
	"github.com/clockday-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	ListByDate(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportRepo report.ReportRepository
}

func NewReportHandler(reportRepo report.ReportRepository) ReportHandler {
	return &ReportHandlerImpl{reportRepo: reportRepo}
}

// ListByDate implements ReportHandler.
func (h *ReportHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date, ok := validator.IsValidDate(r.URL.Query().Get("date"))
	if !ok {
		response.BadRequest(w, "date query parameter must be YYYY-MM-DD", nil)
		return
	}

	reports, err := h.reportRepo.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]report.ReportResponse, 0, len(reports))
	for _, rep := range reports {
		out = append(out, report.NewReportResponse(rep))
	}
	response.Success(w, out)
}
