package attlog

import (
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateLogRequest struct {
	EmployeeCode string `json:"employee_code"`
	Timestamp    string `json:"timestamp"`
}

func (r CreateLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee_code is required"})
	}
	if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{Field: "timestamp", Message: "timestamp must be an ISO8601 datetime"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LogResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	Timestamp    string `json:"timestamp"`
}

func NewLogResponse(log RawLog) LogResponse {
	return LogResponse{
		ID:           log.ID,
		EmployeeCode: log.EmployeeCode,
		Timestamp:    log.Timestamp.Format(time.RFC3339),
	}
}
