package request

import (
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID       string  `json:"employee_id"`
	Date             string  `json:"date"`
	Kind             Kind    `json:"leave_type"`
	RequestedMinutes int     `json:"requested_minutes"`
	Reason           *string `json:"reason,omitempty"`
}

func (r SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	switch r.Kind {
	case KindFullDay:
	case KindHourly:
		if r.RequestedMinutes <= 0 {
			errs = append(errs, validator.ValidationError{Field: "requested_minutes", Message: "requested_minutes must be greater than 0 for hourly leave"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type must be FULL_DAY or HOURLY"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitMissionRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	Kind        Kind    `json:"mission_type"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	Destination *string `json:"destination,omitempty"`
	Reason      *string `json:"reason,omitempty"`
}

func (r SubmitMissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	switch r.Kind {
	case KindFullDay:
	case KindHourly:
		if r.StartTime == nil || r.EndTime == nil {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "hourly missions require start_time and end_time"})
		} else {
			if _, ok := validator.IsValidTimeOfDay(*r.StartTime); !ok {
				errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be HH:MM"})
			}
			if _, ok := validator.IsValidTimeOfDay(*r.EndTime); !ok {
				errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be HH:MM"})
			}
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "mission_type", Message: "mission_type must be FULL_DAY or HOURLY"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitOvertimeRequest struct {
	EmployeeID       string `json:"employee_id"`
	Date             string `json:"date"`
	RequestedMinutes int    `json:"requested_minutes"`
}

func (r SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if r.RequestedMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "requested_minutes", Message: "requested_minutes cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitManualLogRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	LogType    LogType `json:"log_type"`
	Reason     *string `json:"reason,omitempty"`
}

func (r SubmitManualLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidTimeOfDay(r.Time); !ok {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "time must be HH:MM"})
	}
	if r.LogType != LogTypeIn && r.LogType != LogTypeOut {
		errs = append(errs, validator.ValidationError{Field: "log_type", Message: "log_type must be IN or OUT"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReviewAction is the manager's decision on a pending request.
type ReviewAction string

const (
	ActionApprove ReviewAction = "APPROVE"
	ActionReject  ReviewAction = "REJECT"
)

type ReviewRequest struct {
	ID     string       `json:"-"`
	Action ReviewAction `json:"action"`
}

func (r ReviewRequest) Validate() error {
	if r.Action != ActionApprove && r.Action != ActionReject {
		return ErrInvalidReviewAction
	}
	return nil
}

type LeaveResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	Date             string  `json:"date"`
	Kind             Kind    `json:"leave_type"`
	RequestedMinutes int     `json:"requested_minutes"`
	Reason           *string `json:"reason,omitempty"`
	Status           Status  `json:"status"`
}

func NewLeaveResponse(req LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:               req.ID,
		EmployeeID:       req.EmployeeID,
		EmployeeName:     req.EmployeeName,
		Date:             req.Date.Format("2006-01-02"),
		Kind:             req.Kind,
		RequestedMinutes: req.RequestedMinutes,
		Reason:           req.Reason,
		Status:           req.Status,
	}
}

type MissionResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Kind         Kind    `json:"mission_type"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	Destination  *string `json:"destination,omitempty"`
	Reason       *string `json:"reason,omitempty"`
	Status       Status  `json:"status"`
}

func NewMissionResponse(req MissionRequest) MissionResponse {
	return MissionResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Date:         req.Date.Format("2006-01-02"),
		Kind:         req.Kind,
		StartTime:    formatTimeOfDay(req.StartTime),
		EndTime:      formatTimeOfDay(req.EndTime),
		Destination:  req.Destination,
		Reason:       req.Reason,
		Status:       req.Status,
	}
}

type OvertimeResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	Date             string  `json:"date"`
	RequestedMinutes int     `json:"requested_minutes"`
	Status           Status  `json:"status"`
}

func NewOvertimeResponse(req OvertimeRequest) OvertimeResponse {
	return OvertimeResponse{
		ID:               req.ID,
		EmployeeID:       req.EmployeeID,
		EmployeeName:     req.EmployeeName,
		Date:             req.Date.Format("2006-01-02"),
		RequestedMinutes: req.RequestedMinutes,
		Status:           req.Status,
	}
}

type ManualLogResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	LogType      LogType `json:"log_type"`
	Reason       *string `json:"reason,omitempty"`
	Status       Status  `json:"status"`
}

func NewManualLogResponse(req ManualLogRequest) ManualLogResponse {
	return ManualLogResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Date:         req.Date.Format("2006-01-02"),
		Time:         req.Time.Format("15:04"),
		LogType:      req.LogType,
		Reason:       req.Reason,
		Status:       req.Status,
	}
}

func formatTimeOfDay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
