package report

type ReportResponse struct {
	ID                   string  `json:"id"`
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         *string `json:"employee_name,omitempty"`
	Date                 string  `json:"date"`
	FirstCheckIn         *string `json:"first_check_in"`
	LastCheckOut         *string `json:"last_check_out"`
	TotalLatenessMinutes int     `json:"total_lateness_minutes"`
	PenaltyMinutes       string  `json:"penalty_minutes"`
	RequiredWorkMinutes  string  `json:"required_work_minutes_today"`
	TotalWorkedMinutes   int     `json:"total_worked_minutes"`
	WorkShortfallMinutes int     `json:"work_shortfall_minutes"`
	WorkOvertimeMinutes  int     `json:"work_overtime_minutes"`
}

func NewReportResponse(rep DailyReport) ReportResponse {
	var firstIn, lastOut *string
	if rep.FirstCheckIn != nil {
		s := rep.FirstCheckIn.Format("15:04:05")
		firstIn = &s
	}
	if rep.LastCheckOut != nil {
		s := rep.LastCheckOut.Format("15:04:05")
		lastOut = &s
	}

	return ReportResponse{
		ID:                   rep.ID,
		EmployeeID:           rep.EmployeeID,
		EmployeeName:         rep.EmployeeName,
		Date:                 rep.Date.Format("2006-01-02"),
		FirstCheckIn:         firstIn,
		LastCheckOut:         lastOut,
		TotalLatenessMinutes: rep.TotalLatenessMinutes,
		PenaltyMinutes:       rep.PenaltyMinutes.String(),
		RequiredWorkMinutes:  rep.RequiredWorkMinutes.String(),
		TotalWorkedMinutes:   rep.TotalWorkedMinutes,
		WorkShortfallMinutes: rep.WorkShortfallMinutes,
		WorkOvertimeMinutes:  rep.WorkOvertimeMinutes,
	}
}
