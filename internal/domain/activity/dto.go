package activity

// DayStatus classifies one calendar day of an employee's activity view.
type DayStatus string

const (
	StatusHoliday     DayStatus = "HOLIDAY"
	StatusLeaveFull   DayStatus = "LEAVE_FULL"
	StatusLeaveHourly DayStatus = "LEAVE_HOURLY"
	StatusWeekendOff  DayStatus = "WEEKEND_OFF"
	StatusAbsent      DayStatus = "ABSENT"
	StatusPresent     DayStatus = "PRESENT"
)

type DayActivity struct {
	Date       string    `json:"date"`
	Status     DayStatus `json:"status"`
	StatusInfo string    `json:"status_info"`
	Logs       []string  `json:"logs"`
}
