package employee

import (
	"time"
)

type Employee struct {
	ID           string
	FullName     string
	EmployeeCode string
	ShiftID      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	ShiftName *string
}
