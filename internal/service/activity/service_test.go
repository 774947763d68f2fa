package activity

import (
	"context"
	"testing"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/activity"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/attlog"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/request"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeRepo struct {
	items []employee.Employee
}

func (f *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.items {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *stubEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	for _, e := range f.items {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *stubEmployeeRepo) ListWithShift(_ context.Context) ([]employee.Employee, error) {
	return f.items, nil
}

type stubShiftRepo struct {
	rules []shift.DayRule
}

func (f *stubShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	return shift.Shift{ID: id}, nil
}

func (f *stubShiftRepo) GetDayRule(_ context.Context, shiftID string, day time.Weekday) (shift.DayRule, error) {
	for _, r := range f.rules {
		if r.ShiftID == shiftID && r.DayOfWeek == day {
			return r, nil
		}
	}
	return shift.DayRule{}, shift.ErrNoDayRule
}

func (f *stubShiftRepo) ListDayRules(_ context.Context, shiftID string) ([]shift.DayRule, error) {
	var out []shift.DayRule
	for _, r := range f.rules {
		if r.ShiftID == shiftID {
			out = append(out, r)
		}
	}
	return out, nil
}

type stubHolidayRepo struct {
	items []holiday.Holiday
}

func (f *stubHolidayRepo) GetByDate(_ context.Context, date time.Time) (*holiday.Holiday, error) {
	for _, h := range f.items {
		if h.Date.Equal(date) {
			hol := h
			return &hol, nil
		}
	}
	return nil, nil
}

func (f *stubHolidayRepo) ListRange(_ context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.items {
		if !h.Date.Before(from) && !h.Date.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

type stubLogRepo struct {
	items []attlog.RawLog
}

func (f *stubLogRepo) Create(_ context.Context, log attlog.RawLog) (attlog.RawLog, error) {
	f.items = append(f.items, log)
	return log, nil
}

func (f *stubLogRepo) ListForDay(_ context.Context, code string, from, to time.Time) ([]attlog.RawLog, error) {
	return f.ListRange(context.Background(), code, from, to)
}

func (f *stubLogRepo) ListRange(_ context.Context, code string, from, to time.Time) ([]attlog.RawLog, error) {
	var out []attlog.RawLog
	for _, l := range f.items {
		if l.EmployeeCode == code && !l.Timestamp.Before(from) && l.Timestamp.Before(to) {
			out = append(out, l)
		}
	}
	return out, nil
}

type stubLeaveRepo struct {
	items []request.LeaveRequest
}

func (f *stubLeaveRepo) Create(_ context.Context, req request.LeaveRequest) (request.LeaveRequest, error) {
	f.items = append(f.items, req)
	return req, nil
}

func (f *stubLeaveRepo) GetByID(_ context.Context, id string) (request.LeaveRequest, error) {
	return request.LeaveRequest{}, request.ErrRequestNotFound
}

func (f *stubLeaveRepo) GetApproved(_ context.Context, _ string, _ time.Time, _ request.Kind) (*request.LeaveRequest, error) {
	return nil, nil
}

func (f *stubLeaveRepo) ListApprovedRange(_ context.Context, employeeID string, from, to time.Time) ([]request.LeaveRequest, error) {
	var out []request.LeaveRequest
	for _, r := range f.items {
		if r.EmployeeID == employeeID && r.Status == request.StatusApproved && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *stubLeaveRepo) ListPending(_ context.Context) ([]request.LeaveRequest, error) {
	return nil, nil
}

func (f *stubLeaveRepo) ListByEmployee(_ context.Context, _ string) ([]request.LeaveRequest, error) {
	return f.items, nil
}

func (f *stubLeaveRepo) UpdateStatus(_ context.Context, _ string, _ request.Status) error {
	return nil
}

// Week of Monday 2026-03-16 through Sunday 2026-03-22.
func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func newCalendarFixture() (*ActivityServiceImpl, *stubHolidayRepo, *stubLogRepo, *stubLeaveRepo) {
	shiftID := "shift-1"
	employees := &stubEmployeeRepo{items: []employee.Employee{
		{ID: "emp-1", FullName: "Dana Farid", EmployeeCode: "1001", ShiftID: &shiftID},
		{ID: "emp-2", FullName: "Rami Nasser", EmployeeCode: "1002"},
	}}

	shifts := &stubShiftRepo{}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		shifts.rules = append(shifts.rules, shift.DayRule{
			ID:        "rule-" + wd.String(),
			ShiftID:   shiftID,
			DayOfWeek: wd,
			IsWorkDay: wd != time.Saturday && wd != time.Sunday,
		})
	}

	holidays := &stubHolidayRepo{}
	logs := &stubLogRepo{}
	leaves := &stubLeaveRepo{}
	svc := NewService(employees, shifts, holidays, logs, leaves, time.UTC)
	return svc, holidays, logs, leaves
}

func TestGetRange_Classification(t *testing.T) {
	svc, holidays, logs, leaves := newCalendarFixture()

	// Wednesday is a holiday, Thursday a full-day leave, Friday hourly leave.
	holidays.items = append(holidays.items, holiday.Holiday{ID: "hol-1", Date: day(18), Name: "Founding Day"})
	reason := "dentist"
	leaves.items = append(leaves.items,
		request.LeaveRequest{ID: "lr-1", EmployeeID: "emp-1", Date: day(19), Kind: request.KindFullDay, Status: request.StatusApproved},
		request.LeaveRequest{ID: "lr-2", EmployeeID: "emp-1", Date: day(20), Kind: request.KindHourly, RequestedMinutes: 60, Reason: &reason, Status: request.StatusApproved},
	)
	// Logs on Monday only; Tuesday has none.
	logs.items = append(logs.items,
		attlog.RawLog{ID: "l1", EmployeeCode: "1001", Timestamp: time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)},
		attlog.RawLog{ID: "l2", EmployeeCode: "1001", Timestamp: time.Date(2026, 3, 16, 16, 45, 0, 0, time.UTC)},
	)

	days, err := svc.GetRange(context.Background(), "emp-1", day(16), day(22))
	require.NoError(t, err)
	require.Len(t, days, 7)

	assert.Equal(t, activity.StatusPresent, days[0].Status)
	assert.Equal(t, []string{"08:00", "16:45"}, days[0].Logs)
	assert.Equal(t, activity.StatusAbsent, days[1].Status)
	assert.Equal(t, activity.StatusHoliday, days[2].Status)
	assert.Equal(t, "Founding Day", days[2].StatusInfo)
	assert.Equal(t, activity.StatusLeaveFull, days[3].Status)
	assert.Equal(t, activity.StatusLeaveHourly, days[4].Status)
	assert.Equal(t, "dentist", days[4].StatusInfo)
	assert.Equal(t, activity.StatusWeekendOff, days[5].Status)
	assert.Equal(t, activity.StatusWeekendOff, days[6].Status)
}

func TestGetRange_HolidayWinsOverLeave(t *testing.T) {
	svc, holidays, _, leaves := newCalendarFixture()

	holidays.items = append(holidays.items, holiday.Holiday{ID: "hol-1", Date: day(16), Name: "Founding Day"})
	leaves.items = append(leaves.items, request.LeaveRequest{
		ID: "lr-1", EmployeeID: "emp-1", Date: day(16), Kind: request.KindFullDay, Status: request.StatusApproved,
	})

	days, err := svc.GetRange(context.Background(), "emp-1", day(16), day(16))
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, activity.StatusHoliday, days[0].Status)
}

func TestGetRange_InvalidRange(t *testing.T) {
	svc, _, _, _ := newCalendarFixture()

	_, err := svc.GetRange(context.Background(), "emp-1", day(20), day(16))
	assert.ErrorIs(t, err, activity.ErrInvalidRange)
}

func TestGetRange_NoShiftAssigned(t *testing.T) {
	svc, _, _, _ := newCalendarFixture()

	_, err := svc.GetRange(context.Background(), "emp-2", day(16), day(20))
	assert.ErrorIs(t, err, activity.ErrNoShiftAssigned)
}

func TestGetRange_UnknownEmployee(t *testing.T) {
	svc, _, _, _ := newCalendarFixture()

	_, err := svc.GetRange(context.Background(), "nobody", day(16), day(20))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetRange_DateNamesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	shiftID := "shift-1"
	employees := &stubEmployeeRepo{items: []employee.Employee{
		{ID: "emp-1", FullName: "Dana Farid", EmployeeCode: "1001", ShiftID: &shiftID},
	}}
	shifts := &stubShiftRepo{}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		shifts.rules = append(shifts.rules, shift.DayRule{
			ID: "rule-" + wd.String(), ShiftID: shiftID, DayOfWeek: wd, IsWorkDay: true,
		})
	}
	// 19:30 local on Monday the 16th is already March 17 in UTC.
	logs := &stubLogRepo{items: []attlog.RawLog{
		{ID: "l1", EmployeeCode: "1001", Timestamp: time.Date(2026, 3, 16, 19, 30, 0, 0, loc)},
	}}
	svc := NewService(employees, shifts, &stubHolidayRepo{}, logs, &stubLeaveRepo{}, loc)

	// Range bounds arrive as midnight UTC, the way the handler parses them.
	days, err := svc.GetRange(context.Background(), "emp-1", day(16), day(16))
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2026-03-16", days[0].Date)
	assert.Equal(t, activity.StatusPresent, days[0].Status)
	assert.Equal(t, []string{"19:30"}, days[0].Logs)
}
