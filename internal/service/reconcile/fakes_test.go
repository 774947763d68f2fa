package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/attlog"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/report"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/request"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/settings"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/shift"
)

// In-memory repository fakes. They hold plain slices/maps and implement just
// enough of the domain interfaces for the engine to run against.

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

type fakeEmployeeRepo struct {
	items []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.items {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	for _, e := range f.items {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListWithShift(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.items {
		if e.ShiftID != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeShiftRepo struct {
	rules []shift.DayRule
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	return shift.Shift{ID: id}, nil
}

func (f *fakeShiftRepo) GetDayRule(_ context.Context, shiftID string, day time.Weekday) (shift.DayRule, error) {
	for _, r := range f.rules {
		if r.ShiftID == shiftID && r.DayOfWeek == day {
			return r, nil
		}
	}
	return shift.DayRule{}, shift.ErrNoDayRule
}

func (f *fakeShiftRepo) ListDayRules(_ context.Context, shiftID string) ([]shift.DayRule, error) {
	var out []shift.DayRule
	for _, r := range f.rules {
		if r.ShiftID == shiftID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeHolidayRepo struct {
	items []holiday.Holiday
}

func (f *fakeHolidayRepo) GetByDate(_ context.Context, date time.Time) (*holiday.Holiday, error) {
	for _, h := range f.items {
		if sameDate(h.Date, date) {
			hol := h
			return &hol, nil
		}
	}
	return nil, nil
}

func (f *fakeHolidayRepo) ListRange(_ context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.items {
		if !h.Date.Before(from) && !h.Date.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeLogRepo struct {
	items []attlog.RawLog
}

func (f *fakeLogRepo) Create(_ context.Context, log attlog.RawLog) (attlog.RawLog, error) {
	f.items = append(f.items, log)
	return log, nil
}

func (f *fakeLogRepo) ListForDay(_ context.Context, employeeCode string, dayStart, dayEnd time.Time) ([]attlog.RawLog, error) {
	var out []attlog.RawLog
	for _, l := range f.items {
		if l.EmployeeCode == employeeCode && !l.Timestamp.Before(dayStart) && l.Timestamp.Before(dayEnd) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLogRepo) ListRange(_ context.Context, employeeCode string, from, to time.Time) ([]attlog.RawLog, error) {
	return f.ListForDay(context.Background(), employeeCode, from, to)
}

type fakeLeaveRepo struct {
	items []request.LeaveRequest
}

func (f *fakeLeaveRepo) Create(_ context.Context, req request.LeaveRequest) (request.LeaveRequest, error) {
	f.items = append(f.items, req)
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (request.LeaveRequest, error) {
	for _, r := range f.items {
		if r.ID == id {
			return r, nil
		}
	}
	return request.LeaveRequest{}, request.ErrRequestNotFound
}

func (f *fakeLeaveRepo) GetApproved(_ context.Context, employeeID string, date time.Time, kind request.Kind) (*request.LeaveRequest, error) {
	for _, r := range f.items {
		if r.EmployeeID == employeeID && sameDate(r.Date, date) && r.Kind == kind && r.Status == request.StatusApproved {
			req := r
			return &req, nil
		}
	}
	return nil, nil
}

func (f *fakeLeaveRepo) ListApprovedRange(_ context.Context, employeeID string, from, to time.Time) ([]request.LeaveRequest, error) {
	var out []request.LeaveRequest
	for _, r := range f.items {
		if r.EmployeeID == employeeID && r.Status == request.StatusApproved && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListPending(_ context.Context) ([]request.LeaveRequest, error) {
	var out []request.LeaveRequest
	for _, r := range f.items {
		if r.Status == request.StatusPending {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]request.LeaveRequest, error) {
	var out []request.LeaveRequest
	for _, r := range f.items {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, id string, status request.Status) error {
	for i, r := range f.items {
		if r.ID == id {
			if r.Status != request.StatusPending {
				return request.ErrRequestAlreadyProcessed
			}
			f.items[i].Status = status
			return nil
		}
	}
	return request.ErrRequestNotFound
}

type fakeMissionRepo struct {
	items []request.MissionRequest
}

func (f *fakeMissionRepo) Create(_ context.Context, req request.MissionRequest) (request.MissionRequest, error) {
	f.items = append(f.items, req)
	return req, nil
}

func (f *fakeMissionRepo) GetByID(_ context.Context, id string) (request.MissionRequest, error) {
	for _, r := range f.items {
		if r.ID == id {
			return r, nil
		}
	}
	return request.MissionRequest{}, request.ErrRequestNotFound
}

func (f *fakeMissionRepo) GetApproved(_ context.Context, employeeID string, date time.Time, kind request.Kind) (*request.MissionRequest, error) {
	for _, r := range f.items {
		if r.EmployeeID == employeeID && sameDate(r.Date, date) && r.Kind == kind && r.Status == request.StatusApproved {
			req := r
			return &req, nil
		}
	}
	return nil, nil
}

func (f *fakeMissionRepo) ListPending(_ context.Context) ([]request.MissionRequest, error) {
	var out []request.MissionRequest
	for _, r := range f.items {
		if r.Status == request.StatusPending {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeMissionRepo) ListByEmployee(_ context.Context, employeeID string) ([]request.MissionRequest, error) {
	var out []request.MissionRequest
	for _, r := range f.items {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeMissionRepo) UpdateStatus(_ context.Context, id string, status request.Status) error {
	for i, r := range f.items {
		if r.ID == id {
			if r.Status != request.StatusPending {
				return request.ErrRequestAlreadyProcessed
			}
			f.items[i].Status = status
			return nil
		}
	}
	return request.ErrRequestNotFound
}

type fakeOvertimeRepo struct {
	items []request.OvertimeRequest
}

func (f *fakeOvertimeRepo) Create(_ context.Context, req request.OvertimeRequest) (request.OvertimeRequest, error) {
	f.items = append(f.items, req)
	return req, nil
}

func (f *fakeOvertimeRepo) GetByID(_ context.Context, id string) (request.OvertimeRequest, error) {
	for _, r := range f.items {
		if r.ID == id {
			return r, nil
		}
	}
	return request.OvertimeRequest{}, request.ErrRequestNotFound
}

func (f *fakeOvertimeRepo) HasApproved(_ context.Context, employeeID string, date time.Time) (bool, error) {
	for _, r := range f.items {
		if r.EmployeeID == employeeID && sameDate(r.Date, date) && r.Status == request.StatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOvertimeRepo) ListPending(_ context.Context) ([]request.OvertimeRequest, error) {
	var out []request.OvertimeRequest
	for _, r := range f.items {
		if r.Status == request.StatusPending {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) ListByEmployee(_ context.Context, employeeID string) ([]request.OvertimeRequest, error) {
	var out []request.OvertimeRequest
	for _, r := range f.items {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) UpdateStatus(_ context.Context, id string, status request.Status) error {
	for i, r := range f.items {
		if r.ID == id {
			if r.Status != request.StatusPending {
				return request.ErrRequestAlreadyProcessed
			}
			f.items[i].Status = status
			return nil
		}
	}
	return request.ErrRequestNotFound
}

type fakeReportRepo struct {
	rows    map[string]report.DailyReport
	upserts int
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{rows: make(map[string]report.DailyReport)}
}

func reportKey(employeeID string, date time.Time) string {
	return fmt.Sprintf("%s|%s", employeeID, date.Format("2006-01-02"))
}

func (f *fakeReportRepo) Upsert(_ context.Context, rep report.DailyReport) (report.DailyReport, error) {
	f.upserts++
	key := reportKey(rep.EmployeeID, rep.Date)
	if existing, ok := f.rows[key]; ok {
		rep.ID = existing.ID
	} else {
		rep.ID = key
	}
	f.rows[key] = rep
	return rep, nil
}

func (f *fakeReportRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*report.DailyReport, error) {
	if rep, ok := f.rows[reportKey(employeeID, date)]; ok {
		r := rep
		return &r, nil
	}
	return nil, nil
}

func (f *fakeReportRepo) ListByDate(_ context.Context, date time.Time) ([]report.DailyReport, error) {
	var out []report.DailyReport
	for _, r := range f.rows {
		if sameDate(r.Date, date) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	value *settings.GlobalSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (settings.GlobalSettings, error) {
	if f.value == nil {
		return settings.GlobalSettings{}, settings.ErrSettingsNotFound
	}
	return *f.value, nil
}
