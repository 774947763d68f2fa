package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/report"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// Upsert implements report.ReportRepository. The (employee_id, date) unique
// constraint makes re-runs overwrite in place; last writer wins.
func (r *reportRepositoryImpl) Upsert(ctx context.Context, rep report.DailyReport) (report.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}

	query := `
		INSERT INTO daily_reports (
			id, employee_id, date, first_check_in, last_check_out,
			total_lateness_minutes, penalty_minutes, required_work_minutes,
			total_worked_minutes, work_shortfall_minutes, work_overtime_minutes,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		ON CONFLICT (employee_id, date) DO UPDATE SET
			first_check_in = EXCLUDED.first_check_in,
			last_check_out = EXCLUDED.last_check_out,
			total_lateness_minutes = EXCLUDED.total_lateness_minutes,
			penalty_minutes = EXCLUDED.penalty_minutes,
			required_work_minutes = EXCLUDED.required_work_minutes,
			total_worked_minutes = EXCLUDED.total_worked_minutes,
			work_shortfall_minutes = EXCLUDED.work_shortfall_minutes,
			work_overtime_minutes = EXCLUDED.work_overtime_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rep.ID, rep.EmployeeID, rep.Date, rep.FirstCheckIn, rep.LastCheckOut,
		rep.TotalLatenessMinutes, rep.PenaltyMinutes, rep.RequiredWorkMinutes,
		rep.TotalWorkedMinutes, rep.WorkShortfallMinutes, rep.WorkOvertimeMinutes,
	).Scan(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return report.DailyReport{}, fmt.Errorf("failed to upsert daily report: %w", err)
	}

	return rep, nil
}

const dailyReportColumns = `
	dr.id, dr.employee_id, dr.date, dr.first_check_in, dr.last_check_out,
	dr.total_lateness_minutes, dr.penalty_minutes, dr.required_work_minutes,
	dr.total_worked_minutes, dr.work_shortfall_minutes, dr.work_overtime_minutes,
	dr.created_at, dr.updated_at, e.full_name
`

func scanDailyReport(row pgx.Row) (report.DailyReport, error) {
	var rep report.DailyReport
	err := row.Scan(
		&rep.ID, &rep.EmployeeID, &rep.Date, &rep.FirstCheckIn, &rep.LastCheckOut,
		&rep.TotalLatenessMinutes, &rep.PenaltyMinutes, &rep.RequiredWorkMinutes,
		&rep.TotalWorkedMinutes, &rep.WorkShortfallMinutes, &rep.WorkOvertimeMinutes,
		&rep.CreatedAt, &rep.UpdatedAt, &rep.EmployeeName,
	)
	return rep, err
}

// GetByEmployeeAndDate implements report.ReportRepository.
func (r *reportRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*report.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dailyReportColumns + `
		FROM daily_reports dr
		JOIN employees e ON e.id = dr.employee_id
		WHERE dr.employee_id = $1 AND dr.date = $2
	`

	rep, err := scanDailyReport(q.QueryRow(ctx, query, employeeID, date))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily report: %w", err)
	}
	return &rep, nil
}

// ListByDate implements report.ReportRepository.
func (r *reportRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]report.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dailyReportColumns + `
		FROM daily_reports dr
		JOIN employees e ON e.id = dr.employee_id
		WHERE dr.date = $1
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily reports: %w", err)
	}
	defer rows.Close()

	var out []report.DailyReport
	for rows.Next() {
		rep, err := scanDailyReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily report: %w", err)
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}
