package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/shift"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)

	if err == pgx.ErrNoRows {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

// GetDayRule implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetDayRule(ctx context.Context, shiftID string, day time.Weekday) (shift.DayRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, shift_id, day_of_week, is_work_day, start_time, end_time,
			   required_work_minutes, grace_period_minutes, penalty_rate, created_at, updated_at
		FROM shift_day_rules
		WHERE shift_id = $1 AND day_of_week = $2
	`

	var rule shift.DayRule
	err := q.QueryRow(ctx, query, shiftID, int(day)).Scan(
		&rule.ID, &rule.ShiftID, &rule.DayOfWeek, &rule.IsWorkDay,
		&rule.StartTime, &rule.EndTime, &rule.RequiredWorkMinutes,
		&rule.GracePeriodMinutes, &rule.PenaltyRate, &rule.CreatedAt, &rule.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return shift.DayRule{}, shift.ErrNoDayRule
	}
	if err != nil {
		return shift.DayRule{}, fmt.Errorf("failed to get day rule: %w", err)
	}

	return rule, nil
}

// ListDayRules implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListDayRules(ctx context.Context, shiftID string) ([]shift.DayRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, shift_id, day_of_week, is_work_day, start_time, end_time,
			   required_work_minutes, grace_period_minutes, penalty_rate, created_at, updated_at
		FROM shift_day_rules
		WHERE shift_id = $1
		ORDER BY day_of_week
	`

	rows, err := q.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list day rules: %w", err)
	}
	defer rows.Close()

	var out []shift.DayRule
	for rows.Next() {
		var rule shift.DayRule
		if err := rows.Scan(
			&rule.ID, &rule.ShiftID, &rule.DayOfWeek, &rule.IsWorkDay,
			&rule.StartTime, &rule.EndTime, &rule.RequiredWorkMinutes,
			&rule.GracePeriodMinutes, &rule.PenaltyRate, &rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan day rule: %w", err)
		}
		out = append(out, rule)
	}
	return out, rows.Err()
}
