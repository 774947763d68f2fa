package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/attlog"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/database"
)

type rawLogRepositoryImpl struct {
	db *database.DB
}

func NewRawLogRepository(db *database.DB) attlog.RawLogRepository {
	return &rawLogRepositoryImpl{db: db}
}

// Create implements attlog.RawLogRepository.
func (r *rawLogRepositoryImpl) Create(ctx context.Context, log attlog.RawLog) (attlog.RawLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO raw_attendance_logs (id, employee_code, timestamp, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, log.ID, log.EmployeeCode, log.Timestamp).Scan(&log.CreatedAt)
	if err != nil {
		return attlog.RawLog{}, fmt.Errorf("failed to create raw log: %w", err)
	}

	return log, nil
}

// ListForDay implements attlog.RawLogRepository.
func (r *rawLogRepositoryImpl) ListForDay(ctx context.Context, employeeCode string, dayStart, dayEnd time.Time) ([]attlog.RawLog, error) {
	return r.list(ctx, employeeCode, dayStart, dayEnd)
}

// ListRange implements attlog.RawLogRepository.
func (r *rawLogRepositoryImpl) ListRange(ctx context.Context, employeeCode string, from, to time.Time) ([]attlog.RawLog, error) {
	return r.list(ctx, employeeCode, from, to)
}

func (r *rawLogRepositoryImpl) list(ctx context.Context, employeeCode string, from, to time.Time) ([]attlog.RawLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, timestamp, created_at
		FROM raw_attendance_logs
		WHERE employee_code = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY timestamp
	`

	rows, err := q.Query(ctx, query, employeeCode, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list raw logs: %w", err)
	}
	defer rows.Close()

	var out []attlog.RawLog
	for rows.Next() {
		var l attlog.RawLog
		if err := rows.Scan(&l.ID, &l.EmployeeCode, &l.Timestamp, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan raw log: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
