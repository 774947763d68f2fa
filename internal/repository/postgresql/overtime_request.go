package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/request"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overtimeRequestRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRequestRepository(db *database.DB) request.OvertimeRequestRepository {
	return &overtimeRequestRepositoryImpl{db: db}
}

const overtimeRequestColumns = `
	ot.id, ot.employee_id, ot.date, ot.requested_minutes, ot.status,
	ot.created_at, ot.updated_at, e.full_name
`

func scanOvertimeRequest(row pgx.Row) (request.OvertimeRequest, error) {
	var or request.OvertimeRequest
	err := row.Scan(
		&or.ID, &or.EmployeeID, &or.Date, &or.RequestedMinutes, &or.Status,
		&or.CreatedAt, &or.UpdatedAt, &or.EmployeeName,
	)
	return or, err
}

// Create implements request.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) Create(ctx context.Context, req request.OvertimeRequest) (request.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_requests (id, employee_id, date, requested_minutes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.Date, req.RequestedMinutes, req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if isUniqueViolation(err) {
		return request.OvertimeRequest{}, request.ErrDuplicateRequest
	}
	if err != nil {
		return request.OvertimeRequest{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return req, nil
}

// GetByID implements request.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) GetByID(ctx context.Context, id string) (request.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeRequestColumns + `
		FROM overtime_requests ot
		JOIN employees e ON e.id = ot.employee_id
		WHERE ot.id = $1
	`

	or, err := scanOvertimeRequest(q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return request.OvertimeRequest{}, request.ErrRequestNotFound
	}
	if err != nil {
		return request.OvertimeRequest{}, fmt.Errorf("failed to get overtime request: %w", err)
	}
	return or, nil
}

// HasApproved implements request.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) HasApproved(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM overtime_requests
			WHERE employee_id = $1 AND date = $2 AND status = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date, request.StatusApproved).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overtime approval: %w", err)
	}
	return exists, nil
}

// ListPending implements request.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) ListPending(ctx context.Context) ([]request.OvertimeRequest, error) {
	query := `
		SELECT ` + overtimeRequestColumns + `
		FROM overtime_requests ot
		JOIN employees e ON e.id = ot.employee_id
		WHERE ot.status = $1
		ORDER BY ot.created_at
	`

	return r.listOvertimeRequests(ctx, query, request.StatusPending)
}

// ListByEmployee implements request.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]request.OvertimeRequest, error) {
	query := `
		SELECT ` + overtimeRequestColumns + `
		FROM overtime_requests ot
		JOIN employees e ON e.id = ot.employee_id
		WHERE ot.employee_id = $1
		ORDER BY ot.date DESC
	`

	return r.listOvertimeRequests(ctx, query, employeeID)
}

// UpdateStatus implements request.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status request.Status) error {
	return updateRequestStatus(ctx, r.db, "overtime_requests", id, status)
}

func (r *overtimeRequestRepositoryImpl) listOvertimeRequests(ctx context.Context, query string, args ...interface{}) ([]request.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var out []request.OvertimeRequest
	for rows.Next() {
		or, err := scanOvertimeRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		out = append(out, or)
	}
	return out, rows.Err()
}
