package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/request"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) request.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.date, lr.kind, lr.requested_minutes, lr.reason,
	lr.status, lr.created_at, lr.updated_at, e.full_name
`

func scanLeaveRequest(row pgx.Row) (request.LeaveRequest, error) {
	var lr request.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.Date, &lr.Kind, &lr.RequestedMinutes,
		&lr.Reason, &lr.Status, &lr.CreatedAt, &lr.UpdatedAt, &lr.EmployeeName,
	)
	return lr, err
}

// Create implements request.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req request.LeaveRequest) (request.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, date, kind, requested_minutes, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.Date, req.Kind, req.RequestedMinutes, req.Reason, req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if isUniqueViolation(err) {
		return request.LeaveRequest{}, request.ErrDuplicateRequest
	}
	if err != nil {
		return request.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements request.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (request.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return request.LeaveRequest{}, request.ErrRequestNotFound
	}
	if err != nil {
		return request.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return lr, nil
}

// GetApproved implements request.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetApproved(ctx context.Context, employeeID string, date time.Time, kind request.Kind) (*request.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.employee_id = $1 AND lr.date = $2 AND lr.kind = $3 AND lr.status = $4
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, employeeID, date, kind, request.StatusApproved))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get approved leave: %w", err)
	}
	return &lr, nil
}

// ListApprovedRange implements request.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListApprovedRange(ctx context.Context, employeeID string, from, to time.Time) ([]request.LeaveRequest, error) {
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.employee_id = $1 AND lr.status = $2 AND lr.date BETWEEN $3 AND $4
		ORDER BY lr.date
	`

	return r.listLeaveRequests(ctx, query, employeeID, request.StatusApproved, from, to)
}

// ListPending implements request.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListPending(ctx context.Context) ([]request.LeaveRequest, error) {
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.status = $1
		ORDER BY lr.created_at
	`

	return r.listLeaveRequests(ctx, query, request.StatusPending)
}

// ListByEmployee implements request.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]request.LeaveRequest, error) {
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.employee_id = $1
		ORDER BY lr.date DESC
	`

	return r.listLeaveRequests(ctx, query, employeeID)
}

// UpdateStatus implements request.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status request.Status) error {
	return updateRequestStatus(ctx, r.db, "leave_requests", id, status)
}

func (r *leaveRequestRepositoryImpl) listLeaveRequests(ctx context.Context, query string, args ...interface{}) ([]request.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var out []request.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		out = append(out, lr)
	}
	return out, rows.Err()
}

// updateRequestStatus transitions a request row out of Pending. All four
// request tables share the status column contract, so the guard lives here:
// terminal rows are never touched and report ErrRequestAlreadyProcessed.
func updateRequestStatus(ctx context.Context, db *database.DB, table, id string, status request.Status) error {
	q := GetQuerier(ctx, db)

	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, table)

	tag, err := q.Exec(ctx, query, status, id, request.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Distinguish a missing row from an already-reviewed one.
	var existing request.Status
	err = q.QueryRow(ctx, fmt.Sprintf("SELECT status FROM %s WHERE id = $1", table), id).Scan(&existing)
	if err == pgx.ErrNoRows {
		return request.ErrRequestNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check request status: %w", err)
	}
	return request.ErrRequestAlreadyProcessed
}
