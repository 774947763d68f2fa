package postgresql

import (
	"context"
	"fmt"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/request"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type manualLogRequestRepositoryImpl struct {
	db *database.DB
}

func NewManualLogRequestRepository(db *database.DB) request.ManualLogRequestRepository {
	return &manualLogRequestRepositoryImpl{db: db}
}

const manualLogRequestColumns = `
	ml.id, ml.employee_id, ml.date, ml.time, ml.log_type, ml.reason,
	ml.status, ml.created_at, ml.updated_at, e.full_name
`

func scanManualLogRequest(row pgx.Row) (request.ManualLogRequest, error) {
	var ml request.ManualLogRequest
	err := row.Scan(
		&ml.ID, &ml.EmployeeID, &ml.Date, &ml.Time, &ml.LogType, &ml.Reason,
		&ml.Status, &ml.CreatedAt, &ml.UpdatedAt, &ml.EmployeeName,
	)
	return ml, err
}

// Create implements request.ManualLogRequestRepository.
func (r *manualLogRequestRepositoryImpl) Create(ctx context.Context, req request.ManualLogRequest) (request.ManualLogRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO manual_log_requests (id, employee_id, date, time, log_type, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.Date, req.Time, req.LogType, req.Reason, req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if isUniqueViolation(err) {
		return request.ManualLogRequest{}, request.ErrDuplicateRequest
	}
	if err != nil {
		return request.ManualLogRequest{}, fmt.Errorf("failed to create manual log request: %w", err)
	}

	return req, nil
}

// GetByID implements request.ManualLogRequestRepository.
func (r *manualLogRequestRepositoryImpl) GetByID(ctx context.Context, id string) (request.ManualLogRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + manualLogRequestColumns + `
		FROM manual_log_requests ml
		JOIN employees e ON e.id = ml.employee_id
		WHERE ml.id = $1
	`

	ml, err := scanManualLogRequest(q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return request.ManualLogRequest{}, request.ErrRequestNotFound
	}
	if err != nil {
		return request.ManualLogRequest{}, fmt.Errorf("failed to get manual log request: %w", err)
	}
	return ml, nil
}

// ListPending implements request.ManualLogRequestRepository.
func (r *manualLogRequestRepositoryImpl) ListPending(ctx context.Context) ([]request.ManualLogRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + manualLogRequestColumns + `
		FROM manual_log_requests ml
		JOIN employees e ON e.id = ml.employee_id
		WHERE ml.status = $1
		ORDER BY ml.created_at
	`

	rows, err := q.Query(ctx, query, request.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list manual log requests: %w", err)
	}
	defer rows.Close()

	var out []request.ManualLogRequest
	for rows.Next() {
		ml, err := scanManualLogRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan manual log request: %w", err)
		}
		out = append(out, ml)
	}
	return out, rows.Err()
}

// UpdateStatus implements request.ManualLogRequestRepository.
func (r *manualLogRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status request.Status) error {
	return updateRequestStatus(ctx, r.db, "manual_log_requests", id, status)
}
