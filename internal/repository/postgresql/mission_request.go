package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/request"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type missionRequestRepositoryImpl struct {
	db *database.DB
}

func NewMissionRequestRepository(db *database.DB) request.MissionRequestRepository {
	return &missionRequestRepositoryImpl{db: db}
}

const missionRequestColumns = `
	mr.id, mr.employee_id, mr.date, mr.kind, mr.start_time, mr.end_time,
	mr.destination, mr.reason, mr.status, mr.created_at, mr.updated_at, e.full_name
`

func scanMissionRequest(row pgx.Row) (request.MissionRequest, error) {
	var mr request.MissionRequest
	err := row.Scan(
		&mr.ID, &mr.EmployeeID, &mr.Date, &mr.Kind, &mr.StartTime, &mr.EndTime,
		&mr.Destination, &mr.Reason, &mr.Status, &mr.CreatedAt, &mr.UpdatedAt, &mr.EmployeeName,
	)
	return mr, err
}

// Create implements request.MissionRequestRepository.
func (r *missionRequestRepositoryImpl) Create(ctx context.Context, req request.MissionRequest) (request.MissionRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO mission_requests (id, employee_id, date, kind, start_time, end_time, destination, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.Date, req.Kind, req.StartTime, req.EndTime,
		req.Destination, req.Reason, req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if isUniqueViolation(err) {
		return request.MissionRequest{}, request.ErrDuplicateRequest
	}
	if err != nil {
		return request.MissionRequest{}, fmt.Errorf("failed to create mission request: %w", err)
	}

	return req, nil
}

// GetByID implements request.MissionRequestRepository.
func (r *missionRequestRepositoryImpl) GetByID(ctx context.Context, id string) (request.MissionRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + missionRequestColumns + `
		FROM mission_requests mr
		JOIN employees e ON e.id = mr.employee_id
		WHERE mr.id = $1
	`

	mr, err := scanMissionRequest(q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return request.MissionRequest{}, request.ErrRequestNotFound
	}
	if err != nil {
		return request.MissionRequest{}, fmt.Errorf("failed to get mission request: %w", err)
	}
	return mr, nil
}

// GetApproved implements request.MissionRequestRepository.
func (r *missionRequestRepositoryImpl) GetApproved(ctx context.Context, employeeID string, date time.Time, kind request.Kind) (*request.MissionRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + missionRequestColumns + `
		FROM mission_requests mr
		JOIN employees e ON e.id = mr.employee_id
		WHERE mr.employee_id = $1 AND mr.date = $2 AND mr.kind = $3 AND mr.status = $4
	`

	mr, err := scanMissionRequest(q.QueryRow(ctx, query, employeeID, date, kind, request.StatusApproved))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get approved mission: %w", err)
	}
	return &mr, nil
}

// ListPending implements request.MissionRequestRepository.
func (r *missionRequestRepositoryImpl) ListPending(ctx context.Context) ([]request.MissionRequest, error) {
	query := `
		SELECT ` + missionRequestColumns + `
		FROM mission_requests mr
		JOIN employees e ON e.id = mr.employee_id
		WHERE mr.status = $1
		ORDER BY mr.created_at
	`

	return r.listMissionRequests(ctx, query, request.StatusPending)
}

// ListByEmployee implements request.MissionRequestRepository.
func (r *missionRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]request.MissionRequest, error) {
	query := `
		SELECT ` + missionRequestColumns + `
		FROM mission_requests mr
		JOIN employees e ON e.id = mr.employee_id
		WHERE mr.employee_id = $1
		ORDER BY mr.date DESC
	`

	return r.listMissionRequests(ctx, query, employeeID)
}

// UpdateStatus implements request.MissionRequestRepository.
func (r *missionRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status request.Status) error {
	return updateRequestStatus(ctx, r.db, "mission_requests", id, status)
}

func (r *missionRequestRepositoryImpl) listMissionRequests(ctx context.Context, query string, args ...interface{}) ([]request.MissionRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list mission requests: %w", err)
	}
	defer rows.Close()

	var out []request.MissionRequest
	for rows.Next() {
		mr, err := scanMissionRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission request: %w", err)
		}
		out = append(out, mr)
	}
	return out, rows.Err()
}
