package vehicle_assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	service "dispatch/internal/service/vehicle_assignment"
)

const assignmentColumns = `id, courier_id, vehicle_id, assigned_at, released_at, active`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierID, vehicleID int64, assignedAt time.Time) (*entities.VehicleAssignment, error) {
	query := `INSERT INTO vehicle_assignments (courier_id, vehicle_id, assigned_at, active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING ` + assignmentColumns

	assignmentModel, err := scanAssignment(r.querier.QueryRow(ctx, query, courierID, vehicleID, assignedAt))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, service.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("%w: %s", service.ErrReferenceNotFound, repository.ConstraintName(err))
		}
		return nil, fmt.Errorf("unexpected vehicle assignment repository create error: %w", err)
	}

	return ToDomain(assignmentModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.VehicleAssignment, error) {
	return r.getByID(ctx, id, "")
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.VehicleAssignment, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *Repository) getByID(ctx context.Context, id int64, lock string) (*entities.VehicleAssignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM vehicle_assignments
		WHERE id = $1 ` + lock

	assignmentModel, err := scanAssignment(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected vehicle assignment repository getbyid error: %w", err)
	}

	return ToDomain(assignmentModel), nil
}

func (r *Repository) ListActiveByCourierForUpdate(ctx context.Context, courierID int64) ([]entities.VehicleAssignment, error) {
	return r.listActive(ctx, "courier_id", courierID)
}

func (r *Repository) ListActiveByVehicleForUpdate(ctx context.Context, vehicleID int64) ([]entities.VehicleAssignment, error) {
	return r.listActive(ctx, "vehicle_id", vehicleID)
}

func (r *Repository) listActive(ctx context.Context, column string, id int64) ([]entities.VehicleAssignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM vehicle_assignments
		WHERE ` + column + ` = $1 AND active
		ORDER BY id
		FOR UPDATE`

	rows, err := r.querier.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle assignment repository list error: %w", err)
	}
	defer rows.Close()

	assignmentModels := make([]VehicleAssignmentDB, 0, 1)
	for rows.Next() {
		assignmentModel, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected vehicle assignment repository list error: %w", err)
		}
		assignmentModels = append(assignmentModels, *assignmentModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected vehicle assignment repository list error: %w", err)
	}

	return ToDomainList(assignmentModels), nil
}

// Deactivate закрывает назначение. released_at, выставленный раньше, сохраняется.
func (r *Repository) Deactivate(ctx context.Context, id int64, releasedAt time.Time) (*entities.VehicleAssignment, error) {
	query := `UPDATE vehicle_assignments
		SET active = FALSE, released_at = COALESCE(released_at, $2)
		WHERE id = $1
		RETURNING ` + assignmentColumns

	assignmentModel, err := scanAssignment(r.querier.QueryRow(ctx, query, id, releasedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected vehicle assignment repository deactivate error: %w", err)
	}

	return ToDomain(assignmentModel), nil
}

func (r *Repository) CountActiveByCourier(ctx context.Context, courierID int64) (int64, error) {
	return r.countActive(ctx, "courier_id", courierID)
}

func (r *Repository) CountActiveByVehicle(ctx context.Context, vehicleID int64) (int64, error) {
	return r.countActive(ctx, "vehicle_id", vehicleID)
}

func (r *Repository) countActive(ctx context.Context, column string, id int64) (int64, error) {
	query := `SELECT COUNT(*) FROM vehicle_assignments WHERE ` + column + ` = $1 AND active`

	var count int64
	if err := r.querier.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected vehicle assignment repository count error: %w", err)
	}
	return count, nil
}

func scanAssignment(row pgx.Row) (*VehicleAssignmentDB, error) {
	var assignmentModel VehicleAssignmentDB
	err := row.Scan(
		&assignmentModel.ID,
		&assignmentModel.CourierID,
		&assignmentModel.VehicleID,
		&assignmentModel.AssignedAt,
		&assignmentModel.ReleasedAt,
		&assignmentModel.Active,
	)
	if err != nil {
		return nil, err
	}
	return &assignmentModel, nil
}
