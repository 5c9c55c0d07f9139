package pharmacy_assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	service "dispatch/internal/service/pharmacy_assignment"
)

const assignmentColumns = `id, courier_id, pharmacy_id, assigned_at, released_at, active, note`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierID, pharmacyID int64, note string, assignedAt time.Time) (*entities.PharmacyAssignment, error) {
	query := `INSERT INTO pharmacy_assignments (courier_id, pharmacy_id, note, assigned_at, active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING ` + assignmentColumns

	assignmentModel, err := scanAssignment(r.querier.QueryRow(ctx, query, courierID, pharmacyID, note, assignedAt))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, service.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("%w: %s", service.ErrReferenceNotFound, repository.ConstraintName(err))
		}
		return nil, fmt.Errorf("unexpected pharmacy assignment repository create error: %w", err)
	}

	return ToDomain(assignmentModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.PharmacyAssignment, error) {
	return r.getByID(ctx, id, "")
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.PharmacyAssignment, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *Repository) getByID(ctx context.Context, id int64, lock string) (*entities.PharmacyAssignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM pharmacy_assignments
		WHERE id = $1 ` + lock

	assignmentModel, err := scanAssignment(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected pharmacy assignment repository getbyid error: %w", err)
	}

	return ToDomain(assignmentModel), nil
}

func (r *Repository) ListActiveByCourierForUpdate(ctx context.Context, courierID int64) ([]entities.PharmacyAssignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM pharmacy_assignments
		WHERE courier_id = $1 AND active
		ORDER BY id
		FOR UPDATE`

	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected pharmacy assignment repository list error: %w", err)
	}
	defer rows.Close()

	assignmentModels := make([]PharmacyAssignmentDB, 0, 1)
	for rows.Next() {
		assignmentModel, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected pharmacy assignment repository list error: %w", err)
		}
		assignmentModels = append(assignmentModels, *assignmentModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected pharmacy assignment repository list error: %w", err)
	}

	return ToDomainList(assignmentModels), nil
}

func (r *Repository) Deactivate(ctx context.Context, id int64, releasedAt time.Time) (*entities.PharmacyAssignment, error) {
	query := `UPDATE pharmacy_assignments
		SET active = FALSE, released_at = COALESCE(released_at, $2)
		WHERE id = $1
		RETURNING ` + assignmentColumns

	assignmentModel, err := scanAssignment(r.querier.QueryRow(ctx, query, id, releasedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected pharmacy assignment repository deactivate error: %w", err)
	}

	return ToDomain(assignmentModel), nil
}

func (r *Repository) CountActiveByCourier(ctx context.Context, courierID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM pharmacy_assignments WHERE courier_id = $1 AND active`

	var count int64
	if err := r.querier.QueryRow(ctx, query, courierID).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected pharmacy assignment repository count error: %w", err)
	}
	return count, nil
}

func scanAssignment(row pgx.Row) (*PharmacyAssignmentDB, error) {
	var assignmentModel PharmacyAssignmentDB
	err := row.Scan(
		&assignmentModel.ID,
		&assignmentModel.CourierID,
		&assignmentModel.PharmacyID,
		&assignmentModel.AssignedAt,
		&assignmentModel.ReleasedAt,
		&assignmentModel.Active,
		&assignmentModel.Note,
	)
	if err != nil {
		return nil, err
	}
	return &assignmentModel, nil
}
