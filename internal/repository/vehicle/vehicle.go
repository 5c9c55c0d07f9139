package vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/vehicle"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const vehicleColumns = `id, plate, brand, model, status, ownership, owner_courier_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (int64, error) {
	vehicleModifyModel := FromDomainModify(&vehicleModifyEntity)

	builder := qb.
		Insert("vehicles").
		Columns("plate", "brand", "model", "status", "ownership", "owner_courier_id").
		Values(
			vehicleModifyModel.Plate,
			pointer.Get(vehicleModifyModel.Brand),
			pointer.Get(vehicleModifyModel.Model),
			vehicleModifyModel.Status,
			vehicleModifyModel.Ownership,
			vehicleModifyModel.OwnerCourierID,
		).
		Suffix("RETURNING id")

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected vehicle repository create error: %w", err)
	}

	var id int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return 0, mapWriteError(err, "create")
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (*entities.Vehicle, error) {
	vehicleModifyModel := FromDomainModify(&vehicleModifyEntity)

	builder := qb.
		Update("vehicles")

	if vehicleModifyModel.Plate != nil {
		builder = builder.Set("plate", vehicleModifyModel.Plate)
	}
	if vehicleModifyModel.Brand != nil {
		builder = builder.Set("brand", vehicleModifyModel.Brand)
	}
	if vehicleModifyModel.Model != nil {
		builder = builder.Set("model", vehicleModifyModel.Model)
	}
	if vehicleModifyModel.Status != nil {
		builder = builder.Set("status", vehicleModifyModel.Status)
	}
	if vehicleModifyModel.Ownership != nil {
		builder = builder.Set("ownership", vehicleModifyModel.Ownership)
	}
	if vehicleModifyModel.ClearOwner {
		builder = builder.Set("owner_courier_id", nil)
	} else if vehicleModifyModel.OwnerCourierID != nil {
		builder = builder.Set("owner_courier_id", vehicleModifyModel.OwnerCourierID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": vehicleModifyModel.ID}).
		Suffix("RETURNING " + vehicleColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository update error: %w", err)
	}

	vehicleModel, err := scanVehicle(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vehicle.ErrVehicleNotFound
		}
		return nil, mapWriteError(err, "update")
	}

	return ToDomain(vehicleModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Vehicle, error) {
	return r.getByID(ctx, id, "")
}

// GetByIDForUpdate блокирует строку машины до конца транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Vehicle, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *Repository) getByID(ctx context.Context, id int64, lock string) (*entities.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE id = $1 ` + lock

	vehicleModel, err := scanVehicle(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vehicle.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("unexpected vehicle repository getbyid error: %w", err)
	}

	return ToDomain(vehicleModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + `
		FROM vehicles
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
	}
	defer rows.Close()

	vehicleModels := make([]VehicleDB, 0, 8)
	for rows.Next() {
		vehicleModel, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
		}
		vehicleModels = append(vehicleModels, *vehicleModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
	}

	return ToDomainList(vehicleModels), nil
}

func mapWriteError(err error, op string) error {
	switch {
	case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
		return vehicle.ErrConflict
	case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
		return vehicle.ErrOwnerNotFound
	case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
		return fmt.Errorf("%w: %s", vehicle.ErrOwnerRequired, repository.ConstraintName(err))
	default:
		return fmt.Errorf("unexpected vehicle repository %s error: %w", op, err)
	}
}

func scanVehicle(row pgx.Row) (*VehicleDB, error) {
	var vehicleModel VehicleDB
	err := row.Scan(
		&vehicleModel.ID,
		&vehicleModel.Plate,
		&vehicleModel.Brand,
		&vehicleModel.Model,
		&vehicleModel.Status,
		&vehicleModel.Ownership,
		&vehicleModel.OwnerCourierID,
		&vehicleModel.CreatedAt,
		&vehicleModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &vehicleModel, nil
}
