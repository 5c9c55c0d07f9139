package courier

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, name, phone, license_number, license_valid, license_expires_at,
	status, vehicle_possession, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (int64, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)
	query := `INSERT INTO couriers (name, phone, license_number, license_valid, license_expires_at, status, vehicle_possession)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		courierModifyModel.Name,
		courierModifyModel.Phone,
		courierModifyModel.LicenseNumber,
		courierModifyModel.LicenseValid,
		courierModifyModel.LicenseExpiresAt,
		courierModifyModel.Status,
		courierModifyModel.VehiclePossession,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, courier.ErrConflict
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	// опционные поля
	if courierModifyModel.Name != nil {
		builder = builder.Set("name", courierModifyModel.Name)
	}
	if courierModifyModel.Phone != nil {
		builder = builder.Set("phone", courierModifyModel.Phone)
	}
	if courierModifyModel.LicenseNumber != nil {
		builder = builder.Set("license_number", courierModifyModel.LicenseNumber)
	}
	if courierModifyModel.LicenseValid != nil {
		builder = builder.Set("license_valid", courierModifyModel.LicenseValid)
	}
	if courierModifyModel.LicenseExpiresAt != nil {
		builder = builder.Set("license_expires_at", courierModifyModel.LicenseExpiresAt)
	}
	if courierModifyModel.Status != nil {
		builder = builder.Set("status", courierModifyModel.Status)
	}
	if courierModifyModel.VehiclePossession != nil {
		builder = builder.Set("vehicle_possession", courierModifyModel.VehiclePossession)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}

		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	return r.getByID(ctx, id, "")
}

// GetByIDForUpdate блокирует строку курьера до конца транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Courier, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *Repository) getByID(ctx context.Context, id int64, lock string) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1 ` + lock

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(courierModel), nil
}

// GetAll отдает курьеров по id; status, если задан, сужает выборку.
func (r *Repository) GetAll(ctx context.Context, status *entities.CourierStatusType) ([]entities.Courier, error) {
	builder := qb.
		Select(courierColumns).
		From("couriers").
		OrderBy("id")
	if status != nil {
		builder = builder.Where(sq.Eq{"status": status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build courier list query: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		courierModel, err := scanCourier(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, *courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

// SuspendExpiredLicenses одним запросом переводит в LICENSE_SUSPENDED всех
// курьеров с невалидной или истекшей на момент now лицензией.
func (r *Repository) SuspendExpiredLicenses(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE couriers
		SET status = $1, updated_at = NOW()
		WHERE status <> $1
		  AND (license_valid = FALSE OR license_expires_at <= $2)`

	tag, err := r.querier.Exec(ctx, query, entities.CourierLicenseSuspended.String(), now)
	if err != nil {
		return 0, fmt.Errorf("unexpected courier repository suspend error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanCourier(row pgx.Row) (*CourierDB, error) {
	var courierModel CourierDB
	err := row.Scan(
		&courierModel.ID,
		&courierModel.Name,
		&courierModel.Phone,
		&courierModel.LicenseNumber,
		&courierModel.LicenseValid,
		&courierModel.LicenseExpiresAt,
		&courierModel.Status,
		&courierModel.VehiclePossession,
		&courierModel.CreatedAt,
		&courierModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &courierModel, nil
}
