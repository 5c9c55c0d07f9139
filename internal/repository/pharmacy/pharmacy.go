package pharmacy

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/service/pharmacy"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const pharmacyColumns = `id, name, address, region, comune, opens_at, closes_at, operating_days,
	active, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, pharmacyModifyEntity entities.PharmacyModify) (int64, error) {
	pharmacyModifyModel := FromDomainModify(&pharmacyModifyEntity)
	query := `INSERT INTO pharmacies (name, address, region, comune, opens_at, closes_at, operating_days, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		pharmacyModifyModel.Name,
		pointer.Get(pharmacyModifyModel.Address),
		pointer.Get(pharmacyModifyModel.Region),
		pointer.Get(pharmacyModifyModel.Comune),
		pharmacyModifyModel.OpensAt,
		pharmacyModifyModel.ClosesAt,
		pointer.Get(pharmacyModifyModel.OperatingDays),
		pharmacyModifyModel.Active,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected pharmacy repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, pharmacyModifyEntity entities.PharmacyModify) (*entities.Pharmacy, error) {
	pharmacyModifyModel := FromDomainModify(&pharmacyModifyEntity)

	builder := qb.
		Update("pharmacies")

	if pharmacyModifyModel.Name != nil {
		builder = builder.Set("name", pharmacyModifyModel.Name)
	}
	if pharmacyModifyModel.Address != nil {
		builder = builder.Set("address", pharmacyModifyModel.Address)
	}
	if pharmacyModifyModel.Region != nil {
		builder = builder.Set("region", pharmacyModifyModel.Region)
	}
	if pharmacyModifyModel.Comune != nil {
		builder = builder.Set("comune", pharmacyModifyModel.Comune)
	}
	if pharmacyModifyModel.OpensAt != nil {
		builder = builder.Set("opens_at", pharmacyModifyModel.OpensAt)
	}
	if pharmacyModifyModel.ClosesAt != nil {
		builder = builder.Set("closes_at", pharmacyModifyModel.ClosesAt)
	}
	if pharmacyModifyModel.OperatingDays != nil {
		builder = builder.Set("operating_days", pharmacyModifyModel.OperatingDays)
	}
	if pharmacyModifyModel.Active != nil {
		builder = builder.Set("active", pharmacyModifyModel.Active)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": pharmacyModifyModel.ID}).
		Suffix("RETURNING " + pharmacyColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected pharmacy repository update error: %w", err)
	}

	pharmacyModel, err := scanPharmacy(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pharmacy.ErrPharmacyNotFound
		}
		return nil, fmt.Errorf("unexpected pharmacy repository update error: %w", err)
	}

	return ToDomain(pharmacyModel)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Pharmacy, error) {
	return r.getByID(ctx, id, "")
}

// GetByIDForShare не дает деактивировать аптеку, пока идет назначение курьера.
func (r *Repository) GetByIDForShare(ctx context.Context, id int64) (*entities.Pharmacy, error) {
	return r.getByID(ctx, id, "FOR SHARE")
}

func (r *Repository) getByID(ctx context.Context, id int64, lock string) (*entities.Pharmacy, error) {
	query := `SELECT ` + pharmacyColumns + `
		FROM pharmacies
		WHERE id = $1 ` + lock

	pharmacyModel, err := scanPharmacy(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pharmacy.ErrPharmacyNotFound
		}
		return nil, fmt.Errorf("unexpected pharmacy repository getbyid error: %w", err)
	}

	return ToDomain(pharmacyModel)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Pharmacy, error) {
	query := `SELECT ` + pharmacyColumns + `
		FROM pharmacies
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected pharmacy repository getall error: %w", err)
	}
	defer rows.Close()

	pharmacyModels := make([]PharmacyDB, 0, 8)
	for rows.Next() {
		pharmacyModel, err := scanPharmacy(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected pharmacy repository getall error: %w", err)
		}
		pharmacyModels = append(pharmacyModels, *pharmacyModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected pharmacy repository getall error: %w", err)
	}

	return ToDomainList(pharmacyModels)
}

func scanPharmacy(row pgx.Row) (*PharmacyDB, error) {
	var pharmacyModel PharmacyDB
	err := row.Scan(
		&pharmacyModel.ID,
		&pharmacyModel.Name,
		&pharmacyModel.Address,
		&pharmacyModel.Region,
		&pharmacyModel.Comune,
		&pharmacyModel.OpensAt,
		&pharmacyModel.ClosesAt,
		&pharmacyModel.OperatingDays,
		&pharmacyModel.Active,
		&pharmacyModel.CreatedAt,
		&pharmacyModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pharmacyModel, nil
}
