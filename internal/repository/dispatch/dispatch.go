package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	service "dispatch/internal/service/dispatch"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const dispatchColumns = `id, external_order_id, pharmacy_id, courier_id, movement, state, created_at,
	picked_up_at, dispatched_at, estimated_arrival_at, delivered_at, incident_reason, incident_at,
	resend_reason, prescription_number, prescription_issued_at, prescriber_name`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, dispatchEntity entities.Dispatch) (*entities.Dispatch, error) {
	dispatchModel := FromDomain(&dispatchEntity)
	query := `INSERT INTO dispatches (external_order_id, pharmacy_id, courier_id, movement, state, created_at,
		picked_up_at, estimated_arrival_at, resend_reason, prescription_number, prescription_issued_at, prescriber_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + dispatchColumns

	created, err := scanDispatch(r.querier.QueryRow(
		ctx,
		query,
		dispatchModel.ExternalOrderID,
		dispatchModel.PharmacyID,
		dispatchModel.CourierID,
		dispatchModel.Movement,
		dispatchModel.State,
		dispatchModel.CreatedAt,
		dispatchModel.PickedUpAt,
		dispatchModel.EstimatedArrivalAt,
		dispatchModel.ResendReason,
		dispatchModel.PrescriptionNumber,
		dispatchModel.PrescriptionIssuedAt,
		dispatchModel.PrescriberName,
	))
	if err != nil {
		return nil, mapWriteError("create", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) Update(ctx context.Context, dispatchModifyEntity entities.DispatchModify) (*entities.Dispatch, error) {
	dispatchModifyModel := FromDomainModify(&dispatchModifyEntity)

	builder := qb.
		Update("dispatches")

	// опционные поля
	if dispatchModifyModel.ExternalOrderID != nil {
		builder = builder.Set("external_order_id", dispatchModifyModel.ExternalOrderID)
	}
	if dispatchModifyModel.PharmacyID != nil {
		builder = builder.Set("pharmacy_id", dispatchModifyModel.PharmacyID)
	}
	if dispatchModifyModel.CourierID != nil {
		builder = builder.Set("courier_id", dispatchModifyModel.CourierID)
	}
	if dispatchModifyModel.PickedUpAt != nil {
		builder = builder.Set("picked_up_at", dispatchModifyModel.PickedUpAt)
	}
	if dispatchModifyModel.EstimatedArrivalAt != nil {
		builder = builder.Set("estimated_arrival_at", dispatchModifyModel.EstimatedArrivalAt)
	}
	if dispatchModifyModel.ResendReason != nil {
		builder = builder.Set("resend_reason", dispatchModifyModel.ResendReason)
	}
	if dispatchModifyModel.PrescriptionNumber != nil {
		builder = builder.Set("prescription_number", dispatchModifyModel.PrescriptionNumber)
	}
	if dispatchModifyModel.PrescriptionIssuedAt != nil {
		builder = builder.Set("prescription_issued_at", dispatchModifyModel.PrescriptionIssuedAt)
	}
	if dispatchModifyModel.PrescriberName != nil {
		builder = builder.Set("prescriber_name", dispatchModifyModel.PrescriberName)
	}

	builder = builder.
		Where(sq.Eq{"id": dispatchModifyModel.ID}).
		Suffix("RETURNING " + dispatchColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository update error: %w", err)
	}

	updated, err := scanDispatch(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapWriteError("update", err)
	}

	return ToDomain(updated), nil
}

// SaveTransition пишет только поля, которые меняет переход состояния.
func (r *Repository) SaveTransition(ctx context.Context, dispatchEntity entities.Dispatch) (*entities.Dispatch, error) {
	dispatchModel := FromDomain(&dispatchEntity)
	query := `UPDATE dispatches
		SET state = $2, dispatched_at = $3, delivered_at = $4, incident_reason = $5, incident_at = $6
		WHERE id = $1
		RETURNING ` + dispatchColumns

	saved, err := scanDispatch(r.querier.QueryRow(
		ctx,
		query,
		dispatchModel.ID,
		dispatchModel.State,
		dispatchModel.DispatchedAt,
		dispatchModel.DeliveredAt,
		dispatchModel.IncidentReason,
		dispatchModel.IncidentAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrDispatchNotFound
		}
		return nil, fmt.Errorf("unexpected dispatch repository save transition error: %w", err)
	}

	return ToDomain(saved), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Dispatch, error) {
	return r.getByID(ctx, id, "")
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Dispatch, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *Repository) getByID(ctx context.Context, id int64, lock string) (*entities.Dispatch, error) {
	query := `SELECT ` + dispatchColumns + `
		FROM dispatches
		WHERE id = $1 ` + lock

	dispatchModel, err := scanDispatch(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrDispatchNotFound
		}

		return nil, fmt.Errorf("unexpected dispatch repository getbyid error: %w", err)
	}

	return ToDomain(dispatchModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.DispatchFilter) ([]entities.Dispatch, error) {
	builder := qb.
		Select(dispatchColumns).
		From("dispatches")

	if filter.State != nil {
		builder = builder.Where(sq.Eq{"state": filter.State.String()})
	}
	if filter.Movement != nil {
		builder = builder.Where(sq.Eq{"movement": filter.Movement.String()})
	}
	if filter.PharmacyID != nil {
		builder = builder.Where(sq.Eq{"pharmacy_id": *filter.PharmacyID})
	}
	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"courier_id": *filter.CourierID})
	}
	if filter.CreatedFrom != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		builder = builder.Where(sq.Lt{"created_at": *filter.CreatedTo})
	}

	builder = builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository list error: %w", err)
	}
	defer rows.Close()

	dispatchModels := make([]DispatchDB, 0, filter.Limit)
	for rows.Next() {
		dispatchModel, err := scanDispatch(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected dispatch repository list error: %w", err)
		}
		dispatchModels = append(dispatchModels, *dispatchModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository list error: %w", err)
	}

	return ToDomainList(dispatchModels), nil
}

// Stats: счётчики по состояниям берутся по created_at, среднее время доставки по delivered_at.
func (r *Repository) Stats(ctx context.Context, from, to time.Time) (*entities.DispatchStats, error) {
	countQuery := `
		SELECT state, COUNT(*)
		FROM dispatches
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY state`

	rows, err := r.querier.Query(ctx, countQuery, from, to)
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository stats error: %w", err)
	}
	defer rows.Close()

	stats := &entities.DispatchStats{
		ByState: make(map[entities.DispatchState]int64, len(entities.AllDispatchStates)),
	}
	for rows.Next() {
		var (
			state string
			count int64
		)
		if err := rows.Scan(&state, &count); err != nil {
			return nil, fmt.Errorf("unexpected dispatch repository stats error: %w", err)
		}
		stats.ByState[entities.DispatchState(state)] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository stats error: %w", err)
	}

	averageQuery := `
		SELECT AVG(FLOOR(EXTRACT(EPOCH FROM (delivered_at - dispatched_at)) / 60))::float8
		FROM dispatches
		WHERE state = $1
		  AND dispatched_at IS NOT NULL
		  AND delivered_at >= $2 AND delivered_at < $3`

	err = r.querier.QueryRow(ctx, averageQuery, entities.DispatchDelivered.String(), from, to).
		Scan(&stats.AverageDeliveryMinutes)
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository stats error: %w", err)
	}

	return stats, nil
}

func mapWriteError(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return service.ErrDispatchNotFound
	case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
		return service.ErrConflict
	case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
		return fmt.Errorf("%w: %s", service.ErrReferenceNotFound, repository.ConstraintName(err))
	default:
		return fmt.Errorf("unexpected dispatch repository %s error: %w", op, err)
	}
}

func scanDispatch(row pgx.Row) (*DispatchDB, error) {
	var dispatchModel DispatchDB
	err := row.Scan(
		&dispatchModel.ID,
		&dispatchModel.ExternalOrderID,
		&dispatchModel.PharmacyID,
		&dispatchModel.CourierID,
		&dispatchModel.Movement,
		&dispatchModel.State,
		&dispatchModel.CreatedAt,
		&dispatchModel.PickedUpAt,
		&dispatchModel.DispatchedAt,
		&dispatchModel.EstimatedArrivalAt,
		&dispatchModel.DeliveredAt,
		&dispatchModel.IncidentReason,
		&dispatchModel.IncidentAt,
		&dispatchModel.ResendReason,
		&dispatchModel.PrescriptionNumber,
		&dispatchModel.PrescriptionIssuedAt,
		&dispatchModel.PrescriberName,
	)
	if err != nil {
		return nil, err
	}
	return &dispatchModel, nil
}
