package tx

import (
	"context"
	"errors"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"dispatch/pkg/retrier"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
)

// ErrConflict возвращается, когда транзакция так и не смогла зафиксироваться
// из-за конкурентной записи.
var ErrConflict = errors.New("concurrent update conflict")

type outerTxKey struct{}

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	internal *manager.Manager
	retrier  retrier.Retrier
}

// New создаёт новый менеджер транзакций. retrier может быть nil, тогда
// сериализационные ошибки не повторяются.
func New(db pgxv5.Transactional, r retrier.Retrier) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		retrier:  r,
	}
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// Do выполняет fn в SERIALIZABLE транзакции. Вложенный вызов присоединяется
// к внешней транзакции, повтор при конфликте делает только внешний.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(outerTxKey{}) != nil {
		return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	}
	ctx = context.WithValue(ctx, outerTxKey{}, struct{}{})

	var err error
	if m.retrier == nil {
		err = m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	} else {
		err = m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
			return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
		})
	}

	if IsSerializationFailure(err) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}

// IsSerializationFailure сообщает, стоит ли повторить транзакцию целиком.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrSerializationFailure || pgErr.Code == pgErrDeadlockDetected
	}
	return false
}
