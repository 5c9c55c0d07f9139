//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/access"
)

type Repository interface {
	Create(ctx context.Context, dispatch entities.Dispatch) (*entities.Dispatch, error)
	GetByID(ctx context.Context, id int64) (*entities.Dispatch, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Dispatch, error)
	Update(ctx context.Context, dispatchModify entities.DispatchModify) (*entities.Dispatch, error)
	SaveTransition(ctx context.Context, dispatch entities.Dispatch) (*entities.Dispatch, error)
	List(ctx context.Context, filter entities.DispatchFilter) ([]entities.Dispatch, error)
	Stats(ctx context.Context, from, to time.Time) (*entities.DispatchStats, error)
}

type CourierReader interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
}

type PharmacyReader interface {
	GetByID(ctx context.Context, id int64) (*entities.Pharmacy, error)
}

type Authorizer interface {
	Authorize(op access.Operation, role entities.Role) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
