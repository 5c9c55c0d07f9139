//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, courierModifyEntity entities.CourierModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Courier, error)
	GetAll(ctx context.Context, status *entities.CourierStatusType) ([]entities.Courier, error)
	Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error)
	SuspendExpiredLicenses(ctx context.Context, now time.Time) (int64, error)
}

// PharmacyAssignmentCounter считает активные назначения курьера в аптеки.
type PharmacyAssignmentCounter interface {
	CountActiveByCourier(ctx context.Context, courierID int64) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
