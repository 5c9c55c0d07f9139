//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pharmacy_assignment_test
package pharmacy_assignment

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, courierID, pharmacyID int64, note string, assignedAt time.Time) (*entities.PharmacyAssignment, error)
	GetByID(ctx context.Context, id int64) (*entities.PharmacyAssignment, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.PharmacyAssignment, error)
	ListActiveByCourierForUpdate(ctx context.Context, courierID int64) ([]entities.PharmacyAssignment, error)
	Deactivate(ctx context.Context, id int64, releasedAt time.Time) (*entities.PharmacyAssignment, error)
	CountActiveByCourier(ctx context.Context, courierID int64) (int64, error)
}

type CourierRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Courier, error)
	Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error)
}

type PharmacyRepository interface {
	GetByIDForShare(ctx context.Context, id int64) (*entities.Pharmacy, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
