//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_test
package vehicle

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Vehicle, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Vehicle, error)
	GetAll(ctx context.Context) ([]entities.Vehicle, error)
	Update(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (*entities.Vehicle, error)
}

// Synchronizer приводит активное назначение машины в соответствие с её владельцем.
// previous - машина до правки, nil при создании.
type Synchronizer interface {
	Sync(ctx context.Context, previous *entities.Vehicle, vehicle entities.Vehicle) error
}

type AssignmentReader interface {
	GetActiveForVehicle(ctx context.Context, vehicleID int64) (*entities.VehicleAssignment, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
