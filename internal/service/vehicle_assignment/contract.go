//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_assignment_test
package vehicle_assignment

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, courierID, vehicleID int64, assignedAt time.Time) (*entities.VehicleAssignment, error)
	GetByID(ctx context.Context, id int64) (*entities.VehicleAssignment, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.VehicleAssignment, error)
	ListActiveByCourierForUpdate(ctx context.Context, courierID int64) ([]entities.VehicleAssignment, error)
	ListActiveByVehicleForUpdate(ctx context.Context, vehicleID int64) ([]entities.VehicleAssignment, error)
	Deactivate(ctx context.Context, id int64, releasedAt time.Time) (*entities.VehicleAssignment, error)
	CountActiveByCourier(ctx context.Context, courierID int64) (int64, error)
	CountActiveByVehicle(ctx context.Context, vehicleID int64) (int64, error)
}

type CourierRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Courier, error)
	Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error)
}

type VehicleRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Vehicle, error)
	Update(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (*entities.Vehicle, error)
}

// PharmacyReleaser снимает активное назначение на аптеку, когда курьер остался без машины.
type PharmacyReleaser interface {
	ReleaseActiveForCourier(ctx context.Context, courierID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
