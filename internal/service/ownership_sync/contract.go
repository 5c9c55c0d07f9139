//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ownership_sync_test
package ownership_sync

import (
	"context"

	"dispatch/internal/entities"
)

type AssignmentManager interface {
	Assign(ctx context.Context, courierID, vehicleID int64) (*entities.VehicleAssignmentResult, error)
	Release(ctx context.Context, assignmentID int64) (*entities.VehicleAssignment, error)
}

type AssignmentReader interface {
	GetActiveForVehicle(ctx context.Context, vehicleID int64) (*entities.VehicleAssignment, error)
}
