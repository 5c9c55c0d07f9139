package ownership_sync

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

// Synchronizer приводит активное назначение машины в соответствие с её владельцем.
// Вызывается внутри транзакции правки машины, поэтому собственных транзакций не открывает.
type Synchronizer struct {
	assignments AssignmentManager
	reader      AssignmentReader
}

func New(assignments AssignmentManager, reader AssignmentReader) *Synchronizer {
	return &Synchronizer{
		assignments: assignments,
		reader:      reader,
	}
}

// Sync срабатывает на создании машины (previous == nil) и на смене владельца.
// Правка остальных полей назначение не трогает.
func (s *Synchronizer) Sync(ctx context.Context, previous *entities.Vehicle, vehicle entities.Vehicle) error {
	if previous != nil && !ownerChanged(*previous, vehicle) {
		return nil
	}

	active, err := s.reader.GetActiveForVehicle(ctx, vehicle.ID)
	if err != nil {
		return fmt.Errorf("get active assignment: %w", err)
	}

	ownerID, owned := vehicle.OwnedByCourier()
	if owned && active != nil && active.CourierID == ownerID {
		return nil
	}

	if active != nil {
		if _, err := s.assignments.Release(ctx, active.ID); err != nil {
			return fmt.Errorf("release assignment %d: %w", active.ID, err)
		}
	}

	if !owned || !canCarryOwner(vehicle.Status) {
		return nil
	}

	if _, err := s.assignments.Assign(ctx, ownerID, vehicle.ID); err != nil {
		return fmt.Errorf("assign vehicle %d to owner %d: %w", vehicle.ID, ownerID, err)
	}
	return nil
}

// машина в ремонте или списанная владельцу не выдаётся
func canCarryOwner(status entities.VehicleStatusType) bool {
	return status == entities.VehicleOperational || status == entities.VehicleOccupied
}

func ownerChanged(previous, current entities.Vehicle) bool {
	if previous.Ownership != current.Ownership {
		return true
	}
	prevOwner, prevOwned := previous.OwnedByCourier()
	owner, owned := current.OwnedByCourier()
	return prevOwned != owned || prevOwner != owner
}
