package vehicle

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Vehicle struct {
	repository  Repository
	assignments AssignmentReader
	sync        Synchronizer
	txManager   TxManager
}

func New(
	repository Repository,
	assignments AssignmentReader,
	sync Synchronizer,
	txManager TxManager,
) *Vehicle {
	return &Vehicle{
		repository:  repository,
		assignments: assignments,
		sync:        sync,
		txManager:   txManager,
	}
}

func (s *Vehicle) CreateVehicle(ctx context.Context, vehicleModify entities.VehicleModify) (*entities.Vehicle, error) {
	if vehicleModify.Plate == nil {
		return nil, ErrMissingRequiredFields
	}
	plate := normalizePlate(*vehicleModify.Plate)
	vehicleModify.Plate = &plate

	if err := validateModify(vehicleModify); err != nil {
		return nil, err
	}

	draft := entities.Vehicle{
		Status:    entities.VehicleOperational,
		Ownership: entities.OwnershipCompany,
	}.Apply(vehicleModify)
	if err := validateOwnership(draft); err != nil {
		return nil, err
	}
	vehicleModify.Status = &draft.Status
	vehicleModify.Ownership = &draft.Ownership

	var created *entities.Vehicle
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.repository.Create(ctx, vehicleModify)
		if err != nil {
			return fmt.Errorf("create vehicle: %w", err)
		}

		created, err = s.syncAndReload(ctx, nil, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateVehicle меняет карточку машины. Смена владельца сразу отражается на
// активном назначении в той же транзакции.
func (s *Vehicle) UpdateVehicle(ctx context.Context, vehicleModify entities.VehicleModify) (*entities.Vehicle, error) {
	if vehicleModify.ID == nil || *vehicleModify.ID <= 0 {
		return nil, ErrInvalidVehicleID
	}
	if vehicleModify.Plate == nil &&
		vehicleModify.Brand == nil &&
		vehicleModify.Model == nil &&
		vehicleModify.Status == nil &&
		vehicleModify.Ownership == nil &&
		vehicleModify.OwnerCourierID == nil &&
		!vehicleModify.ClearOwner {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if vehicleModify.Plate != nil {
		plate := normalizePlate(*vehicleModify.Plate)
		vehicleModify.Plate = &plate
	}
	if err := validateModify(vehicleModify); err != nil {
		return nil, err
	}

	var updated *entities.Vehicle
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, *vehicleModify.ID)
		if err != nil {
			return fmt.Errorf("get vehicle: %w", err)
		}

		// снятие владельца и переход в COMPANY - одно и то же изменение
		if vehicleModify.ClearOwner && vehicleModify.Ownership == nil {
			company := entities.OwnershipCompany
			vehicleModify.Ownership = &company
		}
		if vehicleModify.Ownership != nil && *vehicleModify.Ownership == entities.OwnershipCompany {
			vehicleModify.ClearOwner = true
			vehicleModify.OwnerCourierID = nil
		}
		if err := validateOwnership(current.Apply(vehicleModify)); err != nil {
			return err
		}

		if vehicleModify.Status != nil &&
			*vehicleModify.Status == entities.VehicleOperational &&
			current.Status == entities.VehicleOccupied {
			active, err := s.assignments.GetActiveForVehicle(ctx, current.ID)
			if err != nil {
				return fmt.Errorf("get active assignment: %w", err)
			}
			if active != nil {
				return ErrVehicleAssigned
			}
		}

		if _, err := s.repository.Update(ctx, vehicleModify); err != nil {
			return fmt.Errorf("update vehicle: %w", err)
		}

		updated, err = s.syncAndReload(ctx, current, current.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Vehicle) GetVehicle(ctx context.Context, id int64) (*entities.Vehicle, error) {
	if id <= 0 {
		return nil, ErrInvalidVehicleID
	}

	vehicle, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *Vehicle) GetVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	vehicles, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *Vehicle) syncAndReload(ctx context.Context, previous *entities.Vehicle, id int64) (*entities.Vehicle, error) {
	saved, err := s.repository.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}

	if err := s.sync.Sync(ctx, previous, *saved); err != nil {
		return nil, fmt.Errorf("sync ownership: %w", err)
	}

	// синхронизация могла поменять статус машины
	reloaded, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload vehicle: %w", err)
	}
	return reloaded, nil
}

func validateModify(vehicleModify entities.VehicleModify) error {
	if vehicleModify.Plate != nil && !isValidPlate(*vehicleModify.Plate) {
		return ErrInvalidPlate
	}
	if vehicleModify.Status != nil {
		if !vehicleModify.Status.IsValid() {
			return ErrInvalidStatus
		}
		if *vehicleModify.Status == entities.VehicleOccupied {
			return ErrStatusNotManual
		}
	}
	if vehicleModify.Ownership != nil && !vehicleModify.Ownership.IsValid() {
		return ErrInvalidOwnership
	}
	if vehicleModify.OwnerCourierID != nil && *vehicleModify.OwnerCourierID <= 0 {
		return ErrOwnerNotFound
	}
	return nil
}

func validateOwnership(v entities.Vehicle) error {
	switch v.Ownership {
	case entities.OwnershipCourier:
		if v.OwnerCourierID == nil {
			return ErrOwnerRequired
		}
	case entities.OwnershipCompany:
		if v.OwnerCourierID != nil {
			return ErrOwnerNotAllowed
		}
	}
	return nil
}
