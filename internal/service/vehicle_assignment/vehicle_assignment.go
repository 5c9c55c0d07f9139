package vehicle_assignment

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Manager struct {
	repository Repository
	couriers   CourierRepository
	vehicles   VehicleRepository
	pharmacies PharmacyReleaser
	txManager  TxManager
	options    Options
	now        func() time.Time
}

func New(
	repository Repository,
	couriers CourierRepository,
	vehicles VehicleRepository,
	pharmacies PharmacyReleaser,
	txManager TxManager,
	options Options,
) *Manager {
	return &Manager{
		repository: repository,
		couriers:   couriers,
		vehicles:   vehicles,
		pharmacies: pharmacies,
		txManager:  txManager,
		options:    options,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Assign закрепляет машину за курьером. Прежние активные назначения курьера
// и машины закрываются в той же транзакции до вставки новой строки.
func (m *Manager) Assign(ctx context.Context, courierID, vehicleID int64) (*entities.VehicleAssignmentResult, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if vehicleID <= 0 {
		return nil, ErrInvalidVehicleID
	}

	var result *entities.VehicleAssignmentResult
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = m.assign(ctx, courierID, vehicleID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Release закрывает назначение. Повторный вызов для закрытого назначения ничего не меняет.
func (m *Manager) Release(ctx context.Context, assignmentID int64) (*entities.VehicleAssignment, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}

	var released *entities.VehicleAssignment
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		released, err = m.release(ctx, assignmentID, m.options.ReleaseEndsPharmacyAssignment)
		return err
	})
	if err != nil {
		return nil, err
	}
	return released, nil
}

// Reassign меняет машину курьера без разрыва в истории: закрытие старого
// назначения и создание нового либо фиксируются вместе, либо откатываются.
func (m *Manager) Reassign(ctx context.Context, assignmentID, vehicleID int64) (*entities.VehicleAssignmentResult, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}
	if vehicleID <= 0 {
		return nil, ErrInvalidVehicleID
	}

	var result *entities.VehicleAssignmentResult
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := m.repository.GetByID(ctx, assignmentID)
		if err != nil {
			return fmt.Errorf("get assignment: %w", err)
		}

		// курьер сразу получит новую машину, поэтому аптеку не трогаем
		released, err := m.release(ctx, assignmentID, false)
		if err != nil {
			return err
		}

		result, err = m.assign(ctx, current.CourierID, vehicleID)
		if err != nil {
			return err
		}
		if current.Active {
			result.Displaced = append([]entities.VehicleAssignment{*released}, result.Displaced...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetActiveForVehicle возвращает активное назначение машины или nil.
func (m *Manager) GetActiveForVehicle(ctx context.Context, vehicleID int64) (*entities.VehicleAssignment, error) {
	var active *entities.VehicleAssignment
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		assignments, err := m.repository.ListActiveByVehicleForUpdate(ctx, vehicleID)
		if err != nil {
			return fmt.Errorf("list active assignments: %w", err)
		}
		if len(assignments) > 0 {
			active = &assignments[0]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return active, nil
}

func (m *Manager) GetAssignment(ctx context.Context, assignmentID int64) (*entities.VehicleAssignment, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}

	assignment, err := m.repository.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return assignment, nil
}

func (m *Manager) assign(ctx context.Context, courierID, vehicleID int64) (*entities.VehicleAssignmentResult, error) {
	// порядок блокировок: курьер, машина, назначения
	courier, err := m.couriers.GetByIDForUpdate(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	vehicle, err := m.vehicles.GetByIDForUpdate(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}

	byCourier, err := m.repository.ListActiveByCourierForUpdate(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("list courier assignments: %w", err)
	}
	byVehicle, err := m.repository.ListActiveByVehicleForUpdate(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("list vehicle assignments: %w", err)
	}

	if len(byCourier) == 1 && len(byVehicle) == 1 && byCourier[0].ID == byVehicle[0].ID {
		return &entities.VehicleAssignmentResult{
			Assignment: byCourier[0],
			Courier:    *courier,
			Vehicle:    *vehicle,
		}, nil
	}

	if !assignable(vehicle, len(byVehicle) > 0) {
		return nil, fmt.Errorf("%w: vehicle %d is %s", ErrVehicleUnavailable, vehicle.ID, vehicle.Status)
	}

	now := m.now()
	displaced := make([]entities.VehicleAssignment, 0, len(byCourier)+len(byVehicle))

	for _, previous := range byCourier {
		released, err := m.repository.Deactivate(ctx, previous.ID, now)
		if err != nil {
			return nil, fmt.Errorf("deactivate courier assignment: %w", err)
		}
		displaced = append(displaced, *released)

		if previous.VehicleID != vehicleID {
			if err := m.freeVehicle(ctx, previous.VehicleID); err != nil {
				return nil, err
			}
		}
	}

	for _, previous := range byVehicle {
		released, err := m.repository.Deactivate(ctx, previous.ID, now)
		if err != nil {
			return nil, fmt.Errorf("deactivate vehicle assignment: %w", err)
		}
		displaced = append(displaced, *released)

		if previous.CourierID != courierID {
			if err := m.freeCourier(ctx, previous.CourierID, m.options.ReleaseEndsPharmacyAssignment); err != nil {
				return nil, err
			}
		}
	}

	assignment, err := m.repository.Create(ctx, courierID, vehicleID, now)
	if err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	hasVehicle := entities.HasVehicle
	courier, err = m.couriers.Update(ctx, entities.CourierModify{
		ID:                &courierID,
		VehiclePossession: &hasVehicle,
	})
	if err != nil {
		return nil, fmt.Errorf("update courier possession: %w", err)
	}

	occupied := entities.VehicleOccupied
	vehicle, err = m.vehicles.Update(ctx, entities.VehicleModify{
		ID:     &vehicleID,
		Status: &occupied,
	})
	if err != nil {
		return nil, fmt.Errorf("update vehicle status: %w", err)
	}

	return &entities.VehicleAssignmentResult{
		Assignment: *assignment,
		Courier:    *courier,
		Vehicle:    *vehicle,
		Displaced:  displaced,
	}, nil
}

func (m *Manager) release(ctx context.Context, assignmentID int64, endPharmacy bool) (*entities.VehicleAssignment, error) {
	current, err := m.repository.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	if !current.Active {
		return current, nil
	}

	if _, err := m.couriers.GetByIDForUpdate(ctx, current.CourierID); err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	if _, err := m.vehicles.GetByIDForUpdate(ctx, current.VehicleID); err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}

	// перечитываем под блокировкой: назначение могли закрыть параллельно
	current, err = m.repository.GetByIDForUpdate(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("lock assignment: %w", err)
	}
	if !current.Active {
		return current, nil
	}

	released, err := m.repository.Deactivate(ctx, current.ID, m.now())
	if err != nil {
		return nil, fmt.Errorf("deactivate assignment: %w", err)
	}

	if err := m.freeVehicle(ctx, current.VehicleID); err != nil {
		return nil, err
	}
	if err := m.freeCourier(ctx, current.CourierID, endPharmacy); err != nil {
		return nil, err
	}

	return released, nil
}

// freeVehicle возвращает машину в OPERATIONAL, если на ней больше нет активных
// назначений. Статусы мастерской и списания не трогаются.
func (m *Manager) freeVehicle(ctx context.Context, vehicleID int64) error {
	active, err := m.repository.CountActiveByVehicle(ctx, vehicleID)
	if err != nil {
		return fmt.Errorf("count vehicle assignments: %w", err)
	}
	if active > 0 {
		return nil
	}

	vehicle, err := m.vehicles.GetByIDForUpdate(ctx, vehicleID)
	if err != nil {
		return fmt.Errorf("get vehicle: %w", err)
	}
	if vehicle.Status != entities.VehicleOccupied {
		return nil
	}

	operational := entities.VehicleOperational
	if _, err := m.vehicles.Update(ctx, entities.VehicleModify{
		ID:     &vehicleID,
		Status: &operational,
	}); err != nil {
		return fmt.Errorf("update vehicle status: %w", err)
	}
	return nil
}

func (m *Manager) freeCourier(ctx context.Context, courierID int64, endPharmacy bool) error {
	active, err := m.repository.CountActiveByCourier(ctx, courierID)
	if err != nil {
		return fmt.Errorf("count courier assignments: %w", err)
	}
	if active > 0 {
		return nil
	}

	noVehicle := entities.NoVehicle
	if _, err := m.couriers.Update(ctx, entities.CourierModify{
		ID:                &courierID,
		VehiclePossession: &noVehicle,
	}); err != nil {
		return fmt.Errorf("update courier possession: %w", err)
	}

	if endPharmacy && m.pharmacies != nil {
		if err := m.pharmacies.ReleaseActiveForCourier(ctx, courierID); err != nil {
			return fmt.Errorf("release pharmacy assignment: %w", err)
		}
	}
	return nil
}

// assignable: OCCUPIED допустим, только если машину занимает активное
// назначение, которое будет передано новому курьеру.
func assignable(vehicle *entities.Vehicle, hasActive bool) bool {
	switch vehicle.Status {
	case entities.VehicleOperational:
		return true
	case entities.VehicleOccupied:
		return hasActive
	default:
		return false
	}
}
