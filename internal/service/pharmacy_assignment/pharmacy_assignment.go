package pharmacy_assignment

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"dispatch/internal/entities"
)

const maxNoteLength = 500

type Manager struct {
	repository Repository
	couriers   CourierRepository
	pharmacies PharmacyRepository
	txManager  TxManager
	now        func() time.Time
}

func New(
	repository Repository,
	couriers CourierRepository,
	pharmacies PharmacyRepository,
	txManager TxManager,
) *Manager {
	return &Manager{
		repository: repository,
		couriers:   couriers,
		pharmacies: pharmacies,
		txManager:  txManager,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Assign прикрепляет курьера к аптеке. Курьер обязан держать машину;
// у аптеки может быть сколько угодно курьеров, поэтому закрываются только
// назначения самого курьера.
func (m *Manager) Assign(ctx context.Context, courierID, pharmacyID int64, note string) (*entities.PharmacyAssignmentResult, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if pharmacyID <= 0 {
		return nil, ErrInvalidPharmacyID
	}
	if utf8.RuneCountInString(note) > maxNoteLength {
		return nil, ErrNoteTooLong
	}

	var result *entities.PharmacyAssignmentResult
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = m.assign(ctx, courierID, pharmacyID, note)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Release закрывает назначение; для уже закрытого ничего не делает.
func (m *Manager) Release(ctx context.Context, assignmentID int64) (*entities.PharmacyAssignment, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}

	var released *entities.PharmacyAssignment
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		released, err = m.release(ctx, assignmentID, true)
		return err
	})
	if err != nil {
		return nil, err
	}
	return released, nil
}

// Reassign переводит курьера в другую аптеку одной транзакцией. Заметка
// переносится со старого назначения.
func (m *Manager) Reassign(ctx context.Context, assignmentID, pharmacyID int64) (*entities.PharmacyAssignmentResult, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}
	if pharmacyID <= 0 {
		return nil, ErrInvalidPharmacyID
	}

	var result *entities.PharmacyAssignmentResult
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := m.repository.GetByID(ctx, assignmentID)
		if err != nil {
			return fmt.Errorf("get assignment: %w", err)
		}

		// статус курьера не трогаем: через мгновение он снова будет ASSIGNED
		released, err := m.release(ctx, assignmentID, false)
		if err != nil {
			return err
		}

		result, err = m.assign(ctx, current.CourierID, pharmacyID, current.Note)
		if err != nil {
			return err
		}
		if current.Active {
			result.Displaced = append([]entities.PharmacyAssignment{*released}, result.Displaced...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ReleaseActiveForCourier закрывает все активные назначения курьера на аптеки.
// Вызывается внутри чужой транзакции, когда курьер остался без машины.
func (m *Manager) ReleaseActiveForCourier(ctx context.Context, courierID int64) error {
	return m.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := m.couriers.GetByIDForUpdate(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		active, err := m.repository.ListActiveByCourierForUpdate(ctx, courierID)
		if err != nil {
			return fmt.Errorf("list courier assignments: %w", err)
		}
		if len(active) == 0 {
			return nil
		}

		now := m.now()
		for _, assignment := range active {
			if _, err := m.repository.Deactivate(ctx, assignment.ID, now); err != nil {
				return fmt.Errorf("deactivate assignment: %w", err)
			}
		}

		return m.makeAvailable(ctx, courier)
	})
}

func (m *Manager) GetAssignment(ctx context.Context, assignmentID int64) (*entities.PharmacyAssignment, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}

	assignment, err := m.repository.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return assignment, nil
}

func (m *Manager) assign(ctx context.Context, courierID, pharmacyID int64, note string) (*entities.PharmacyAssignmentResult, error) {
	courier, err := m.couriers.GetByIDForUpdate(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	if courier.VehiclePossession != entities.HasVehicle {
		return nil, fmt.Errorf("%w: courier %d", ErrCourierHasNoVehicle, courier.ID)
	}
	if courier.Status != entities.CourierAvailable && courier.Status != entities.CourierAssigned {
		return nil, fmt.Errorf("%w: courier %d is %s", ErrCourierNotAvailable, courier.ID, courier.Status)
	}

	pharmacy, err := m.pharmacies.GetByIDForShare(ctx, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("get pharmacy: %w", err)
	}
	if !pharmacy.Active {
		return nil, fmt.Errorf("%w: pharmacy %d", ErrPharmacyInactive, pharmacy.ID)
	}

	active, err := m.repository.ListActiveByCourierForUpdate(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("list courier assignments: %w", err)
	}

	if len(active) == 1 && active[0].PharmacyID == pharmacyID && courier.Status == entities.CourierAssigned {
		return &entities.PharmacyAssignmentResult{
			Assignment: active[0],
			Courier:    *courier,
		}, nil
	}

	now := m.now()
	displaced := make([]entities.PharmacyAssignment, 0, len(active))
	for _, previous := range active {
		released, err := m.repository.Deactivate(ctx, previous.ID, now)
		if err != nil {
			return nil, fmt.Errorf("deactivate assignment: %w", err)
		}
		displaced = append(displaced, *released)
	}

	assignment, err := m.repository.Create(ctx, courierID, pharmacyID, note, now)
	if err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	if courier.Status != entities.CourierAssigned {
		assigned := entities.CourierAssigned
		courier, err = m.couriers.Update(ctx, entities.CourierModify{
			ID:     &courierID,
			Status: &assigned,
		})
		if err != nil {
			return nil, fmt.Errorf("update courier status: %w", err)
		}
	}

	return &entities.PharmacyAssignmentResult{
		Assignment: *assignment,
		Courier:    *courier,
		Displaced:  displaced,
	}, nil
}

func (m *Manager) release(ctx context.Context, assignmentID int64, cascade bool) (*entities.PharmacyAssignment, error) {
	current, err := m.repository.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	if !current.Active {
		return current, nil
	}

	courier, err := m.couriers.GetByIDForUpdate(ctx, current.CourierID)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}

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

	if cascade {
		if err := m.makeAvailable(ctx, courier); err != nil {
			return nil, err
		}
	}
	return released, nil
}

// makeAvailable возвращает курьера из ASSIGNED в AVAILABLE, если у него не
// осталось активных назначений на аптеки. Прочие статусы не трогаются.
func (m *Manager) makeAvailable(ctx context.Context, courier *entities.Courier) error {
	if courier.Status != entities.CourierAssigned {
		return nil
	}

	remaining, err := m.repository.CountActiveByCourier(ctx, courier.ID)
	if err != nil {
		return fmt.Errorf("count courier assignments: %w", err)
	}
	if remaining > 0 {
		return nil
	}

	available := entities.CourierAvailable
	if _, err := m.couriers.Update(ctx, entities.CourierModify{
		ID:     &courier.ID,
		Status: &available,
	}); err != nil {
		return fmt.Errorf("update courier status: %w", err)
	}
	return nil
}
