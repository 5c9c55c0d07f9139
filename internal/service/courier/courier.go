package courier

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Courier struct {
	repository          Repository
	pharmacyAssignments PharmacyAssignmentCounter
	txManager           TxManager
	now                 func() time.Time
}

func New(repository Repository, pharmacyAssignments PharmacyAssignmentCounter, txManager TxManager) *Courier {
	return &Courier{
		repository:          repository,
		pharmacyAssignments: pharmacyAssignments,
		txManager:           txManager,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (int64, error) {
	if courierModify.Name == nil ||
		courierModify.Phone == nil ||
		courierModify.LicenseNumber == nil {
		return 0, ErrMissingRequiredFields
	}
	if err := validateModify(courierModify); err != nil {
		return 0, err
	}

	status := entities.DefaultStatusType
	if courierModify.Status != nil {
		status = *courierModify.Status
	}
	licenseValid := true
	if courierModify.LicenseValid != nil {
		licenseValid = *courierModify.LicenseValid
	}

	draft := entities.Courier{
		LicenseValid:     licenseValid,
		LicenseExpiresAt: courierModify.LicenseExpiresAt,
		Status:           status,
	}
	draft.RecomputeStatus(s.now())

	noVehicle := entities.NoVehicle
	courierModify.Status = &draft.Status
	courierModify.LicenseValid = &licenseValid
	courierModify.VehiclePossession = &noVehicle

	id, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}

	return id, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil || *courierModify.ID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if courierModify.Name == nil &&
		courierModify.Phone == nil &&
		courierModify.LicenseNumber == nil &&
		courierModify.LicenseValid == nil &&
		courierModify.LicenseExpiresAt == nil &&
		courierModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if err := validateModify(courierModify); err != nil {
		return nil, err
	}

	var updated *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, *courierModify.ID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		next := current.Apply(courierModify)
		if next.RecomputeStatus(s.now()) || courierModify.Status != nil {
			if err := s.keepAssigned(ctx, &next); err != nil {
				return err
			}
			courierModify.Status = &next.Status
		}

		updated, err = s.repository.Update(ctx, courierModify)
		if err != nil {
			return fmt.Errorf("update courier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context, status *entities.CourierStatusType) ([]entities.Courier, error) {
	if status != nil && !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	couriers, err := s.repository.GetAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}

// SuspendExpiredLicenses переводит в LICENSE_SUSPENDED всех, у кого лицензия
// истекла или отмечена невалидной. Возвращает число затронутых курьеров.
func (s *Courier) SuspendExpiredLicenses(ctx context.Context) (int64, error) {
	affected, err := s.repository.SuspendExpiredLicenses(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("suspend expired licenses: %w", err)
	}
	return affected, nil
}

// keepAssigned: курьер с активным назначением в аптеку остаётся ASSIGNED,
// даже если после восстановления лицензии он стал бы AVAILABLE.
func (s *Courier) keepAssigned(ctx context.Context, courier *entities.Courier) error {
	if courier.Status != entities.CourierAvailable {
		return nil
	}

	active, err := s.pharmacyAssignments.CountActiveByCourier(ctx, courier.ID)
	if err != nil {
		return fmt.Errorf("count active pharmacy assignments: %w", err)
	}
	if active > 0 {
		courier.Status = entities.CourierAssigned
	}
	return nil
}

func validateModify(courierModify entities.CourierModify) error {
	if courierModify.Name != nil && !isValidName(*courierModify.Name) {
		return ErrInvalidName
	}
	if courierModify.Phone != nil && !isValidPhone(*courierModify.Phone) {
		return ErrInvalidPhone
	}
	if courierModify.LicenseNumber != nil && !isValidLicense(*courierModify.LicenseNumber) {
		return ErrInvalidLicense
	}
	if courierModify.Status != nil {
		if !courierModify.Status.IsValid() {
			return ErrInvalidStatus
		}
		if !courierModify.Status.IsManual() {
			return ErrStatusNotManual
		}
	}
	if courierModify.VehiclePossession != nil {
		return ErrPossessionNotManual
	}
	return nil
}
