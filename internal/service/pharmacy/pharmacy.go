package pharmacy

import (
	"context"
	"fmt"
	"strings"

	"dispatch/internal/entities"
)

const (
	defaultOpensAt  = "09:00"
	defaultClosesAt = "21:00"
)

var defaultOperatingDays = []entities.Weekday{
	entities.Monday, entities.Tuesday, entities.Wednesday, entities.Thursday, entities.Friday,
}

type Pharmacy struct {
	repository Repository
}

func New(repository Repository) *Pharmacy {
	return &Pharmacy{
		repository: repository,
	}
}

func (s *Pharmacy) CreatePharmacy(ctx context.Context, pharmacyModify entities.PharmacyModify) (int64, error) {
	if pharmacyModify.Name == nil {
		return 0, ErrMissingRequiredFields
	}
	if pharmacyModify.OpensAt == nil {
		opensAt := defaultOpensAt
		pharmacyModify.OpensAt = &opensAt
	}
	if pharmacyModify.ClosesAt == nil {
		closesAt := defaultClosesAt
		pharmacyModify.ClosesAt = &closesAt
	}
	if pharmacyModify.OperatingDays == nil {
		pharmacyModify.OperatingDays = defaultOperatingDays
	}
	if pharmacyModify.Active == nil {
		active := true
		pharmacyModify.Active = &active
	}

	if err := validateModify(pharmacyModify); err != nil {
		return 0, err
	}

	id, err := s.repository.Create(ctx, pharmacyModify)
	if err != nil {
		return 0, fmt.Errorf("create pharmacy: %w", err)
	}
	return id, nil
}

func (s *Pharmacy) UpdatePharmacy(ctx context.Context, pharmacyModify entities.PharmacyModify) (*entities.Pharmacy, error) {
	if pharmacyModify.ID == nil || *pharmacyModify.ID <= 0 {
		return nil, ErrInvalidPharmacyID
	}
	if err := validateModify(pharmacyModify); err != nil {
		return nil, err
	}

	updated, err := s.repository.Update(ctx, pharmacyModify)
	if err != nil {
		return nil, fmt.Errorf("update pharmacy: %w", err)
	}
	return updated, nil
}

func (s *Pharmacy) GetPharmacy(ctx context.Context, id int64) (*entities.Pharmacy, error) {
	if id <= 0 {
		return nil, ErrInvalidPharmacyID
	}

	pharmacy, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get pharmacy: %w", err)
	}
	return pharmacy, nil
}

func (s *Pharmacy) GetPharmacies(ctx context.Context) ([]entities.Pharmacy, error) {
	pharmacies, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pharmacies: %w", err)
	}
	return pharmacies, nil
}

func validateModify(pharmacyModify entities.PharmacyModify) error {
	if pharmacyModify.Name != nil && strings.TrimSpace(*pharmacyModify.Name) == "" {
		return ErrInvalidName
	}
	if pharmacyModify.OpensAt != nil {
		if _, err := entities.ParseClock(*pharmacyModify.OpensAt); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidHours, err)
		}
	}
	if pharmacyModify.ClosesAt != nil {
		if _, err := entities.ParseClock(*pharmacyModify.ClosesAt); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidHours, err)
		}
	}
	if pharmacyModify.OpensAt != nil && pharmacyModify.ClosesAt != nil &&
		*pharmacyModify.OpensAt == *pharmacyModify.ClosesAt {
		return fmt.Errorf("%w: opening and closing time are equal", ErrInvalidHours)
	}
	for _, day := range pharmacyModify.OperatingDays {
		if !day.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidDays, day)
		}
	}
	return nil
}
