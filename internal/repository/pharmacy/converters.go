package pharmacy

import (
	"fmt"

	"dispatch/internal/entities"
)

func ToDomain(p *PharmacyDB) (*entities.Pharmacy, error) {
	if p == nil {
		return nil, nil
	}

	days, err := entities.ParseOperatingDays(p.OperatingDays)
	if err != nil {
		return nil, fmt.Errorf("pharmacy %d: %w", p.ID, err)
	}

	return &entities.Pharmacy{
		ID:            p.ID,
		Name:          p.Name,
		Address:       p.Address,
		Region:        p.Region,
		Comune:        p.Comune,
		OpensAt:       p.OpensAt,
		ClosesAt:      p.ClosesAt,
		OperatingDays: days,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}, nil
}

func FromDomainModify(pharmacyModify *entities.PharmacyModify) *PharmacyModifyDB {
	if pharmacyModify == nil {
		return nil
	}
	pharmacyDB := &PharmacyModifyDB{
		ID:       pharmacyModify.ID,
		Name:     pharmacyModify.Name,
		Address:  pharmacyModify.Address,
		Region:   pharmacyModify.Region,
		Comune:   pharmacyModify.Comune,
		OpensAt:  pharmacyModify.OpensAt,
		ClosesAt: pharmacyModify.ClosesAt,
		Active:   pharmacyModify.Active,
	}

	// nil - не менять, пустой слайс - аптека не работает ни в один день
	if pharmacyModify.OperatingDays != nil {
		days := entities.FormatOperatingDays(pharmacyModify.OperatingDays)
		pharmacyDB.OperatingDays = &days
	}

	return pharmacyDB
}

func ToDomainList(pharmaciesDB []PharmacyDB) ([]entities.Pharmacy, error) {
	result := make([]entities.Pharmacy, 0, len(pharmaciesDB))
	for _, pharmacyDB := range pharmaciesDB {
		pharmacy, err := ToDomain(&pharmacyDB)
		if err != nil {
			return nil, err
		}
		result = append(result, *pharmacy)
	}
	return result, nil
}
