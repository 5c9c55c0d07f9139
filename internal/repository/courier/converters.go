package courier

import (
	"dispatch/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:                c.ID,
		Name:              c.Name,
		Phone:             c.Phone,
		LicenseNumber:     c.LicenseNumber,
		LicenseValid:      c.LicenseValid,
		LicenseExpiresAt:  c.LicenseExpiresAt,
		Status:            entities.CourierStatusType(c.Status),
		VehiclePossession: entities.VehiclePossessionType(c.VehiclePossession),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}
	courierDB := &CourierModifyDB{
		ID:               courierModify.ID,
		Name:             courierModify.Name,
		Phone:            courierModify.Phone,
		LicenseNumber:    courierModify.LicenseNumber,
		LicenseValid:     courierModify.LicenseValid,
		LicenseExpiresAt: courierModify.LicenseExpiresAt,
	}

	if courierModify.Status != nil {
		status := courierModify.Status.String()
		courierDB.Status = &status
	}
	if courierModify.VehiclePossession != nil {
		possession := courierModify.VehiclePossession.String()
		courierDB.VehiclePossession = &possession
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
