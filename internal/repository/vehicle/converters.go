package vehicle

import (
	"dispatch/internal/entities"
)

func ToDomain(v *VehicleDB) *entities.Vehicle {
	if v == nil {
		return nil
	}

	return &entities.Vehicle{
		ID:             v.ID,
		Plate:          v.Plate,
		Brand:          v.Brand,
		Model:          v.Model,
		Status:         entities.VehicleStatusType(v.Status),
		Ownership:      entities.VehicleOwnershipType(v.Ownership),
		OwnerCourierID: v.OwnerCourierID,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromDomainModify(vehicleModify *entities.VehicleModify) *VehicleModifyDB {
	if vehicleModify == nil {
		return nil
	}
	vehicleDB := &VehicleModifyDB{
		ID:             vehicleModify.ID,
		Plate:          vehicleModify.Plate,
		Brand:          vehicleModify.Brand,
		Model:          vehicleModify.Model,
		OwnerCourierID: vehicleModify.OwnerCourierID,
		ClearOwner:     vehicleModify.ClearOwner,
	}

	if vehicleModify.Status != nil {
		status := vehicleModify.Status.String()
		vehicleDB.Status = &status
	}
	if vehicleModify.Ownership != nil {
		ownership := vehicleModify.Ownership.String()
		vehicleDB.Ownership = &ownership
	}

	return vehicleDB
}

func ToDomainList(vehiclesDB []VehicleDB) []entities.Vehicle {
	if len(vehiclesDB) == 0 {
		return []entities.Vehicle{}
	}

	result := make([]entities.Vehicle, len(vehiclesDB))
	for i, vehicleDB := range vehiclesDB {
		result[i] = *ToDomain(&vehicleDB)
	}
	return result
}
