package vehicle_assignment

import (
	"dispatch/internal/entities"
)

func ToDomain(a *VehicleAssignmentDB) *entities.VehicleAssignment {
	if a == nil {
		return nil
	}

	return &entities.VehicleAssignment{
		ID:         a.ID,
		CourierID:  a.CourierID,
		VehicleID:  a.VehicleID,
		AssignedAt: a.AssignedAt,
		ReleasedAt: a.ReleasedAt,
		Active:     a.Active,
	}
}

func ToDomainList(assignmentsDB []VehicleAssignmentDB) []entities.VehicleAssignment {
	if len(assignmentsDB) == 0 {
		return []entities.VehicleAssignment{}
	}

	result := make([]entities.VehicleAssignment, len(assignmentsDB))
	for i, assignmentDB := range assignmentsDB {
		result[i] = *ToDomain(&assignmentDB)
	}
	return result
}
