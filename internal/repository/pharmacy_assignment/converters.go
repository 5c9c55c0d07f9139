package pharmacy_assignment

import (
	"dispatch/internal/entities"
)

func ToDomain(a *PharmacyAssignmentDB) *entities.PharmacyAssignment {
	if a == nil {
		return nil
	}

	return &entities.PharmacyAssignment{
		ID:         a.ID,
		CourierID:  a.CourierID,
		PharmacyID: a.PharmacyID,
		AssignedAt: a.AssignedAt,
		ReleasedAt: a.ReleasedAt,
		Active:     a.Active,
		Note:       a.Note,
	}
}

func ToDomainList(assignmentsDB []PharmacyAssignmentDB) []entities.PharmacyAssignment {
	if len(assignmentsDB) == 0 {
		return []entities.PharmacyAssignment{}
	}

	result := make([]entities.PharmacyAssignment, len(assignmentsDB))
	for i, assignmentDB := range assignmentsDB {
		result[i] = *ToDomain(&assignmentDB)
	}
	return result
}
