package dispatch

import (
	"dispatch/internal/entities"
)

func ToDomain(d *DispatchDB) *entities.Dispatch {
	if d == nil {
		return nil
	}

	return &entities.Dispatch{
		ID:                   d.ID,
		ExternalOrderID:      d.ExternalOrderID,
		PharmacyID:           d.PharmacyID,
		CourierID:            d.CourierID,
		Movement:             entities.MovementType(d.Movement),
		State:                entities.DispatchState(d.State),
		CreatedAt:            d.CreatedAt,
		PickedUpAt:           d.PickedUpAt,
		DispatchedAt:         d.DispatchedAt,
		EstimatedArrivalAt:   d.EstimatedArrivalAt,
		DeliveredAt:          d.DeliveredAt,
		IncidentReason:       d.IncidentReason,
		IncidentAt:           d.IncidentAt,
		ResendReason:         d.ResendReason,
		PrescriptionNumber:   d.PrescriptionNumber,
		PrescriptionIssuedAt: d.PrescriptionIssuedAt,
		PrescriberName:       d.PrescriberName,
	}
}

func FromDomain(d *entities.Dispatch) *DispatchDB {
	if d == nil {
		return nil
	}

	return &DispatchDB{
		ID:                   d.ID,
		ExternalOrderID:      d.ExternalOrderID,
		PharmacyID:           d.PharmacyID,
		CourierID:            d.CourierID,
		Movement:             d.Movement.String(),
		State:                d.State.String(),
		CreatedAt:            d.CreatedAt,
		PickedUpAt:           d.PickedUpAt,
		DispatchedAt:         d.DispatchedAt,
		EstimatedArrivalAt:   d.EstimatedArrivalAt,
		DeliveredAt:          d.DeliveredAt,
		IncidentReason:       d.IncidentReason,
		IncidentAt:           d.IncidentAt,
		ResendReason:         d.ResendReason,
		PrescriptionNumber:   d.PrescriptionNumber,
		PrescriptionIssuedAt: d.PrescriptionIssuedAt,
		PrescriberName:       d.PrescriberName,
	}
}

// FromDomainModify: вид движения после создания не меняется, поэтому в модель правки не попадает.
func FromDomainModify(d *entities.DispatchModify) *DispatchModifyDB {
	if d == nil {
		return nil
	}

	return &DispatchModifyDB{
		ID:                   d.ID,
		ExternalOrderID:      d.ExternalOrderID,
		PharmacyID:           d.PharmacyID,
		CourierID:            d.CourierID,
		PickedUpAt:           d.PickedUpAt,
		EstimatedArrivalAt:   d.EstimatedArrivalAt,
		ResendReason:         d.ResendReason,
		PrescriptionNumber:   d.PrescriptionNumber,
		PrescriptionIssuedAt: d.PrescriptionIssuedAt,
		PrescriberName:       d.PrescriberName,
	}
}

func ToDomainList(dispatchesDB []DispatchDB) []entities.Dispatch {
	if len(dispatchesDB) == 0 {
		return []entities.Dispatch{}
	}

	result := make([]entities.Dispatch, len(dispatchesDB))
	for i, dispatchDB := range dispatchesDB {
		result[i] = *ToDomain(&dispatchDB)
	}
	return result
}
