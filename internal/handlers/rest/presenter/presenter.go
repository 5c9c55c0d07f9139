// Package presenter переводит доменные сущности в DTO ответа.
package presenter

import (
	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
)

func Courier(c entities.Courier) dto.Courier {
	return dto.Courier{
		Id:                c.ID,
		Name:              c.Name,
		Phone:             c.Phone,
		LicenseNumber:     c.LicenseNumber,
		LicenseValid:      c.LicenseValid,
		LicenseExpiresAt:  c.LicenseExpiresAt,
		Status:            c.Status.String(),
		VehiclePossession: c.VehiclePossession.String(),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func Couriers(couriers []entities.Courier) []dto.Courier {
	result := make([]dto.Courier, len(couriers))
	for i, c := range couriers {
		result[i] = Courier(c)
	}
	return result
}

func Vehicle(v entities.Vehicle) dto.Vehicle {
	return dto.Vehicle{
		Id:             v.ID,
		Plate:          v.Plate,
		Brand:          v.Brand,
		Model:          v.Model,
		Status:         v.Status.String(),
		Ownership:      v.Ownership.String(),
		OwnerCourierId: v.OwnerCourierID,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func Vehicles(vehicles []entities.Vehicle) []dto.Vehicle {
	result := make([]dto.Vehicle, len(vehicles))
	for i, v := range vehicles {
		result[i] = Vehicle(v)
	}
	return result
}

func Pharmacy(p entities.Pharmacy) dto.Pharmacy {
	days := make([]string, len(p.OperatingDays))
	for i, day := range p.OperatingDays {
		days[i] = string(day)
	}

	return dto.Pharmacy{
		Id:            p.ID,
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
	}
}

func Pharmacies(pharmacies []entities.Pharmacy) []dto.Pharmacy {
	result := make([]dto.Pharmacy, len(pharmacies))
	for i, p := range pharmacies {
		result[i] = Pharmacy(p)
	}
	return result
}

func VehicleAssignment(a entities.VehicleAssignment) dto.VehicleAssignment {
	return dto.VehicleAssignment{
		Id:         a.ID,
		CourierId:  a.CourierID,
		VehicleId:  a.VehicleID,
		AssignedAt: a.AssignedAt,
		ReleasedAt: a.ReleasedAt,
		Active:     a.Active,
	}
}

func VehicleAssignmentResult(r entities.VehicleAssignmentResult) dto.VehicleAssignmentResult {
	displaced := make([]dto.VehicleAssignment, len(r.Displaced))
	for i, a := range r.Displaced {
		displaced[i] = VehicleAssignment(a)
	}

	return dto.VehicleAssignmentResult{
		Assignment: VehicleAssignment(r.Assignment),
		Courier:    Courier(r.Courier),
		Vehicle:    Vehicle(r.Vehicle),
		Displaced:  displaced,
	}
}

func PharmacyAssignment(a entities.PharmacyAssignment) dto.PharmacyAssignment {
	return dto.PharmacyAssignment{
		Id:         a.ID,
		CourierId:  a.CourierID,
		PharmacyId: a.PharmacyID,
		AssignedAt: a.AssignedAt,
		ReleasedAt: a.ReleasedAt,
		Active:     a.Active,
		Note:       a.Note,
	}
}

func PharmacyAssignmentResult(r entities.PharmacyAssignmentResult) dto.PharmacyAssignmentResult {
	displaced := make([]dto.PharmacyAssignment, len(r.Displaced))
	for i, a := range r.Displaced {
		displaced[i] = PharmacyAssignment(a)
	}

	return dto.PharmacyAssignmentResult{
		Assignment: PharmacyAssignment(r.Assignment),
		Courier:    Courier(r.Courier),
		Displaced:  displaced,
	}
}

// Dispatch дополняет запись вычисляемыми полями: нужен ли рецепт и время доставки.
func Dispatch(d entities.Dispatch) dto.Dispatch {
	return dto.Dispatch{
		Id:                     d.ID,
		ExternalOrderId:        d.ExternalOrderID,
		PharmacyId:             d.PharmacyID,
		CourierId:              d.CourierID,
		Movement:               d.Movement.String(),
		State:                  d.State.String(),
		CreatedAt:              d.CreatedAt,
		PickedUpAt:             d.PickedUpAt,
		DispatchedAt:           d.DispatchedAt,
		EstimatedArrivalAt:     d.EstimatedArrivalAt,
		DeliveredAt:            d.DeliveredAt,
		IncidentReason:         d.IncidentReason,
		IncidentAt:             d.IncidentAt,
		ResendReason:           d.ResendReason,
		PrescriptionNumber:     d.PrescriptionNumber,
		PrescriptionIssuedAt:   d.PrescriptionIssuedAt,
		PrescriberName:         d.PrescriberName,
		RequiresPrescription:   d.RequiresPrescription(),
		ElapsedDeliveryMinutes: d.ElapsedDeliveryMinutes(),
	}
}

func Dispatches(dispatches []entities.Dispatch) []dto.Dispatch {
	result := make([]dto.Dispatch, len(dispatches))
	for i, d := range dispatches {
		result[i] = Dispatch(d)
	}
	return result
}

func DispatchStats(s entities.DispatchStats) dto.DispatchStats {
	byState := make(map[string]int64, len(s.ByState))
	for state, count := range s.ByState {
		byState[state.String()] = count
	}

	return dto.DispatchStats{
		From:                   s.From,
		To:                     s.To,
		Total:                  s.Total,
		ByState:                byState,
		AverageDeliveryMinutes: s.AverageDeliveryMinutes,
	}
}
