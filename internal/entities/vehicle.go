package entities

import "time"

type Vehicle struct {
	ID             int64
	Plate          string
	Brand          string
	Model          string
	Status         VehicleStatusType
	Ownership      VehicleOwnershipType
	OwnerCourierID *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type VehicleStatusType string

const (
	VehicleOperational   VehicleStatusType = "OPERATIONAL"
	VehicleOccupied      VehicleStatusType = "OCCUPIED"
	VehicleInShop        VehicleStatusType = "IN_SHOP"
	VehicleOutOfService  VehicleStatusType = "OUT_OF_SERVICE"
	VehicleInMaintenance VehicleStatusType = "IN_MAINTENANCE"
)

func (t VehicleStatusType) String() string {
	return string(t)
}

func (t VehicleStatusType) IsValid() bool {
	switch t {
	case VehicleOperational, VehicleOccupied, VehicleInShop,
		VehicleOutOfService, VehicleInMaintenance:
		return true
	default:
		return false
	}
}

type VehicleOwnershipType string

const (
	OwnershipCompany VehicleOwnershipType = "COMPANY"
	OwnershipCourier VehicleOwnershipType = "COURIER"
)

func (t VehicleOwnershipType) String() string {
	return string(t)
}

func (t VehicleOwnershipType) IsValid() bool {
	return t == OwnershipCompany || t == OwnershipCourier
}

// OwnedByCourier возвращает id курьера-владельца, если машина личная.
func (v *Vehicle) OwnedByCourier() (int64, bool) {
	if v.Ownership != OwnershipCourier || v.OwnerCourierID == nil {
		return 0, false
	}
	return *v.OwnerCourierID, true
}

type VehicleModify struct {
	ID             *int64
	Plate          *string
	Brand          *string
	Model          *string
	Status         *VehicleStatusType
	Ownership      *VehicleOwnershipType
	OwnerCourierID *int64
	// ClearOwner сбрасывает owner_courier_id в NULL.
	ClearOwner bool
}

func (v Vehicle) Apply(modify VehicleModify) Vehicle {
	if modify.Plate != nil {
		v.Plate = *modify.Plate
	}
	if modify.Brand != nil {
		v.Brand = *modify.Brand
	}
	if modify.Model != nil {
		v.Model = *modify.Model
	}
	if modify.Status != nil {
		v.Status = *modify.Status
	}
	if modify.Ownership != nil {
		v.Ownership = *modify.Ownership
	}
	if modify.ClearOwner {
		v.OwnerCourierID = nil
	} else if modify.OwnerCourierID != nil {
		ownerID := *modify.OwnerCourierID
		v.OwnerCourierID = &ownerID
	}
	return v
}
