package entities

import (
	"time"
)

type Courier struct {
	ID                int64
	Name              string
	Phone             string
	LicenseNumber     string
	LicenseValid      bool
	LicenseExpiresAt  *time.Time
	Status            CourierStatusType
	VehiclePossession VehiclePossessionType
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type CourierStatusType string

const (
	CourierAvailable        CourierStatusType = "AVAILABLE"
	CourierAssigned         CourierStatusType = "ASSIGNED"
	CourierOnDispatch       CourierStatusType = "ON_DISPATCH"
	CourierOnLeave          CourierStatusType = "ON_LEAVE"
	CourierLicenseSuspended CourierStatusType = "LICENSE_SUSPENDED"
	CourierInactive         CourierStatusType = "INACTIVE"
)

const DefaultStatusType = CourierAvailable

func (t CourierStatusType) String() string {
	return string(t)
}

func (t CourierStatusType) IsValid() bool {
	switch t {
	case CourierAvailable, CourierAssigned, CourierOnDispatch,
		CourierOnLeave, CourierLicenseSuspended, CourierInactive:
		return true
	default:
		return false
	}
}

// IsManual сообщает, можно ли выставить статус руками. ASSIGNED выставляет
// менеджер назначений аптек, LICENSE_SUSPENDED проверка лицензии.
func (t CourierStatusType) IsManual() bool {
	switch t {
	case CourierAvailable, CourierOnDispatch, CourierOnLeave, CourierInactive:
		return true
	default:
		return false
	}
}

type VehiclePossessionType string

const (
	HasVehicle VehiclePossessionType = "HAS_VEHICLE"
	NoVehicle  VehiclePossessionType = "NO_VEHICLE"
)

func (t VehiclePossessionType) String() string {
	return string(t)
}

// LicenseUsable: лицензия отмечена валидной и не истекла к моменту now.
func (c *Courier) LicenseUsable(now time.Time) bool {
	if !c.LicenseValid {
		return false
	}
	if c.LicenseExpiresAt != nil && !now.Before(*c.LicenseExpiresAt) {
		return false
	}
	return true
}

// RecomputeStatus приводит статус в соответствие с лицензией.
// Возвращает true, если статус изменился.
func (c *Courier) RecomputeStatus(now time.Time) bool {
	usable := c.LicenseUsable(now)

	switch {
	case !usable && c.Status != CourierLicenseSuspended:
		c.Status = CourierLicenseSuspended
		return true
	case usable && c.Status == CourierLicenseSuspended:
		c.Status = CourierAvailable
		return true
	default:
		return false
	}
}

type CourierModify struct {
	ID                *int64
	Name              *string
	Phone             *string
	LicenseNumber     *string
	LicenseValid      *bool
	LicenseExpiresAt  *time.Time
	Status            *CourierStatusType
	VehiclePossession *VehiclePossessionType
}

// Apply накладывает заданные поля modify на копию курьера.
func (c Courier) Apply(modify CourierModify) Courier {
	if modify.Name != nil {
		c.Name = *modify.Name
	}
	if modify.Phone != nil {
		c.Phone = *modify.Phone
	}
	if modify.LicenseNumber != nil {
		c.LicenseNumber = *modify.LicenseNumber
	}
	if modify.LicenseValid != nil {
		c.LicenseValid = *modify.LicenseValid
	}
	if modify.LicenseExpiresAt != nil {
		expiresAt := *modify.LicenseExpiresAt
		c.LicenseExpiresAt = &expiresAt
	}
	if modify.Status != nil {
		c.Status = *modify.Status
	}
	if modify.VehiclePossession != nil {
		c.VehiclePossession = *modify.VehiclePossession
	}
	return c
}
