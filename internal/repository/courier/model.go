package courier

import "time"

type CourierDB struct {
	ID                int64
	Name              string
	Phone             string
	LicenseNumber     string
	LicenseValid      bool
	LicenseExpiresAt  *time.Time
	Status            string
	VehiclePossession string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type CourierModifyDB struct {
	ID                *int64
	Name              *string
	Phone             *string
	LicenseNumber     *string
	LicenseValid      *bool
	LicenseExpiresAt  *time.Time
	Status            *string
	VehiclePossession *string
}
