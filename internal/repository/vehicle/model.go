package vehicle

import "time"

type VehicleDB struct {
	ID             int64
	Plate          string
	Brand          string
	Model          string
	Status         string
	Ownership      string
	OwnerCourierID *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type VehicleModifyDB struct {
	ID             *int64
	Plate          *string
	Brand          *string
	Model          *string
	Status         *string
	Ownership      *string
	OwnerCourierID *int64
	ClearOwner     bool
}
