package entities

import "time"

type VehicleAssignment struct {
	ID         int64
	CourierID  int64
	VehicleID  int64
	AssignedAt time.Time
	ReleasedAt *time.Time
	Active     bool
}

type PharmacyAssignment struct {
	ID         int64
	CourierID  int64
	PharmacyID int64
	AssignedAt time.Time
	ReleasedAt *time.Time
	Active     bool
	Note       string
}

// VehicleAssignmentResult описывает итог назначения вместе с состоянием сторон.
type VehicleAssignmentResult struct {
	Assignment VehicleAssignment
	Courier    Courier
	Vehicle    Vehicle
	// Displaced содержит назначения, деактивированные этим вызовом.
	Displaced []VehicleAssignment
}

type PharmacyAssignmentResult struct {
	Assignment PharmacyAssignment
	Courier    Courier
	Displaced  []PharmacyAssignment
}
