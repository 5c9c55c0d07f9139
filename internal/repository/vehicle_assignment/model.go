package vehicle_assignment

import "time"

type VehicleAssignmentDB struct {
	ID         int64
	CourierID  int64
	VehicleID  int64
	AssignedAt time.Time
	ReleasedAt *time.Time
	Active     bool
}
