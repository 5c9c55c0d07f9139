package pharmacy_assignment

import "time"

type PharmacyAssignmentDB struct {
	ID         int64
	CourierID  int64
	PharmacyID int64
	AssignedAt time.Time
	ReleasedAt *time.Time
	Active     bool
	Note       string
}
