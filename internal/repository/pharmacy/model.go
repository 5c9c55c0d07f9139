package pharmacy

import "time"

type PharmacyDB struct {
	ID            int64
	Name          string
	Address       string
	Region        string
	Comune        string
	OpensAt       string
	ClosesAt      string
	OperatingDays string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PharmacyModifyDB struct {
	ID            *int64
	Name          *string
	Address       *string
	Region        *string
	Comune        *string
	OpensAt       *string
	ClosesAt      *string
	OperatingDays *string
	Active        *bool
}
