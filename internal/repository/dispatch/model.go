package dispatch

import "time"

type DispatchDB struct {
	ID                   int64
	ExternalOrderID      string
	PharmacyID           int64
	CourierID            int64
	Movement             string
	State                string
	CreatedAt            time.Time
	PickedUpAt           *time.Time
	DispatchedAt         *time.Time
	EstimatedArrivalAt   *time.Time
	DeliveredAt          *time.Time
	IncidentReason       *string
	IncidentAt           *time.Time
	ResendReason         *string
	PrescriptionNumber   *string
	PrescriptionIssuedAt *time.Time
	PrescriberName       *string
}

type DispatchModifyDB struct {
	ID                   *int64
	ExternalOrderID      *string
	PharmacyID           *int64
	CourierID            *int64
	PickedUpAt           *time.Time
	EstimatedArrivalAt   *time.Time
	ResendReason         *string
	PrescriptionNumber   *string
	PrescriptionIssuedAt *time.Time
	PrescriberName       *string
}
