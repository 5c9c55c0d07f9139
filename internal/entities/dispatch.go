package entities

import (
	"math"
	"time"
)

type Dispatch struct {
	ID                   int64
	ExternalOrderID      string
	PharmacyID           int64
	CourierID            int64
	Movement             MovementType
	State                DispatchState
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

type MovementType string

const (
	MovementDirect           MovementType = "DIRECT"
	MovementWithPrescription MovementType = "WITH_PRESCRIPTION"
	MovementWithTransfer     MovementType = "WITH_TRANSFER"
	MovementResend           MovementType = "RESEND"
)

func (m MovementType) String() string {
	return string(m)
}

func (m MovementType) IsValid() bool {
	switch m {
	case MovementDirect, MovementWithPrescription, MovementWithTransfer, MovementResend:
		return true
	default:
		return false
	}
}

// InitialState: повторная отправка стартует в RESEND, остальное в PENDING.
func (m MovementType) InitialState() DispatchState {
	if m == MovementResend {
		return DispatchResend
	}
	return DispatchPending
}

// RequiresPrescription вычисляется, а не хранится: нужен и номер, и дата рецепта.
func (d *Dispatch) RequiresPrescription() bool {
	return d.PrescriptionNumber != nil && *d.PrescriptionNumber != "" && d.PrescriptionIssuedAt != nil
}

// ElapsedDeliveryMinutes = floor((entrega - despacho) в минутах), nil пока нет обеих отметок.
func (d *Dispatch) ElapsedDeliveryMinutes() *int64 {
	if d.DispatchedAt == nil || d.DeliveredAt == nil {
		return nil
	}
	minutes := int64(math.Floor(d.DeliveredAt.Sub(*d.DispatchedAt).Minutes()))
	return &minutes
}

// Stamp фиксирует временные отметки при входе в состояние target.
// Отметки отправки и доставки ставятся один раз. Время и причина инцидента
// всегда относятся к последнему инциденту: новый инцидент без причины её сбрасывает.
func (d *Dispatch) Stamp(target DispatchState, now time.Time, incidentReason *string) {
	switch target {
	case DispatchEnRoute:
		if d.DispatchedAt == nil {
			d.DispatchedAt = &now
		}
	case DispatchDelivered:
		if d.DeliveredAt == nil {
			d.DeliveredAt = &now
		}
	case DispatchIncident:
		d.IncidentAt = &now
		d.IncidentReason = nil
		if incidentReason != nil {
			reason := *incidentReason
			d.IncidentReason = &reason
		}
	}
	d.State = target
}

type DispatchModify struct {
	ID                   *int64
	ExternalOrderID      *string
	PharmacyID           *int64
	CourierID            *int64
	Movement             *MovementType
	PickedUpAt           *time.Time
	EstimatedArrivalAt   *time.Time
	ResendReason         *string
	PrescriptionNumber   *string
	PrescriptionIssuedAt *time.Time
	PrescriberName       *string
}

// Apply возвращает копию заказа с применёнными правками; состояние не меняется.
func (d Dispatch) Apply(modify DispatchModify) Dispatch {
	if modify.ExternalOrderID != nil {
		d.ExternalOrderID = *modify.ExternalOrderID
	}
	if modify.PharmacyID != nil {
		d.PharmacyID = *modify.PharmacyID
	}
	if modify.CourierID != nil {
		d.CourierID = *modify.CourierID
	}
	if modify.Movement != nil {
		d.Movement = *modify.Movement
	}
	if modify.PickedUpAt != nil {
		d.PickedUpAt = modify.PickedUpAt
	}
	if modify.EstimatedArrivalAt != nil {
		d.EstimatedArrivalAt = modify.EstimatedArrivalAt
	}
	if modify.ResendReason != nil {
		d.ResendReason = modify.ResendReason
	}
	if modify.PrescriptionNumber != nil {
		d.PrescriptionNumber = modify.PrescriptionNumber
	}
	if modify.PrescriptionIssuedAt != nil {
		d.PrescriptionIssuedAt = modify.PrescriptionIssuedAt
	}
	if modify.PrescriberName != nil {
		d.PrescriberName = modify.PrescriberName
	}
	return d
}

type DispatchTransition struct {
	DispatchID     int64
	Target         DispatchState
	ActorRole      Role
	IncidentReason *string
}

type DispatchFilter struct {
	State       *DispatchState
	Movement    *MovementType
	PharmacyID  *int64
	CourierID   *int64
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       uint64
	Offset      uint64
}

type DispatchStats struct {
	From                   time.Time
	To                     time.Time
	Total                  int64
	ByState                map[DispatchState]int64
	AverageDeliveryMinutes *float64
}
