package entities

type DispatchState string

const (
	DispatchPending   DispatchState = "PENDING"
	DispatchEnRoute   DispatchState = "EN_ROUTE"
	DispatchDelivered DispatchState = "DELIVERED"
	DispatchIncident  DispatchState = "INCIDENT"
	DispatchCancelled DispatchState = "CANCELLED"
	DispatchResend    DispatchState = "RESEND"
)

// AllDispatchStates в порядке отображения на дашборде.
var AllDispatchStates = []DispatchState{
	DispatchPending,
	DispatchResend,
	DispatchEnRoute,
	DispatchIncident,
	DispatchDelivered,
	DispatchCancelled,
}

var dispatchTransitions = map[DispatchState][]DispatchState{
	DispatchPending:   {DispatchEnRoute, DispatchCancelled},
	DispatchResend:    {DispatchEnRoute, DispatchCancelled},
	DispatchEnRoute:   {DispatchDelivered, DispatchIncident, DispatchCancelled},
	DispatchIncident:  {DispatchEnRoute, DispatchDelivered},
	DispatchDelivered: {},
	DispatchCancelled: {},
}

func (s DispatchState) String() string {
	return string(s)
}

func (s DispatchState) IsValid() bool {
	_, ok := dispatchTransitions[s]
	return ok
}

func (s DispatchState) IsTerminal() bool {
	next, ok := dispatchTransitions[s]
	return ok && len(next) == 0
}

// Editable: поля заказа можно править только до выезда курьера.
func (s DispatchState) Editable() bool {
	return s == DispatchPending || s == DispatchResend
}

func (s DispatchState) CanTransitionTo(target DispatchState) bool {
	for _, next := range dispatchTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s DispatchState) AllowedTransitions() []DispatchState {
	next := dispatchTransitions[s]
	out := make([]DispatchState, len(next))
	copy(out, next)
	return out
}
