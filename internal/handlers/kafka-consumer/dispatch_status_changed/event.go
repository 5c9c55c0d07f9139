package dispatch_status_changed

// statusChangedEvent публикуют мобильные клиенты водителей и интеграции аптек.
type statusChangedEvent struct {
	DispatchID int64   `json:"dispatch_id"`
	State      string  `json:"state"`
	ActorRole  string  `json:"actor_role"`
	Reason     *string `json:"reason,omitempty"`
}
