package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// значения метки kind
const (
	AssignmentVehicle  = "vehicle"
	AssignmentPharmacy = "pharmacy"
)

// значения метки operation
const (
	OperationAssign   = "assign"
	OperationRelease  = "release"
	OperationReassign = "reassign"
)

// значения метки source
const (
	SourceHTTP  = "http"
	SourceKafka = "kafka"
)

var (
	AssignmentOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Name:      "assignment_operations_total",
			Help:      "Completed assignment operations by assignment kind and operation",
		},
		[]string{"kind", "operation"},
	)

	AssignmentsDisplacedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Name:      "assignments_displaced_total",
			Help:      "Active assignments closed because a new one took their place",
		},
		[]string{"kind"},
	)

	DispatchTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Name:      "dispatch_transitions_total",
			Help:      "Applied dispatch state transitions by target state and source",
		},
		[]string{"state", "source"},
	)

	TxRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Name:      "tx_serialization_retries_total",
			Help:      "Transactions restarted after a serialization failure or deadlock",
		},
	)
)
