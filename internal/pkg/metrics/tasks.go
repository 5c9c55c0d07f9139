package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LicenseSuspensionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Name:      "license_suspensions_total",
			Help:      "Couriers moved to LICENSE_SUSPENDED by the background license check",
		},
	)

	TaskRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Name:      "background_task_runs_total",
			Help:      "Background task runs by task and result",
		},
		[]string{"task", "result"},
	)
)
