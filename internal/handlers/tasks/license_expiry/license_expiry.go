package license_expiry

import (
	"context"
	"time"

	"dispatch/internal/pkg/metrics"
	"dispatch/pkg/logger"
)

const taskName = "license expiry"

// LicenseExpiry переводит курьеров с истёкшей лицензией в LICENSE_SUSPENDED.
type LicenseExpiry struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewLicenseExpiry(log taskLogger, service Service, interval time.Duration) *LicenseExpiry {
	return &LicenseExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (l *LicenseExpiry) TTL() time.Duration {
	return l.interval
}

func (l *LicenseExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.interval)
	defer cancel()

	suspended, err := l.service.SuspendExpiredLicenses(ctxWithTimeout)
	if err != nil {
		metrics.TaskRunsTotal.WithLabelValues(taskName, "error").Inc()
		return err
	}
	metrics.TaskRunsTotal.WithLabelValues(taskName, "ok").Inc()

	if suspended > 0 {
		metrics.LicenseSuspensionsTotal.Add(float64(suspended))
		l.log.With(
			logger.NewField("suspended_couriers", suspended),
		).Info("license expiry")
	}
	return nil
}

func (l *LicenseExpiry) Info() string {
	return taskName
}
