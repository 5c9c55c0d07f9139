//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=license_expiry_test
package license_expiry

import (
	"context"

	"dispatch/pkg/logger"
)

type Service interface {
	SuspendExpiredLicenses(ctx context.Context) (int64, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
