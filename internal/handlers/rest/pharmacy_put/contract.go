//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pharmacy_put_test
package pharmacy_put

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdatePharmacy(ctx context.Context, pharmacyModify entities.PharmacyModify) (*entities.Pharmacy, error)
}
