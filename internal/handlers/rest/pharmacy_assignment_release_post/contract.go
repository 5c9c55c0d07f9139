//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pharmacy_assignment_release_post_test
package pharmacy_assignment_release_post

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
	Release(ctx context.Context, assignmentID int64) (*entities.PharmacyAssignment, error)
}
