//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pharmacy_test
package pharmacy

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, pharmacyModifyEntity entities.PharmacyModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Pharmacy, error)
	GetAll(ctx context.Context) ([]entities.Pharmacy, error)
	Update(ctx context.Context, pharmacyModifyEntity entities.PharmacyModify) (*entities.Pharmacy, error)
}
