package repository

import (
	"context"

	"github.com/techstore/inventory-api/internal/domain/entity"
)

// ProviderRepository define el puerto de persistencia para Provider.
type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.Provider) error
	GetByID(ctx context.Context, id int64) (*entity.Provider, error)
	ListAll(ctx context.Context) ([]*entity.Provider, error)
}
