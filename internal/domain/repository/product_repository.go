package repository

import (
	"context"

	"github.com/techstore/inventory-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para el catálogo de productos (DIP).
// GetStock distingue producto inexistente (domain.ErrProductNotFound) de stock cero.
// ApplyStockDelta suma delta (con signo) de forma atómica y nunca deja stock negativo:
// la condición stock + delta >= 0 va en el propio UPDATE.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	GetStock(ctx context.Context, id int64) (int, error)
	GetStockForUpdate(ctx context.Context, id int64) (int, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	ListBelowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
	ApplyStockDelta(ctx context.Context, id int64, delta int) error
	SetActive(ctx context.Context, id int64, active bool) error
}
