package repository

import (
	"context"

	"github.com/techstore/inventory-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	ListAll(ctx context.Context) ([]*entity.Category, error)
}
