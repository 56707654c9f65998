package repository

import (
	"context"

	"github.com/techstore/inventory-api/internal/domain/entity"
)

// ProductSales total vendido por producto (resultado de TopByQuantity, ya ordenado).
type ProductSales struct {
	ProductName string
	Total       int
}

// MovementRepository define el puerto de persistencia del libro de movimientos (append-only).
type MovementRepository interface {
	// Create escribe un asiento inmutable; la fecha la asigna la DB al insertar.
	Create(ctx context.Context, movement *entity.StockMovement) error
	// Recent devuelve los últimos movimientos, del más reciente al más antiguo.
	Recent(ctx context.Context, limit int) ([]*entity.StockMovement, error)
	// ListByProduct devuelve el historial de un producto, del más reciente al más antiguo.
	ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.StockMovement, error)
	// TopByQuantity agrupa por nombre de producto los movimientos del tipo dado,
	// suma cantidades y devuelve los primeros limit grupos en orden descendente.
	// Empates se resuelven por primera aparición en el libro. Se recalcula en cada llamada.
	TopByQuantity(ctx context.Context, movementType string, limit int) ([]ProductSales, error)
}
