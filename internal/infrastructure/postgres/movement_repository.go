package postgres

import (
	"context"
	"fmt"

	"github.com/techstore/inventory-api/internal/domain/entity"
	"github.com/techstore/inventory-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, operation_id, product_id, type, quantity, date, notes`

// MovementRepo implementación del libro de movimientos sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: no hay UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create escribe un asiento inmutable. La fecha la asigna la DB (DEFAULT now());
// la cantidad debe ser la magnitud positiva (CHECK quantity > 0 en el esquema).
func (r *MovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (operation_id, product_id, type, quantity, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, date`
	err := r.q.QueryRow(ctx, query,
		movement.OperationID, movement.ProductID, movement.Type, movement.Quantity, movement.Notes,
	).Scan(&movement.ID, &movement.Date)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// Recent obtiene los últimos movimientos registrados, del más reciente al más antiguo.
func (r *MovementRepo) Recent(ctx context.Context, limit int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements ORDER BY id DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.OperationID, &m.ProductID, &m.Type, &m.Quantity, &m.Date, &m.Notes); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListByProduct obtiene el historial de movimientos de un producto.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE product_id = $1 ORDER BY id DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("movements by product: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.OperationID, &m.ProductID, &m.Type, &m.Quantity, &m.Date, &m.Notes); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// TopByQuantity genera el ranking de productos por cantidad total movida del tipo dado.
// Agrupa por nombre de producto y suma cantidades; el empate se resuelve por la
// primera aparición en el libro (MIN(m.id)), que es estable entre llamadas.
// Se recalcula por completo en cada invocación: no hay vista materializada.
func (r *MovementRepo) TopByQuantity(ctx context.Context, movementType string, limit int) ([]repository.ProductSales, error) {
	query := `
		SELECT p.name, SUM(m.quantity)::BIGINT AS total
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.type = $1
		GROUP BY p.name
		ORDER BY total DESC, MIN(m.id)
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, movementType, limit)
	if err != nil {
		return nil, fmt.Errorf("top by quantity: %w", err)
	}
	defer rows.Close()

	var ranking []repository.ProductSales
	for rows.Next() {
		var row repository.ProductSales
		if err := rows.Scan(&row.ProductName, &row.Total); err != nil {
			return nil, fmt.Errorf("scan ranking: %w", err)
		}
		ranking = append(ranking, row)
	}
	return ranking, rows.Err()
}
