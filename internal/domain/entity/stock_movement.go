package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeSale    = "SALE"    // salida por venta
	MovementTypeRestock = "RESTOCK" // entrada por reabastecimiento
)

// StockMovement representa un asiento del libro de movimientos (append-only).
// Quantity es siempre la magnitud sin signo; la dirección la da Type.
// Una vez escrito es inmutable; Date la asigna el almacén al momento de escribir.
type StockMovement struct {
	ID          int64
	OperationID string // uuid por operación del motor, para reconciliar reintentos
	ProductID   int64
	Type        string // SALE | RESTOCK
	Quantity    int    // > 0
	Date        time.Time
	Notes       string
}
