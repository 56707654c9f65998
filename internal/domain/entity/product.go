package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock solo lo muta el motor de inventario vía ApplyStockDelta; nunca se borra
// físicamente (baja lógica con Active).
type Product struct {
	ID          int64
	SKU         string // código único global
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	CostPrice   decimal.Decimal // precio de costo
	Stock       int             // invariante: stock >= 0 (CHECK en DB)
	CategoryID  int64
	ProviderID  *int64 // opcional
	Active      bool
	CreatedAt   time.Time
}
