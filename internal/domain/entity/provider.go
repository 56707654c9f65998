package entity

import "time"

// Provider representa un proveedor de productos.
type Provider struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Active    bool
	CreatedAt time.Time
}
