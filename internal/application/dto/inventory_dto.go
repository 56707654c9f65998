package dto

import "time"

// SellRequest body para POST /api/inventory/sell.
type SellRequest struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

// RestockRequest body para POST /api/inventory/restock.
type RestockRequest struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

// MovementResponse un asiento del libro de movimientos.
type MovementResponse struct {
	ID          int64     `json:"id"`
	OperationID string    `json:"operation_id"`
	ProductID   int64     `json:"product_id"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes,omitempty"`
}
