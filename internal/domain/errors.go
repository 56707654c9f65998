package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser mayor a 0")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrPersistence        = errors.New("fallo de persistencia")
)

// InsufficientStockError indica que una venta pidió más unidades de las disponibles.
// Lleva el stock actual y la cantidad solicitada para que el caller pueda informarlo.
type InsufficientStockError struct {
	Have int // stock actual
	Want int // cantidad solicitada
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: tienes %d, no puedes vender %d", e.Have, e.Want)
}

// Is permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// PersistenceError envuelve un error inesperado de la capa de almacenamiento.
// El motor nunca lo silencia: el caller debe tratar el resultado de la operación como desconocido.
type PersistenceError struct {
	Op  string // operación que falló ("sell", "restock", ...)
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("fallo de persistencia en %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrPersistence).
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
