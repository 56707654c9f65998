package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/techstore/inventory-api/internal/domain"
	"github.com/techstore/inventory-api/internal/domain/entity"
	"github.com/techstore/inventory-api/internal/domain/repository"
)

// RegisterMovementUseCase es el motor de consistencia del inventario: aplica el
// delta de stock y escribe el asiento en el libro como una sola unidad lógica,
// dentro de una transacción con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
//
// El bloqueo serializa las mutaciones concurrentes sobre un mismo producto
// (la verificación de suficiencia no puede quedar invalidada entre check y apply);
// productos distintos avanzan en paralelo.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el motor con el runner transaccional inyectado.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// Sell procesa la venta de un producto: verifica existencia y suficiencia de stock,
// resta quantity y registra un movimiento SALE con la magnitud vendida.
//
// Fallos tipados: ErrInvalidQuantity, ErrProductNotFound,
// *InsufficientStockError (lleva stock actual y cantidad pedida) y
// *PersistenceError para cualquier error inesperado de almacenamiento.
// Los caminos de fallo no tocan estado persistido.
func (uc *RegisterMovementUseCase) Sell(ctx context.Context, productID int64, quantity int, notes string) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	operationID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		// 1. Stock actual bajo bloqueo de fila
		current, err := productRepo.GetStockForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		// 2. Verificar disponibilidad antes de mutar
		if quantity > current {
			return &domain.InsufficientStockError{Have: current, Want: quantity}
		}
		// 3. Restar stock (delta negativo)
		if err := productRepo.ApplyStockDelta(ctx, productID, -quantity); err != nil {
			// La existencia ya se verificó bajo el lock: un NotFound aquí es una
			// carrera con otro writer y se trata como error duro, no se reintenta.
			return &domain.PersistenceError{Op: "sell", Err: err}
		}
		// 4. Registrar movimiento SALE
		return movementRepo.Create(ctx, &entity.StockMovement{
			OperationID: operationID,
			ProductID:   productID,
			Type:        entity.MovementTypeSale,
			Quantity:    quantity,
			Notes:       notes,
		})
	})
	return classify("sell", err)
}

// Restock añade stock a un producto existente y registra un movimiento RESTOCK.
// Cantidades <= 0 se rechazan con ErrInvalidQuantity sin tocar los almacenes.
func (uc *RegisterMovementUseCase) Restock(ctx context.Context, productID int64, quantity int, notes string) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	operationID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		if _, err := productRepo.GetStockForUpdate(ctx, productID); err != nil {
			return err
		}
		if err := productRepo.ApplyStockDelta(ctx, productID, quantity); err != nil {
			return &domain.PersistenceError{Op: "restock", Err: err}
		}
		return movementRepo.Create(ctx, &entity.StockMovement{
			OperationID: operationID,
			ProductID:   productID,
			Type:        entity.MovementTypeRestock,
			Quantity:    quantity,
			Notes:       notes,
		})
	})
	return classify("restock", err)
}

// classify deja pasar los fallos de dominio tal cual y envuelve cualquier otro
// error (begin/commit, fallo al escribir el asiento) como PersistenceError.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrPersistence):
		return err
	}
	return &domain.PersistenceError{Op: op, Err: err}
}
