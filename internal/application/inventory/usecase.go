package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pakoelda-code/wom-partes/internal/domain"
	"github.com/pakoelda-code/wom-partes/internal/domain/entity"
	"github.com/pakoelda-code/wom-partes/internal/domain/repository"
)

// MovementEngine registra movimientos de stock de forma transaccional:
// bloquea la fila del artículo (SELECT FOR UPDATE), relee el stock bajo el
// bloqueo, aplica el delta y añade el apunte al libro, todo como una unidad.
// Operaciones sobre artículos distintos nunca se bloquean entre sí; nunca se
// toman dos bloqueos de artículo a la vez.
type MovementEngine struct {
	txRunner TxRunner
}

// NewMovementEngine construye el motor.
func NewMovementEngine(txRunner TxRunner) *MovementEngine {
	return &MovementEngine{txRunner: txRunner}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ItemID   string
	Type     string // ENTRADA o SALIDA
	Quantity int64  // estrictamente positiva; la dirección la da Type
	Actor    entity.Actor
}

// RecordMovement aplica un movimiento y devuelve el stock resultante.
//
// Dentro de la transacción se relee el stock bajo el bloqueo de fila (nunca
// se confía en un valor leído antes de adquirirlo). Si el resultado sería
// negativo falla con domain.ErrInsufficientStock sin efecto alguno; si el
// artículo no existe o está inactivo, con domain.ErrNotFound. La espera del
// bloqueo está acotada: al expirar se devuelve domain.ErrConcurrentConflict,
// que el llamante puede reintentar.
//
// No es idempotente: dos llamadas idénticas producen dos apuntes y dos
// cambios de stock. La deduplicación por petición es cosa del llamante.
func (e *MovementEngine) RecordMovement(ctx context.Context, in MovementInput) (int64, error) {
	if in.Type != entity.MovementTypeEntrada && in.Type != entity.MovementTypeSalida {
		return 0, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	if in.Actor.Code == "" {
		return 0, domain.ErrInvalidInput
	}
	if uuid.Validate(in.ItemID) != nil {
		return 0, domain.ErrNotFound
	}

	var newStock int64
	err := e.txRunner.Run(ctx, func(
		items repository.ItemRepository,
		movements repository.MovementRepository,
	) error {
		item, err := items.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil || !item.Active {
			return domain.ErrNotFound
		}

		newStock = item.Stock
		if in.Type == entity.MovementTypeEntrada {
			newStock += in.Quantity
		} else {
			newStock -= in.Quantity
		}
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}

		if err := items.UpdateStock(ctx, in.ItemID, newStock); err != nil {
			return err
		}
		return movements.Create(ctx, &entity.Movement{
			ID:        uuid.New().String(),
			ItemID:    in.ItemID,
			Type:      in.Type,
			Quantity:  in.Quantity,
			ActorCode: in.Actor.Code,
			ActorName: in.Actor.Name,
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		return 0, err
	}
	return newStock, nil
}

// AdjustStock traduce un delta con signo al movimiento direccional
// equivalente: delta > 0 es una ENTRADA, delta < 0 una SALIDA. Un delta cero
// falla con domain.ErrInvalidQuantity sin tocar el almacén.
func (e *MovementEngine) AdjustStock(ctx context.Context, itemID string, delta int64, actor entity.Actor) (int64, error) {
	if delta == 0 {
		return 0, domain.ErrInvalidQuantity
	}
	in := MovementInput{ItemID: itemID, Quantity: delta, Type: entity.MovementTypeEntrada, Actor: actor}
	if delta < 0 {
		in.Quantity = -delta
		in.Type = entity.MovementTypeSalida
	}
	return e.RecordMovement(ctx, in)
}
