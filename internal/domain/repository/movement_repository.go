package repository

import (
	"context"

	"github.com/pakoelda-code/wom-partes/internal/domain/entity"
)

// MovementRepository define el puerto del libro de movimientos. El libro es
// append-only: solo se insertan apuntes, nunca se actualizan ni se borran.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error

	// ListByItem devuelve los movimientos de un artículo, más reciente primero.
	ListByItem(ctx context.Context, itemID string, limit int) ([]*entity.Movement, error)
}
