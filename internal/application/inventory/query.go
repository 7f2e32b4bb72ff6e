package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/pakoelda-code/wom-partes/internal/application/dto"
	"github.com/pakoelda-code/wom-partes/internal/domain"
	"github.com/pakoelda-code/wom-partes/internal/domain/repository"
)

// MovementQuery lecturas del libro de movimientos fuera de transacción:
// consultas point-in-time que no compiten con los movimientos en vuelo.
type MovementQuery struct {
	items     repository.ItemRepository
	movements repository.MovementRepository
	limit     int
}

// NewMovementQuery construye la consulta. limit acota las filas del historial.
func NewMovementQuery(items repository.ItemRepository, movements repository.MovementRepository, limit int) *MovementQuery {
	if limit <= 0 {
		limit = 100
	}
	return &MovementQuery{items: items, movements: movements, limit: limit}
}

// History devuelve los movimientos de un artículo, más reciente primero.
// Incluye los de artículos dados de baja: el libro histórico sigue siendo
// válido tras la baja.
func (q *MovementQuery) History(ctx context.Context, itemID string) (*dto.MovementHistoryResponse, error) {
	if uuid.Validate(itemID) != nil {
		return nil, domain.ErrNotFound
	}
	item, err := q.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	movs, err := q.movements.ListByItem(ctx, itemID, q.limit)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.MovementEntryDTO, 0, len(movs))
	for _, m := range movs {
		entries = append(entries, dto.MovementEntryDTO{
			ID:        m.ID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			ActorCode: m.ActorCode,
			ActorName: m.ActorName,
			CreatedAt: m.CreatedAt,
		})
	}
	return &dto.MovementHistoryResponse{
		ItemID:   itemID,
		ItemCode: item.Code,
		Entries:  entries,
		Total:    len(entries),
	}, nil
}
