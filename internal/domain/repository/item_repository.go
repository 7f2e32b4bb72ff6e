package repository

import (
	"context"

	"github.com/pakoelda-code/wom-partes/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para artículos del almacén.
type ItemRepository interface {
	// Create persiste un artículo nuevo con su código ya generado. Devuelve
	// domain.ErrCodeConflict si el código choca con uno existente (carrera
	// entre dos creaciones que calcularon la misma secuencia).
	Create(ctx context.Context, item *entity.Item) error

	// GetByID devuelve el artículo o nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Item, error)

	// GetForUpdate lee el artículo bloqueando su fila (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción. Devuelve nil, nil si no
	// existe y domain.ErrConcurrentConflict si la espera del bloqueo expira.
	GetForUpdate(ctx context.Context, id string) (*entity.Item, error)

	// UpdateStock escribe el nuevo stock del artículo.
	UpdateStock(ctx context.Context, id string, stock int64) error

	// UpdateLocation reasigna la ubicación del artículo activo. Devuelve
	// domain.ErrNotFound si el artículo no existe o está inactivo.
	UpdateLocation(ctx context.Context, id, locationID string) error

	// Deactivate marca el artículo como inactivo. Devuelve domain.ErrNotFound
	// si no existe o ya estaba inactivo.
	Deactivate(ctx context.Context, id string) error

	// MaxSequence devuelve la mayor secuencia usada entre los códigos con el
	// prefijo dado, incluyendo artículos inactivos (los códigos no se reutilizan).
	// Devuelve 0 si no hay ninguno.
	MaxSequence(ctx context.Context, prefix string) (int, error)

	// SearchByDescription busca por subcadena de descripción sin distinguir
	// mayúsculas, ordenado por descripción y acotado a limit resultados.
	SearchByDescription(ctx context.Context, substring string, includeInactive bool, limit int) ([]*entity.Item, error)

	// CountActiveByLocation cuenta los artículos activos de una ubicación.
	CountActiveByLocation(ctx context.Context, locationID string) (int64, error)
}
