package repository

import (
	"context"

	"github.com/pakoelda-code/wom-partes/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para ubicaciones.
// Las ubicaciones nunca se borran: Deactivate marca active=false.
type LocationRepository interface {
	// Create persiste una ubicación nueva. Devuelve domain.ErrDuplicateName si
	// ya existe una ubicación activa con el mismo nombre.
	Create(ctx context.Context, loc *entity.Location) error

	// Reactivate reactiva la ubicación inactiva con ese nombre, si existe.
	// Devuelve nil, nil si no hay ninguna que reactivar.
	Reactivate(ctx context.Context, name string) (*entity.Location, error)

	// GetByID devuelve la ubicación o nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Location, error)

	// Deactivate marca la ubicación como inactiva. Devuelve domain.ErrLocationInUse
	// si algún artículo activo la referencia y domain.ErrNotFound si no existe
	// o ya estaba inactiva. La comprobación y el update son atómicos.
	Deactivate(ctx context.Context, id string) error

	// ListActive devuelve las ubicaciones activas ordenadas por nombre.
	ListActive(ctx context.Context) ([]*entity.Location, error)
}
