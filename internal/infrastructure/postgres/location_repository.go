package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pakoelda-code/wom-partes/internal/domain"
	"github.com/pakoelda-code/wom-partes/internal/domain/entity"
	"github.com/pakoelda-code/wom-partes/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una ubicación nueva. El índice único parcial sobre
// lower(name) WHERE active convierte la carrera entre dos altas con el mismo
// nombre en domain.ErrDuplicateName.
func (r *LocationRepo) Create(ctx context.Context, loc *entity.Location) error {
	query := `
		INSERT INTO wom_locations (id, name, active, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, loc.ID, loc.Name, loc.Active, loc.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// Reactivate reactiva la ubicación inactiva más reciente con ese nombre.
// Devuelve nil, nil si no hay ninguna.
func (r *LocationRepo) Reactivate(ctx context.Context, name string) (*entity.Location, error) {
	query := `
		UPDATE wom_locations SET active = true
		WHERE id = (
			SELECT id FROM wom_locations
			WHERE lower(name) = lower($1) AND NOT active
			ORDER BY created_at DESC LIMIT 1
		)
		RETURNING id, name, active, created_at`
	var loc entity.Location
	err := r.q.QueryRow(ctx, query, name).Scan(&loc.ID, &loc.Name, &loc.Active, &loc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateName
		}
		return nil, fmt.Errorf("reactivate location: %w", err)
	}
	return &loc, nil
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	query := `
		SELECT id, name, active, created_at
		FROM wom_locations WHERE id = $1`
	var loc entity.Location
	err := r.q.QueryRow(ctx, query, id).Scan(&loc.ID, &loc.Name, &loc.Active, &loc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &loc, nil
}

// Deactivate desactiva la ubicación solo si ningún artículo activo la
// referencia. La guarda va dentro del propio UPDATE para que sea atómica;
// si no afectó filas se consulta el motivo para distinguir el error.
func (r *LocationRepo) Deactivate(ctx context.Context, id string) error {
	query := `
		UPDATE wom_locations SET active = false
		WHERE id = $1 AND active
		  AND NOT EXISTS (SELECT 1 FROM wom_items WHERE location_id = $1 AND active)`
	cmd, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate location: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	var active bool
	err = r.q.QueryRow(ctx, `SELECT active FROM wom_locations WHERE id = $1`, id).Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("deactivate location: %w", err)
	}
	if !active {
		return domain.ErrNotFound
	}
	return domain.ErrLocationInUse
}

// ListActive lista las ubicaciones activas ordenadas por nombre.
func (r *LocationRepo) ListActive(ctx context.Context) ([]*entity.Location, error) {
	query := `
		SELECT id, name, active, created_at
		FROM wom_locations WHERE active ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var loc entity.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Active, &loc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &loc)
	}
	return list, rows.Err()
}
