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

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, code, category, description, location_id, stock, active, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL
// (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un artículo nuevo. El único constraint único de la tabla es
// el código: una violación 23505 significa carrera de generación de código.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO wom_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Code, item.Category, item.Description,
		item.LocationID, item.Stock, item.Active, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeConflict
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM wom_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get item")
}

// GetForUpdate obtiene el artículo bloqueando su fila (SELECT FOR UPDATE).
// La espera está acotada por el lock_timeout de la transacción: al expirar
// devuelve domain.ErrConcurrentConflict.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM wom_items WHERE id = $1 FOR UPDATE`
	item, err := r.scanOne(r.q.QueryRow(ctx, query, id), "get item for update")
	if err != nil && isLockTimeout(err) {
		return nil, domain.ErrConcurrentConflict
	}
	return item, err
}

// UpdateStock escribe el nuevo stock del artículo.
func (r *ItemRepo) UpdateStock(ctx context.Context, id string, stock int64) error {
	query := `UPDATE wom_items SET stock = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateLocation reasigna la ubicación de un artículo activo.
func (r *ItemRepo) UpdateLocation(ctx context.Context, id, locationID string) error {
	query := `
		UPDATE wom_items SET location_id = $2, updated_at = now()
		WHERE id = $1 AND active`
	cmd, err := r.q.Exec(ctx, query, id, locationID)
	if err != nil {
		return fmt.Errorf("update item location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate marca el artículo como inactivo (baja lógica).
func (r *ItemRepo) Deactivate(ctx context.Context, id string) error {
	query := `
		UPDATE wom_items SET active = false, updated_at = now()
		WHERE id = $1 AND active`
	cmd, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MaxSequence devuelve la mayor secuencia usada entre los códigos con el
// prefijo dado, incluidos artículos inactivos. El prefijo es siempre una
// letra, así que la secuencia empieza en la posición 3 del código.
func (r *ItemRepo) MaxSequence(ctx context.Context, prefix string) (int, error) {
	query := `
		SELECT coalesce(max(substring(code from 3)::int), 0)
		FROM wom_items WHERE code LIKE $1 || '-%'`
	var seq int
	if err := r.q.QueryRow(ctx, query, prefix).Scan(&seq); err != nil {
		return 0, fmt.Errorf("max code sequence: %w", err)
	}
	return seq, nil
}

// SearchByDescription busca por subcadena de descripción (ILIKE), ordenado
// por descripción y acotado a limit resultados.
func (r *ItemRepo) SearchByDescription(ctx context.Context, substring string, includeInactive bool, limit int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM wom_items WHERE description ILIKE '%' || $1 || '%'`
	if !includeInactive {
		query += ` AND active`
	}
	query += ` ORDER BY description LIMIT $2`

	rows, err := r.q.Query(ctx, query, substring, limit)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Code, &it.Category, &it.Description,
			&it.LocationID, &it.Stock, &it.Active, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// CountActiveByLocation cuenta los artículos activos de una ubicación.
func (r *ItemRepo) CountActiveByLocation(ctx context.Context, locationID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM wom_items WHERE location_id = $1 AND active`, locationID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count items by location: %w", err)
	}
	return n, nil
}

func (r *ItemRepo) scanOne(row pgx.Row, op string) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.Code, &it.Category, &it.Description,
		&it.LocationID, &it.Stock, &it.Active, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}
