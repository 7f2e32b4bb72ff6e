package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pakoelda-code/wom-partes/internal/domain"
	"github.com/pakoelda-code/wom-partes/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para informes. Lecturas point-in-time
// sin bloqueos (read committed es suficiente: los informes son orientativos).
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de informes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// StockByItem lectura puntual del stock de un artículo.
func (r *ReportRepo) StockByItem(ctx context.Context, itemID string) (int64, error) {
	var stock int64
	err := r.q.QueryRow(ctx, `SELECT stock FROM wom_items WHERE id = $1`, itemID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("stock by item: %w", err)
	}
	return stock, nil
}

// StockByLocation existencias de los artículos activos de una ubicación,
// o de todas (locationID vacío), ordenadas por ubicación y código.
func (r *ReportRepo) StockByLocation(ctx context.Context, locationID string) ([]repository.StockLine, error) {
	if locationID != "" {
		var exists bool
		err := r.q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM wom_locations WHERE id = $1)`, locationID,
		).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("check location: %w", err)
		}
		if !exists {
			return nil, domain.ErrNotFound
		}
	}

	query := `
		SELECT l.name, i.code, i.description, i.stock
		FROM wom_items i
		JOIN wom_locations l ON l.id = i.location_id
		WHERE i.active`
	args := []any{}
	if locationID != "" {
		query += ` AND i.location_id = $1`
		args = append(args, locationID)
	}
	query += ` ORDER BY l.name, i.code`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stock by location: %w", err)
	}
	defer rows.Close()
	var lines []repository.StockLine
	for rows.Next() {
		var l repository.StockLine
		if err := rows.Scan(&l.LocationName, &l.Code, &l.Description, &l.Stock); err != nil {
			return nil, fmt.Errorf("scan stock line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// MovementsInRange apuntes del intervalo semiabierto [from, to) unidos con
// artículo y ubicación, más reciente primero.
func (r *ReportRepo) MovementsInRange(ctx context.Context, from, to time.Time, limit int) ([]repository.MovementLine, error) {
	query := `
		SELECT m.created_at, m.move_type, m.qty, i.code, i.description, l.name,
		       m.actor_code, m.actor_name
		FROM wom_movements m
		JOIN wom_items i ON i.id = m.item_id
		JOIN wom_locations l ON l.id = i.location_id
		WHERE m.created_at >= $1 AND m.created_at < $2
		ORDER BY m.created_at DESC LIMIT $3`
	rows, err := r.q.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("movements in range: %w", err)
	}
	defer rows.Close()
	var lines []repository.MovementLine
	for rows.Next() {
		var l repository.MovementLine
		if err := rows.Scan(&l.CreatedAt, &l.Type, &l.Quantity, &l.ItemCode,
			&l.Description, &l.LocationName, &l.ActorCode, &l.ActorName); err != nil {
			return nil, fmt.Errorf("scan movement line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
