package repository

import (
	"context"
	"time"
)

// StockLine fila cruda del informe de existencias por ubicación.
// La produce la DB; el use case la convierte en DTO.
type StockLine struct {
	LocationName string
	Code         string
	Description  string
	Stock        int64
}

// MovementLine fila cruda del informe de movimientos: apunte del libro unido
// con los datos de presentación del artículo y su ubicación.
type MovementLine struct {
	CreatedAt    time.Time
	Type         string
	Quantity     int64
	ItemCode     string
	Description  string
	LocationName string
	ActorCode    string
	ActorName    string
}

// ReportRepository define las consultas de solo lectura para informes.
// Son lecturas point-in-time sin bloqueos: no se exige linealizabilidad con
// los movimientos en vuelo.
type ReportRepository interface {
	// StockByItem devuelve el stock actual del artículo. domain.ErrNotFound
	// si el artículo no existe.
	StockByItem(ctx context.Context, itemID string) (int64, error)

	// StockByLocation devuelve las existencias de los artículos activos de
	// una ubicación, ordenadas por código. locationID vacío = todas las
	// ubicaciones activas; si no, domain.ErrNotFound cuando no existe.
	StockByLocation(ctx context.Context, locationID string) ([]StockLine, error)

	// MovementsInRange devuelve los movimientos del intervalo semiabierto
	// [from, to), más reciente primero, acotado a limit filas.
	MovementsInRange(ctx context.Context, from, to time.Time, limit int) ([]MovementLine, error)
}
