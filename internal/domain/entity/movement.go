package entity

import "time"

// Tipos de movimiento de stock. La dirección la codifica el tipo, no el signo.
const (
	MovementTypeEntrada = "ENTRADA"
	MovementTypeSalida  = "SALIDA"
)

// Movement representa un apunte inmutable del libro de movimientos: una entrada
// o salida de stock de un artículo, atribuida a un actor. Nunca se actualiza
// ni se borra (append-only).
type Movement struct {
	ID        string
	ItemID    string
	Type      string // ENTRADA o SALIDA
	Quantity  int64  // estrictamente positivo
	ActorCode string
	ActorName string
	CreatedAt time.Time
}

// Delta devuelve el efecto del movimiento sobre el stock con signo.
func (m *Movement) Delta() int64 {
	if m.Type == MovementTypeSalida {
		return -m.Quantity
	}
	return m.Quantity
}

// Actor identifica al usuario que origina un movimiento (código corto + nombre),
// suministrado por la capa de autenticación externa.
type Actor struct {
	Code string
	Name string
}
