package entity

import "time"

// Location representa una ubicación física del almacén (estantería, sala, armario).
// Nunca se borra: se desactiva para conservar válidos los movimientos históricos.
type Location struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
}
