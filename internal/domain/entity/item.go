package entity

import "time"

// Item representa un artículo del almacén con código generado y stock entero.
// Stock solo se modifica a través del motor de movimientos; Category, Description
// y LocationID se editan por separado sin tocar el stock.
type Item struct {
	ID          string
	Code        string // generado: {prefijo}-{secuencia:04d}, único e irrepetible
	Category    string
	Description string
	LocationID  string
	Stock       int64 // nunca negativo
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
