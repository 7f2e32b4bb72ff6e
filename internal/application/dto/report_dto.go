package dto

import "time"

// StockLineDTO fila del informe de existencias por ubicación.
type StockLineDTO struct {
	Location    string `json:"location,omitempty"` // presente solo en el informe global
	Code        string `json:"code"`
	Description string `json:"description"`
	Stock       int64  `json:"stock"`
}

// StockReportResponse informe de existencias.
type StockReportResponse struct {
	Lines []StockLineDTO `json:"lines"`
	Total int            `json:"total"`
}

// MovementLineDTO fila del informe de movimientos.
type MovementLineDTO struct {
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	ItemCode    string    `json:"item_code"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ActorCode   string    `json:"actor_code"`
	ActorName   string    `json:"actor_name"`
}

// MovementReportResponse informe de movimientos en un rango de fechas.
type MovementReportResponse struct {
	From  time.Time         `json:"from"`
	To    time.Time         `json:"to"`
	Lines []MovementLineDTO `json:"lines"`
	Total int               `json:"total"`
}

// ItemStockResponse lectura puntual del stock de un artículo.
type ItemStockResponse struct {
	ItemID string `json:"item_id"`
	Stock  int64  `json:"stock"`
}
