package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
type RegisterMovementRequest struct {
	ItemID   string `json:"item_id"`
	Type     string `json:"type"` // ENTRADA o SALIDA
	Quantity int64  `json:"quantity"`
}

// AdjustStockRequest body para POST /api/inventory/adjustments.
// Delta positivo equivale a una ENTRADA; negativo, a una SALIDA.
type AdjustStockRequest struct {
	ItemID string `json:"item_id"`
	Delta  int64  `json:"delta"`
}

// MovementResponse resultado de registrar un movimiento.
type MovementResponse struct {
	ItemID   string `json:"item_id"`
	NewStock int64  `json:"new_stock"`
}

// MovementEntryDTO apunte del libro en el historial de un artículo.
type MovementEntryDTO struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	ActorCode string    `json:"actor_code"`
	ActorName string    `json:"actor_name"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementHistoryResponse historial de movimientos de un artículo,
// más reciente primero.
type MovementHistoryResponse struct {
	ItemID   string             `json:"item_id"`
	ItemCode string             `json:"item_code"`
	Entries  []MovementEntryDTO `json:"entries"`
	Total    int                `json:"total"`
}
