package dto

import "time"

// CreateItemRequest entrada para dar de alta un artículo.
type CreateItemRequest struct {
	Category     string `json:"category" validate:"required"`
	Description  string `json:"description" validate:"required,min=1,max=500"`
	LocationID   string `json:"location_id" validate:"required"`
	InitialStock int64  `json:"initial_stock" validate:"min=0"`
}

// ChangeItemLocationRequest entrada para reasignar la ubicación de un artículo.
type ChangeItemLocationRequest struct {
	LocationID string `json:"location_id" validate:"required"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	LocationID  string    `json:"location_id"`
	Stock       int64     `json:"stock"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemListResponse listado acotado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
