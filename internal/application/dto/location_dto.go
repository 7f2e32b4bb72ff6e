package dto

import "time"

// CreateLocationRequest entrada para crear (o reactivar) una ubicación.
type CreateLocationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// LocationListResponse listado de ubicaciones activas.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Total int                `json:"total"`
}
