package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicateName      = errors.New("ya existe una ubicación activa con ese nombre")
	ErrLocationInUse      = errors.New("la ubicación tiene artículos activos")
	ErrInvalidCategory    = errors.New("categoría desconocida")
	ErrInvalidQuantity    = errors.New("cantidad inválida")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrConcurrentConflict = errors.New("conflicto de concurrencia sobre el artículo, reintentar")
	ErrCodeConflict       = errors.New("conflicto al generar el código del artículo")
)
