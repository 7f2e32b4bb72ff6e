package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pakoelda-code/wom-partes/internal/application/dto"
	"github.com/pakoelda-code/wom-partes/internal/application/inventory"
	"github.com/pakoelda-code/wom-partes/internal/domain"
	"github.com/pakoelda-code/wom-partes/internal/infrastructure/metrics"
)

// InventoryHandler maneja las peticiones HTTP del motor de movimientos.
type InventoryHandler struct {
	engine *inventory.MovementEngine
	query  *inventory.MovementQuery
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(engine *inventory.MovementEngine, query *inventory.MovementQuery) *InventoryHandler {
	return &InventoryHandler{engine: engine, query: query}
}

// RegisterMovement registra una ENTRADA o SALIDA y devuelve el stock
// resultante. No es idempotente: repetir la petición repite el movimiento.
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	start := time.Now()
	newStock, err := h.engine.RecordMovement(c.Context(), inventory.MovementInput{
		ItemID:   in.ItemID,
		Type:     in.Type,
		Quantity: in.Quantity,
		Actor:    GetActor(c),
	})
	metrics.MovementDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MovementsRejected.WithLabelValues(rejectionReason(err)).Inc()
		return domainError(c, err)
	}
	metrics.MovementsApplied.WithLabelValues(in.Type).Inc()

	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{ItemID: in.ItemID, NewStock: newStock})
}

// AdjustStock registra el movimiento equivalente a un delta con signo.
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	start := time.Now()
	newStock, err := h.engine.AdjustStock(c.Context(), in.ItemID, in.Delta, GetActor(c))
	metrics.MovementDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MovementsRejected.WithLabelValues(rejectionReason(err)).Inc()
		return domainError(c, err)
	}
	label := "ENTRADA"
	if in.Delta < 0 {
		label = "SALIDA"
	}
	metrics.MovementsApplied.WithLabelValues(label).Inc()

	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{ItemID: in.ItemID, NewStock: newStock})
}

// History devuelve el historial de movimientos de un artículo, más reciente
// primero. Los artículos dados de baja conservan su historial.
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	out, err := h.query.History(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConcurrentConflict):
		return "conflict"
	default:
		return "error"
	}
}
