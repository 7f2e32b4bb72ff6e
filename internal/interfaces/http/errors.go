package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pakoelda-code/wom-partes/internal/application/dto"
	"github.com/pakoelda-code/wom-partes/internal/domain"
)

// domainError traduce un error de dominio a su respuesta HTTP. Cada clase de
// fallo conserva un código máquina distinguible; la UI traduce el mensaje.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return respond(c, fiber.StatusBadRequest, "INVALID_QUANTITY", err)
	case errors.Is(err, domain.ErrInvalidCategory):
		return respond(c, fiber.StatusBadRequest, "INVALID_CATEGORY", err)
	case errors.Is(err, domain.ErrInvalidInput):
		return respond(c, fiber.StatusBadRequest, "VALIDATION", err)
	case errors.Is(err, domain.ErrNotFound):
		return respond(c, fiber.StatusNotFound, "NOT_FOUND", err)
	case errors.Is(err, domain.ErrDuplicateName):
		return respond(c, fiber.StatusConflict, "DUPLICATE_NAME", err)
	case errors.Is(err, domain.ErrLocationInUse):
		return respond(c, fiber.StatusConflict, "LOCATION_IN_USE", err)
	case errors.Is(err, domain.ErrInsufficientStock):
		return respond(c, fiber.StatusConflict, "INSUFFICIENT_STOCK", err)
	case errors.Is(err, domain.ErrCodeConflict):
		return respond(c, fiber.StatusConflict, "CODE_CONFLICT", err)
	case errors.Is(err, domain.ErrConcurrentConflict):
		// 423: el recurso está bloqueado por otra operación; reintentable.
		return respond(c, fiber.StatusLocked, "CONCURRENT_CONFLICT", err)
	default:
		return respond(c, fiber.StatusInternalServerError, "INTERNAL", err)
	}
}

func respond(c *fiber.Ctx, status int, code string, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
