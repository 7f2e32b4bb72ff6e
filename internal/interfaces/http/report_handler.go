package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pakoelda-code/wom-partes/internal/application/dto"
	"github.com/pakoelda-code/wom-partes/internal/application/reports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler maneja las consultas de informes (solo lectura).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ItemStock lectura puntual del stock de un artículo.
func (h *ReportHandler) ItemStock(c *fiber.Ctx) error {
	out, err := h.uc.StockByItem(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Stock informe de existencias. ?location_id=<id> acota a una ubicación;
// ausente o "all", cubre todas. ?format=xlsx descarga la hoja de cálculo.
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	if locationID == "all" {
		locationID = ""
	}

	if c.Query("format") == "xlsx" {
		data, err := h.uc.ExportStockByLocation(c.Context(), locationID)
		if err != nil {
			return domainError(c, err)
		}
		c.Set(fiber.HeaderContentType, xlsxContentType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="existencias.xlsx"`)
		return c.Send(data)
	}

	out, err := h.uc.StockByLocation(c.Context(), locationID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Movements informe de movimientos en el intervalo [from, to), descendente
// por fecha. Fechas en RFC 3339. ?format=xlsx descarga la hoja de cálculo.
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC 3339)"})
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC 3339)"})
	}

	if c.Query("format") == "xlsx" {
		data, err := h.uc.ExportMovementsInRange(c.Context(), from, to)
		if err != nil {
			return domainError(c, err)
		}
		c.Set(fiber.HeaderContentType, xlsxContentType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.xlsx"`)
		return c.Send(data)
	}

	out, err := h.uc.MovementsInRange(c.Context(), from, to)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
