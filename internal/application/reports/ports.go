package reports

import "github.com/pakoelda-code/wom-partes/internal/application/dto"

// Exporter genera la representación descargable de un informe (hoja de
// cálculo). La implementación vive en infraestructura.
type Exporter interface {
	// StockReport exporta el informe de existencias. global indica si incluye
	// la columna de ubicación (informe de todas las ubicaciones).
	StockReport(lines []dto.StockLineDTO, global bool) ([]byte, error)

	// MovementReport exporta el informe de movimientos.
	MovementReport(lines []dto.MovementLineDTO) ([]byte, error)
}
