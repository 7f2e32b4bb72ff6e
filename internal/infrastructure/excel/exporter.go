// Package excel genera las hojas de cálculo descargables de los informes.
package excel

import (
	"bytes"
	"fmt"

	"github.com/pakoelda-code/wom-partes/internal/application/dto"
	"github.com/pakoelda-code/wom-partes/internal/application/reports"
	"github.com/xuri/excelize/v2"
)

var _ reports.Exporter = (*Exporter)(nil)

// Exporter implementación del puerto reports.Exporter sobre excelize.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter {
	return &Exporter{}
}

// StockReport exporta el informe de existencias. Con global=true antepone la
// columna de ubicación.
func (e *Exporter) StockReport(lines []dto.StockLineDTO, global bool) ([]byte, error) {
	header := []interface{}{"Código", "Descripción", "Stock"}
	if global {
		header = append([]interface{}{"Ubicación"}, header...)
	}

	rows := make([][]interface{}, 0, len(lines))
	for _, l := range lines {
		row := []interface{}{l.Code, l.Description, l.Stock}
		if global {
			row = append([]interface{}{l.Location}, row...)
		}
		rows = append(rows, row)
	}
	return writeSheet(header, rows)
}

// MovementReport exporta el informe de movimientos.
func (e *Exporter) MovementReport(lines []dto.MovementLineDTO) ([]byte, error) {
	header := []interface{}{
		"Fecha", "Tipo", "Cantidad", "Código", "Descripción", "Ubicación", "Usuario",
	}
	rows := make([][]interface{}, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []interface{}{
			l.Date.Format("2006-01-02 15:04"),
			l.Type,
			l.Quantity,
			l.ItemCode,
			l.Description,
			l.Location,
			fmt.Sprintf("%s (%s)", l.ActorName, l.ActorCode),
		})
	}
	return writeSheet(header, rows)
}

func writeSheet(header []interface{}, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("escribir cabecera: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("celda de fila %d: %w", i+2, err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return nil, fmt.Errorf("escribir fila %d: %w", i+2, err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
