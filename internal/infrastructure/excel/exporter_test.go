package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pakoelda-code/wom-partes/internal/application/dto"
	"github.com/pakoelda-code/wom-partes/internal/infrastructure/excel"
)

func openSheet(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	require.NoError(t, err)
	return rows
}

func TestStockReport_PorUbicacion(t *testing.T) {
	data, err := excel.NewExporter().StockReport([]dto.StockLineDTO{
		{Code: "F-0001", Description: "Tornillo M6", Stock: 10},
		{Code: "F-0002", Description: "Tuerca M6", Stock: 3},
	}, false)
	require.NoError(t, err)

	rows := openSheet(t, data)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Código", "Descripción", "Stock"}, rows[0])
	assert.Equal(t, []string{"F-0001", "Tornillo M6", "10"}, rows[1])
	assert.Equal(t, []string{"F-0002", "Tuerca M6", "3"}, rows[2])
}

func TestStockReport_GlobalAnteponeLaUbicacion(t *testing.T) {
	data, err := excel.NewExporter().StockReport([]dto.StockLineDTO{
		{Location: "Almacén", Code: "F-0001", Description: "Tornillo M6", Stock: 10},
	}, true)
	require.NoError(t, err)

	rows := openSheet(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Ubicación", "Código", "Descripción", "Stock"}, rows[0])
	assert.Equal(t, "Almacén", rows[1][0])
}

func TestMovementReport(t *testing.T) {
	when := time.Date(2026, 8, 14, 9, 30, 0, 0, time.UTC)
	data, err := excel.NewExporter().MovementReport([]dto.MovementLineDTO{
		{
			Date:        when,
			Type:        "SALIDA",
			Quantity:    2,
			ItemCode:    "E-0003",
			Description: "Cable HDMI",
			Location:    "Vitrina",
			ActorCode:   "P000A",
			ActorName:   "Pako",
		},
	})
	require.NoError(t, err)

	rows := openSheet(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"Fecha", "Tipo", "Cantidad", "Código", "Descripción", "Ubicación", "Usuario",
	}, rows[0])
	assert.Equal(t, []string{
		"2026-08-14 09:30", "SALIDA", "2", "E-0003", "Cable HDMI", "Vitrina", "Pako (P000A)",
	}, rows[1])
}

func TestStockReport_SinFilas(t *testing.T) {
	data, err := excel.NewExporter().StockReport(nil, false)
	require.NoError(t, err)

	rows := openSheet(t, data)
	require.Len(t, rows, 1, "solo la cabecera")
}
