package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pakoelda-code/wom-partes/internal/application/dto"
	"github.com/pakoelda-code/wom-partes/internal/domain"
	"github.com/pakoelda-code/wom-partes/internal/domain/repository"
)

// ReportUseCase consultas de solo lectura sobre artículos, ubicaciones y el
// libro de movimientos. Lecturas point-in-time: no bloquean ni se bloquean
// con los movimientos en vuelo.
type ReportUseCase struct {
	repo     repository.ReportRepository
	exporter Exporter
	rowLimit int
}

// NewReportUseCase construye el caso de uso. rowLimit acota las filas del
// informe de movimientos.
func NewReportUseCase(repo repository.ReportRepository, exporter Exporter, rowLimit int) *ReportUseCase {
	if rowLimit <= 0 {
		rowLimit = 1000
	}
	return &ReportUseCase{repo: repo, exporter: exporter, rowLimit: rowLimit}
}

// StockByItem lectura puntual del stock de un artículo.
func (uc *ReportUseCase) StockByItem(ctx context.Context, itemID string) (*dto.ItemStockResponse, error) {
	if uuid.Validate(itemID) != nil {
		return nil, domain.ErrNotFound
	}
	stock, err := uc.repo.StockByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return &dto.ItemStockResponse{ItemID: itemID, Stock: stock}, nil
}

// StockByLocation existencias de una ubicación, o de todas si locationID
// está vacío. En el informe global cada fila lleva el nombre de su ubicación.
func (uc *ReportUseCase) StockByLocation(ctx context.Context, locationID string) (*dto.StockReportResponse, error) {
	if locationID != "" && uuid.Validate(locationID) != nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.repo.StockByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	global := locationID == ""
	out := make([]dto.StockLineDTO, 0, len(lines))
	for _, l := range lines {
		row := dto.StockLineDTO{Code: l.Code, Description: l.Description, Stock: l.Stock}
		if global {
			row.Location = l.LocationName
		}
		out = append(out, row)
	}
	return &dto.StockReportResponse{Lines: out, Total: len(out)}, nil
}

// MovementsInRange movimientos del intervalo semiabierto [from, to), más
// reciente primero, unidos con los datos de presentación de artículo y
// ubicación.
func (uc *ReportUseCase) MovementsInRange(ctx context.Context, from, to time.Time) (*dto.MovementReportResponse, error) {
	if !from.Before(to) {
		return nil, domain.ErrInvalidInput
	}
	lines, err := uc.repo.MovementsInRange(ctx, from, to, uc.rowLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.MovementLineDTO{
			Date:        l.CreatedAt,
			Type:        l.Type,
			Quantity:    l.Quantity,
			ItemCode:    l.ItemCode,
			Description: l.Description,
			Location:    l.LocationName,
			ActorCode:   l.ActorCode,
			ActorName:   l.ActorName,
		})
	}
	return &dto.MovementReportResponse{From: from, To: to, Lines: out, Total: len(out)}, nil
}

// ExportStockByLocation genera la hoja de cálculo del informe de existencias.
func (uc *ReportUseCase) ExportStockByLocation(ctx context.Context, locationID string) ([]byte, error) {
	report, err := uc.StockByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return uc.exporter.StockReport(report.Lines, locationID == "")
}

// ExportMovementsInRange genera la hoja de cálculo del informe de movimientos.
func (uc *ReportUseCase) ExportMovementsInRange(ctx context.Context, from, to time.Time) ([]byte, error) {
	report, err := uc.MovementsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return uc.exporter.MovementReport(report.Lines)
}
