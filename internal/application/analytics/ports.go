package analytics

import (
	"context"

	"github.com/jhoicas/stockmaster/internal/application/dto"
	"github.com/jhoicas/stockmaster/internal/domain/entity"
)

// ReportGenerator genera la representación en PDF del reporte de stock de un proyecto.
type ReportGenerator interface {
	GenerateStockReport(
		ctx context.Context,
		summary dto.ProjectSummary,
		products []entity.Product,
		history []dto.HistoryEntry,
	) ([]byte, error)
}

// ValuationStore guarda y consulta el historial de valorización de inventario.
type ValuationStore interface {
	RecordValuations(ctx context.Context, points []dto.ValuationPoint) error
	// ValuationHistory devuelve las últimas limit instantáneas del proyecto, la más reciente primero.
	ValuationHistory(ctx context.Context, projectID string, limit int) ([]dto.ValuationPoint, error)
}
