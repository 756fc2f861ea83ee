// Package analytics deriva vistas de solo lectura sobre el estado: valor de inventario,
// búsqueda, historial, dashboard de movimientos y reporte PDF.
package analytics

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/stockmaster/internal/application/dto"
	"github.com/jhoicas/stockmaster/internal/domain/entity"
)

// UnknownProductTitle se muestra para movimientos cuyo producto ya fue eliminado.
const UnknownProductTitle = "Unknown Product"

// TotalInventoryValue suma mrp * stock de todos los productos del proyecto.
func TotalInventoryValue(project entity.Project) decimal.Decimal {
	total := decimal.Zero
	for _, p := range project.Products {
		total = total.Add(decimal.NewFromFloat(p.MRP).Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return total
}

// OutOfStockCount cuenta los productos con stock 0.
func OutOfStockCount(project entity.Project) int {
	n := 0
	for _, p := range project.Products {
		if p.Stock == 0 {
			n++
		}
	}
	return n
}

// Search devuelve los productos cuyo título contiene query, sin distinguir mayúsculas
// (case folding Unicode). Conserva el orden; una consulta vacía devuelve todos.
func Search(project entity.Project, query string) []entity.Product {
	fold := cases.Fold()
	q := fold.String(query)
	out := make([]entity.Product, 0, len(project.Products))
	for _, p := range project.Products {
		if strings.Contains(fold.String(p.Title), q) {
			out = append(out, p)
		}
	}
	return out
}

// ResolveLogProductTitle título del producto referenciado por el movimiento,
// o UnknownProductTitle si ya no existe en el proyecto.
func ResolveLogProductTitle(project entity.Project, log entity.StockLog) string {
	if p, ok := project.FindProduct(log.ProductID); ok {
		return p.Title
	}
	return UnknownProductTitle
}

// Summarize arma el resumen del proyecto. active indica si es el proyecto activo.
func Summarize(project entity.Project, active bool) dto.ProjectSummary {
	return dto.ProjectSummary{
		ID:              project.ID,
		Name:            project.Name,
		ProductCount:    len(project.Products),
		TotalValue:      TotalInventoryValue(project),
		OutOfStockCount: OutOfStockCount(project),
		MovementCount:   len(project.History),
		Active:          active,
		CreatedAt:       project.CreatedAt.Time(),
	}
}

// SummarizeAll resume todos los proyectos del estado, en orden.
func SummarizeAll(state entity.AppState) []dto.ProjectSummary {
	out := make([]dto.ProjectSummary, 0, len(state.Projects))
	for _, p := range state.Projects {
		out = append(out, Summarize(p, state.IsActive(p.ID)))
	}
	return out
}

// History historial del proyecto (más reciente primero) con títulos resueltos.
func History(project entity.Project) []dto.HistoryEntry {
	out := make([]dto.HistoryEntry, 0, len(project.History))
	for _, l := range project.History {
		out = append(out, dto.HistoryEntry{
			LogID:        l.ID,
			ProductID:    l.ProductID,
			ProductTitle: ResolveLogProductTitle(project, l),
			Type:         l.Type,
			Quantity:     l.Quantity,
			Timestamp:    l.Timestamp.Time(),
		})
	}
	return out
}

// ValuationPoints instantáneas de valorización de todos los proyectos del estado en at.
func ValuationPoints(state entity.AppState, at time.Time) []dto.ValuationPoint {
	out := make([]dto.ValuationPoint, 0, len(state.Projects))
	for _, p := range state.Projects {
		out = append(out, dto.ValuationPoint{
			ProjectID:       p.ID,
			ProjectName:     p.Name,
			TotalValue:      TotalInventoryValue(p),
			OutOfStockCount: OutOfStockCount(p),
			RecordedAt:      at,
		})
	}
	return out
}
