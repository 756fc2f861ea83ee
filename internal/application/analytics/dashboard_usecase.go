package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/stockmaster/internal/application/dto"
	"github.com/jhoicas/stockmaster/internal/domain/entity"
)

const dashboardTopProducts = 5 // número de productos en el ranking del dashboard

// DashboardUseCase resume los movimientos de stock del día y del mes en curso.
// Lee solo el historial del proyecto; no modifica estado.
type DashboardUseCase struct {
	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso. now nil usa time.Now.
func NewDashboardUseCase(now func() time.Time) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{now: now}
}

// GetSummary construye el MovementDashboard del proyecto.
func (uc *DashboardUseCase) GetSummary(project entity.Project) dto.MovementDashboard {
	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	out := dto.MovementDashboard{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		TopProducts: []dto.TopMovedProduct{},
		DateLabel:   monthLabel(now),
	}

	byProduct := map[string]*dto.TopMovedProduct{}
	for _, log := range project.History {
		at := log.Timestamp.Time()
		if at.Before(monthStart) || !at.Before(todayEnd) {
			continue
		}
		today := !at.Before(todayStart)

		top, ok := byProduct[log.ProductID]
		if !ok {
			top = &dto.TopMovedProduct{
				ProductID:    log.ProductID,
				ProductTitle: ResolveLogProductTitle(project, log),
			}
			byProduct[log.ProductID] = top
		}

		switch log.Type {
		case entity.StockLogTypeIN:
			out.MonthIn += log.Quantity
			top.In += log.Quantity
			if today {
				out.TodayIn += log.Quantity
			}
		case entity.StockLogTypeOUT:
			out.MonthOut += log.Quantity
			top.Out += log.Quantity
			if today {
				out.TodayOut += log.Quantity
			}
		}
	}

	for _, top := range byProduct {
		out.TopProducts = append(out.TopProducts, *top)
	}
	sort.Slice(out.TopProducts, func(i, j int) bool {
		a, b := out.TopProducts[i], out.TopProducts[j]
		if a.Moved() != b.Moved() {
			return a.Moved() > b.Moved()
		}
		return a.ProductID < b.ProductID
	})
	if len(out.TopProducts) > dashboardTopProducts {
		out.TopProducts = out.TopProducts[:dashboardTopProducts]
	}
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
