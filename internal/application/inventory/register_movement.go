package inventory

import (
	"math"

	"github.com/jhoicas/stockmaster/internal/domain/entity"
)

// AdjustStock aplica delta al stock del producto: newStock = max(0, stock+delta).
// Registra un StockLog (IN si delta > 0, OUT si no) con quantity = |delta| al inicio del historial.
// delta = 0 no produce cambios ni movimiento. math.MinInt se trata como -math.MaxInt y un
// stock que excedería math.MaxInt queda en math.MaxInt.
func (e *Engine) AdjustStock(state entity.AppState, projectID, productID string, delta int) entity.AppState {
	return e.updateProject(state, projectID, func(p *entity.Project) {
		if delta == 0 {
			return
		}
		i := p.ProductIndex(productID)
		if i < 0 {
			return
		}
		if delta == math.MinInt {
			delta = -math.MaxInt
		}
		logType := entity.StockLogTypeOUT
		quantity := -delta
		if delta > 0 {
			logType = entity.StockLogTypeIN
			quantity = delta
		}
		log := entity.StockLog{
			ID:        e.ids.NewID(),
			ProductID: productID,
			Type:      logType,
			Quantity:  quantity,
			Timestamp: e.now(),
		}
		p.History = append([]entity.StockLog{log}, p.History...)
		p.Products[i].Stock = addStock(p.Products[i].Stock, delta)
	})
}

// addStock suma con piso en 0 y techo en math.MaxInt. stock >= 0 y delta > math.MinInt.
func addStock(stock, delta int) int {
	if delta > 0 && stock > math.MaxInt-delta {
		return math.MaxInt
	}
	return max(0, stock+delta)
}
