package inventory

import (
	"math"

	"github.com/jhoicas/stockmaster/internal/domain/entity"
)

// AddProduct antepone un producto nuevo a la lista del proyecto.
// Stock negativo se lleva a 0; un precio negativo o no finito se lleva a 0.
func (e *Engine) AddProduct(state entity.AppState, projectID, title string, mrp float64, stock int, image string) entity.AppState {
	return e.updateProject(state, projectID, func(p *entity.Project) {
		if stock < 0 {
			stock = 0
		}
		if image == "" {
			image = entity.DefaultProductImage
		}
		product := entity.Product{
			ID:        e.ids.NewID(),
			Image:     image,
			Title:     title,
			MRP:       sanitizeMRP(mrp),
			Stock:     stock,
			Category:  entity.DefaultProductCategory,
			CreatedAt: e.now(),
		}
		p.Products = append([]entity.Product{product}, p.Products...)
	})
}

// EditProduct actualiza título y precio. El stock solo cambia vía AdjustStock.
func (e *Engine) EditProduct(state entity.AppState, projectID, productID, newTitle string, newMRP float64) entity.AppState {
	return e.updateProject(state, projectID, func(p *entity.Project) {
		i := p.ProductIndex(productID)
		if i < 0 {
			return
		}
		p.Products[i].Title = newTitle
		p.Products[i].MRP = sanitizeMRP(newMRP)
	})
}

// DeleteProduct quita el producto de la lista. Los StockLog que lo referencian se conservan.
func (e *Engine) DeleteProduct(state entity.AppState, projectID, productID string) entity.AppState {
	return e.updateProject(state, projectID, func(p *entity.Project) {
		i := p.ProductIndex(productID)
		if i < 0 {
			return
		}
		p.Products = append(p.Products[:i], p.Products[i+1:]...)
	})
}

func sanitizeMRP(mrp float64) float64 {
	if math.IsNaN(mrp) || math.IsInf(mrp, 0) || mrp < 0 {
		return 0
	}
	return mrp
}
