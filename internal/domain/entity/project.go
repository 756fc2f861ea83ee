package entity

import (
	"regexp"
	"strings"
)

// DefaultProjectName nombre asignado cuando se crea un proyecto sin nombre.
const DefaultProjectName = "New Project"

// Project espacio de inventario con sus productos e historial de movimientos.
// Products e History se ordenan del más reciente al más antiguo.
type Project struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Products    []Product  `json:"products"`
	History     []StockLog `json:"history"`
	CreatedAt   Timestamp  `json:"createdAt"`
}

// Clone devuelve una copia profunda; las colecciones vacías quedan como slices no nil.
func (p Project) Clone() Project {
	out := p
	out.Products = make([]Product, len(p.Products))
	copy(out.Products, p.Products)
	out.History = make([]StockLog, len(p.History))
	copy(out.History, p.History)
	return out
}

// FindProduct busca un producto por ID.
func (p Project) FindProduct(id string) (Product, bool) {
	if i := p.ProductIndex(id); i >= 0 {
		return p.Products[i], true
	}
	return Product{}, false
}

// ProductIndex posición del producto en Products o -1 si no existe.
func (p Project) ProductIndex(id string) int {
	for i, prod := range p.Products {
		if prod.ID == id {
			return i
		}
	}
	return -1
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	pathSeparator = strings.NewReplacer("/", "_", "\\", "_")
)

// FileBaseName nombre del proyecto apto para usar como prefijo de archivo:
// cada tramo de espacios se reemplaza por "_" y los separadores de ruta también.
func (p Project) FileBaseName() string {
	return pathSeparator.Replace(whitespaceRun.ReplaceAllString(p.Name, "_"))
}
