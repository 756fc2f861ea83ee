package entity

// Valores por defecto al crear un producto.
const (
	DefaultProductCategory = "General"
	DefaultProductImage    = "https://picsum.photos/400/400"
)

// Product representa un producto dentro de un proyecto.
// Stock nunca es negativo y solo cambia vía ajustes de stock (ver StockLog).
type Product struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"`
	Title     string    `json:"title"`
	MRP       float64   `json:"mrp"` // precio unitario
	Stock     int       `json:"stock"`
	Category  string    `json:"category"`
	CreatedAt Timestamp `json:"createdAt"`
}
