package entity

// Tipos de movimiento de stock.
const (
	StockLogTypeIN  = "IN"  // entrada
	StockLogTypeOUT = "OUT" // salida
)

// StockLog registro inmutable de un movimiento de stock.
// ProductID es una referencia no propietaria: puede quedar colgando si el producto se elimina.
type StockLog struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Timestamp Timestamp `json:"timestamp"`
}

// ValidStockLogType indica si t es IN u OUT.
func ValidStockLogType(t string) bool {
	return t == StockLogTypeIN || t == StockLogTypeOUT
}
