package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectSummary agregados de un proyecto para la vista principal.
type ProjectSummary struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	ProductCount    int             `json:"product_count"`
	TotalValue      decimal.Decimal `json:"total_value"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	MovementCount   int             `json:"movement_count"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
}

// HistoryEntry movimiento de stock con el título del producto ya resuelto.
type HistoryEntry struct {
	LogID        string    `json:"log_id"`
	ProductID    string    `json:"product_id"`
	ProductTitle string    `json:"product_title"`
	Type         string    `json:"type"`
	Quantity     int       `json:"quantity"`
	Timestamp    time.Time `json:"timestamp"`
}

// ValuationPoint instantánea del valor de inventario de un proyecto en un momento dado.
type ValuationPoint struct {
	ProjectID       string          `json:"project_id"`
	ProjectName     string          `json:"project_name"`
	TotalValue      decimal.Decimal `json:"total_value"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	RecordedAt      time.Time       `json:"recorded_at"`
}
