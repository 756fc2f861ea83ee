package dto

// MovementDashboard resumen de movimientos de stock del día y del mes en curso de un proyecto.
type MovementDashboard struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`

	// Día actual (00:00 – 23:59)
	TodayIn  int `json:"today_in"`
	TodayOut int `json:"today_out"`

	// Mes en curso (día 1 – hoy)
	MonthIn  int `json:"month_in"`
	MonthOut int `json:"month_out"`

	// Productos con más unidades movidas en el mes, de mayor a menor.
	TopProducts []TopMovedProduct `json:"top_products"`

	DateLabel string `json:"date_label"` // ej: "Febrero 2026"
}

// TopMovedProduct unidades movidas de un producto en el período.
type TopMovedProduct struct {
	ProductID    string `json:"product_id"`
	ProductTitle string `json:"product_title"`
	In           int    `json:"in"`
	Out          int    `json:"out"`
}

// Moved total de unidades que entraron o salieron.
func (t TopMovedProduct) Moved() int { return t.In + t.Out }
