// Package pdf genera el reporte de stock de un proyecto en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del proyecto   │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Productos | Valor total | Sin stock | Movimientos  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Precio | Stock | Valor        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HISTORIAL: Fecha | Producto | Tipo | Cantidad               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster/internal/application/analytics"
	"github.com/jhoicas/stockmaster/internal/application/dto"
	"github.com/jhoicas/stockmaster/internal/domain/entity"
)

// historyLimit máximo de movimientos listados en el reporte.
const historyLimit = 50

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 6, Green: 78, Blue: 59}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 200, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ analytics.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(
	_ context.Context,
	summary dto.ProjectSummary,
	products []entity.Product,
	history []dto.HistoryEntry,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Stock report - "+summary.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(productHeaderRow())
	m.AddRows(productRows(products)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(historyHeaderRow())
	m.AddRows(historyRows(history)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(summary dto.ProjectSummary, now time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(summary.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Creado: "+summary.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("REPORTE DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func summaryRow(summary dto.ProjectSummary) core.Row {
	cell := func(label, value string, valueColor *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 5, Align: align.Center, Color: valueColor,
			}),
		)
	}
	return row.New(14).Add(
		cell("Productos", strconv.Itoa(summary.ProductCount), colorPrimary),
		cell("Valor total", formatMoney(summary.TotalValue), colorPrimary),
		cell("Sin stock", strconv.Itoa(summary.OutOfStockCount), colorRed),
		cell("Movimientos", strconv.Itoa(summary.MovementCount), colorPrimary),
	)
}

func productHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Categoría", 2, align.Left),
		h("Precio", 2, align.Right),
		h("Stock", 1, align.Center),
		h("Valor", 2, align.Right),
	)
}

func productRows(products []entity.Product) []core.Row {
	if len(products) == 0 {
		return []core.Row{emptyRow("Sin productos")}
	}
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		price := decimal.NewFromFloat(p.MRP)
		stockStyle := props.Text{Size: 8, Align: align.Center, Top: 1}
		if p.Stock == 0 {
			stockStyle.Color = colorRed
			stockStyle.Style = fontstyle.Bold
		}
		rows = append(rows, row.New(6).Add(
			col.New(5).Add(text.New(p.Title, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(p.Category, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(formatMoney(price), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(p.Stock), stockStyle)),
			col.New(2).Add(text.New(
				formatMoney(price.Mul(decimal.NewFromInt(int64(p.Stock)))),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return rows
}

func historyHeaderRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("MOVIMIENTOS RECIENTES", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

func historyRows(history []dto.HistoryEntry) []core.Row {
	if len(history) == 0 {
		return []core.Row{emptyRow("Sin movimientos de stock")}
	}
	if len(history) > historyLimit {
		history = history[:historyLimit]
	}
	rows := make([]core.Row, 0, len(history))
	for _, h := range history {
		sign, c := "+", colorPrimary
		if h.Type == entity.StockLogTypeOUT {
			sign, c = "-", colorRed
		}
		rows = append(rows, row.New(5).Add(
			col.New(3).Add(text.New(h.Timestamp.Format("02/01/2006 15:04"), props.Text{Size: 7, Top: 1, Color: colorGray})),
			col.New(6).Add(text.New(h.ProductTitle, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(h.Type, props.Text{Size: 7, Top: 1, Align: align.Center})),
			col.New(2).Add(text.New(sign+strconv.Itoa(h.Quantity), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Align: align.Right, Color: c,
			})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Top: 1, Align: align.Center, Color: colorGray}),
	))
}

// formatMoney formatea con dos decimales y separador de miles: 1234567.5 -> "1,234,567.50".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	intPart, frac := s[:len(s)-3], s[len(s)-3:]
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + frac
}
