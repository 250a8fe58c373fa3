// Package pdf renderiza los reportes de impresión con Maroto v2.
//
// Layout de la página (A4, vertical u horizontal según la orientación pedida):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título del reporte  │  発行日 (fecha de emisión)    │
//	│  (historial mono-producto: 商品名 + ruta de categorías)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: filas del conjunto filtrado y recortado              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: 総計 (solo inventario)                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/nikiya/zaiko-api/internal/application/report"
	"github.com/nikiya/zaiko-api/internal/domain/entity"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorHeader = &props.Color{Red: 40, Green: 40, Blue: 40}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed    = &props.Color{Red: 200, Green: 30, Blue: 30}
)

const issuedDateLayout = "2006/01/02"

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

func newDocument(o report.Orientation, title string) core.Maroto {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true)
	if o == report.Landscape {
		builder = builder.WithOrientation(orientation.Horizontal)
	}
	return maroto.New(builder.Build())
}

// ── Inventario ────────────────────────────────────────────────────────────────

// InventoryPDF genera el reporte de inventario y devuelve sus bytes.
func (g *MarotoReportGenerator) InventoryPDF(rep *report.InventoryReport) ([]byte, error) {
	m := newDocument(rep.Orientation, "在庫一覧")

	m.AddRows(titleRow("在庫一覧", rep.IssuedAt.Format(issuedDateLayout)))
	m.AddRows(line.NewRow(2, props.Line{Color: colorHeader, Thickness: 0.5}))

	m.AddRows(row.New(7).Add(
		headerCol(4, "商品名", align.Left),
		headerCol(3, "カテゴリー", align.Left),
		headerCol(2, "単価", align.Right),
		headerCol(1, "在庫数", align.Right),
		headerCol(2, "合計金額", align.Right),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	for _, p := range rep.Items {
		unit, total := "-", "-"
		if p.HasPrice() {
			unit = "¥" + p.Price.StringFixed(0)
			total = "¥" + p.Price.Mul(decimalFromInt(p.Stock)).StringFixed(0)
		}
		m.AddRows(row.New(6).Add(
			cellCol(4, p.Name, align.Left, nil),
			cellCol(3, p.CategoryPath(), align.Left, colorGray),
			cellCol(2, unit, align.Right, nil),
			cellCol(1, fmt.Sprintf("%d", p.Stock), align.Right, nil),
			cellCol(2, total, align.Right, nil),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorHeader, Thickness: 0.5}))
	m.AddRows(row.New(9).Add(
		col.New(9).Add(text.New("総計:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
		})),
		col.New(3).Add(text.New("¥"+rep.GrandTotal.StringFixed(0), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
		})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de inventario: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Historial ─────────────────────────────────────────────────────────────────

// HistoryPDF genera el reporte de historial y devuelve sus bytes. Con conjunto
// mono-producto el nombre sube al encabezado y la tabla pierde esa columna.
func (g *MarotoReportGenerator) HistoryPDF(rep *report.HistoryReport) ([]byte, error) {
	m := newDocument(rep.Orientation, "入出庫履歴")

	m.AddRows(titleRow("入出庫履歴", rep.IssuedAt.Format(issuedDateLayout)))
	if rep.SingleProduct {
		m.AddRows(row.New(8).Add(
			col.New(6).Add(text.New("商品名: "+rep.ProductName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1,
			})),
			col.New(6).Add(text.New(rep.CategoryPath, props.Text{
				Size: 9, Color: colorGray, Top: 2,
			})),
		))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorHeader, Thickness: 0.5}))

	if rep.SingleProduct {
		m.AddRows(row.New(7).Add(
			headerCol(3, "日付", align.Left),
			headerCol(3, "担当者", align.Left),
			headerCol(4, "出庫先", align.Left),
			headerCol(2, "数量", align.Right),
		))
	} else {
		m.AddRows(row.New(7).Add(
			headerCol(2, "日付", align.Left),
			headerCol(4, "商品名", align.Left),
			headerCol(2, "担当者", align.Left),
			headerCol(2, "出庫先", align.Left),
			headerCol(2, "数量", align.Right),
		))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	for _, t := range rep.Items {
		amountColor := colorHeader
		if t.Type == entity.MovementOut {
			amountColor = colorRed
		}
		amount := fmt.Sprintf("%+d", t.Amount)
		dest := "-"
		if t.Type == entity.MovementOut && t.Destination != "" {
			dest = t.Destination
		}
		if rep.SingleProduct {
			m.AddRows(row.New(6).Add(
				cellCol(3, t.Date, align.Left, nil),
				cellCol(3, t.User, align.Left, nil),
				cellCol(4, dest, align.Left, nil),
				cellCol(2, amount, align.Right, amountColor),
			))
		} else {
			m.AddRows(row.New(6).Add(
				cellCol(2, t.Date, align.Left, nil),
				col.New(4).Add(
					text.New(t.ProductName, props.Text{Size: 8, Style: fontstyle.Bold}),
					text.New(rep.Paths[t.ProductName], props.Text{Size: 6, Top: 4, Color: colorGray}),
				),
				cellCol(2, t.User, align.Left, nil),
				cellCol(2, dest, align.Left, nil),
				cellCol(2, amount, align.Right, amountColor),
			))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de historial: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Componentes comunes ───────────────────────────────────────────────────────

func titleRow(title, issued string) core.Row {
	return row.New(12).Add(
		col.New(8).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 15, Color: colorHeader, Top: 1,
		})),
		col.New(4).Add(text.New("発行日: "+issued, props.Text{
			Size: 9, Color: colorGray, Align: align.Right, Top: 4,
		})),
	)
}

func headerCol(size int, label string, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
	}))
}

func cellCol(size int, value string, a align.Type, color *props.Color) core.Col {
	p := props.Text{Size: 8, Align: a}
	if color != nil {
		p.Color = color
	}
	return col.New(size).Add(text.New(value, p))
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
