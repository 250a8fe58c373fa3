// Package report arma las vistas de impresión: recorte de rango 1-indexado sobre
// el resultado filtrado, determinación de reporte mono-producto y totales de pie
// de página. No muta el conjunto filtrado.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nikiya/zaiko-api/internal/application/query"
	"github.com/nikiya/zaiko-api/internal/domain/entity"
)

// Orientation orientación de página del reporte. No afecta qué elementos se
// seleccionan; es solo una pista de render para el consumidor de impresión.
type Orientation string

// Orientaciones soportadas.
const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// ParseOrientation interpreta el valor del formulario; desconocido → portrait.
func ParseOrientation(s string) Orientation {
	if s == string(Landscape) {
		return Landscape
	}
	return Portrait
}

// Range recorte 1-indexado e inclusivo [Start, End] sobre el resultado filtrado.
// End <= 0 significa "hasta el final".
type Range struct {
	Start int
	End   int
}

// FullRange el rango con el que (re)abre toda vista previa: [1, n]. La selección
// parcial anterior no se conserva entre sesiones de vista previa.
func FullRange(n int) Range {
	return Range{Start: 1, End: n}
}

// Cut devuelve el sub-rango de items en posiciones [start, end] 1-indexadas.
// start se eleva a 1 como mínimo; end <= 0 cae al largo del conjunto. Si
// start > end o start supera el largo, el resultado es vacío.
func Cut[T any](items []T, r Range) []T {
	n := len(items)
	start := max(1, r.Start)
	end := r.End
	if end <= 0 || end > n {
		end = n
	}
	if start > end || start > n {
		return []T{}
	}
	return items[start-1 : end]
}

// SingleProductName determina si todos los movimientos comparten un mismo
// productName; en ese caso el consumidor de impresión usa el encabezado
// mono-producto en vez de la columna de producto por fila.
func SingleProductName(items []entity.Transaction) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	name := items[0].ProductName
	for _, t := range items[1:] {
		if t.ProductName != name {
			return "", false
		}
	}
	return name, true
}

// GrandTotal suma price × stock sobre los productos del reporte. Los productos
// sin precio aportan cero.
func GrandTotal(items []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range items {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return total
}

// InventoryReport vista de impresión del inventario filtrado y recortado.
type InventoryReport struct {
	Items       []entity.Product
	GrandTotal  decimal.Decimal
	IssuedAt    time.Time
	Orientation Orientation
}

// HistoryReport vista de impresión del historial filtrado y recortado.
type HistoryReport struct {
	Items         []entity.Transaction
	SingleProduct bool
	ProductName   string            // solo con SingleProduct
	CategoryPath  string            // ruta de categorías del producto único
	Paths         map[string]string // nombre→ruta para el rotulado por fila
	IssuedAt      time.Time
	Orientation   Orientation
}

// Builder arma los reportes a partir del motor de filtrado.
type Builder struct {
	engine *query.Engine
}

// NewBuilder construye el builder.
func NewBuilder(engine *query.Engine) *Builder {
	return &Builder{engine: engine}
}

// Inventory filtra los productos, aplica el recorte y calcula el total general.
func (b *Builder) Inventory(f query.Filter, r Range, o Orientation) *InventoryReport {
	items := Cut(b.engine.Products(f), r)
	return &InventoryReport{
		Items:       items,
		GrandTotal:  GrandTotal(items),
		IssuedAt:    time.Now(),
		Orientation: o,
	}
}

// History filtra los movimientos, aplica el recorte y resuelve el encabezado
// mono-producto cuando corresponde.
func (b *Builder) History(f query.Filter, r Range, o Orientation) *HistoryReport {
	items := Cut(b.engine.Transactions(f), r)
	paths := b.engine.CategoryPaths()

	rep := &HistoryReport{
		Items:       items,
		Paths:       paths,
		IssuedAt:    time.Now(),
		Orientation: o,
	}
	if name, single := SingleProductName(items); single {
		rep.SingleProduct = true
		rep.ProductName = name
		rep.CategoryPath = paths[name]
	}
	return rep
}
