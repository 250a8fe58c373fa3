package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nikiya/zaiko-api/internal/application/report"
	"github.com/nikiya/zaiko-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Cut: recorte 1-indexado e inclusivo sobre el conjunto filtrado.
// ──────────────────────────────────────────────────────────────────────────────

func TestCut_RangoInterior(t *testing.T) {
	items := []int{10, 20, 30, 40, 50}
	assert.Equal(t, []int{20, 30}, report.Cut(items, report.Range{Start: 2, End: 3}))
}

func TestCut_RangoCompleto(t *testing.T) {
	items := []int{10, 20, 30, 40, 50}
	assert.Equal(t, items, report.Cut(items, report.FullRange(len(items))))
}

func TestCut_NormalizaLimites(t *testing.T) {
	items := []int{10, 20, 30}
	assert.Equal(t, items, report.Cut(items, report.Range{}), "rango cero equivale a todo el conjunto")
	assert.Equal(t, []int{10, 20}, report.Cut(items, report.Range{Start: -4, End: 2}), "inicio menor que uno se eleva a uno")
	assert.Equal(t, []int{30}, report.Cut(items, report.Range{Start: 3, End: 99}), "fin mayor que el largo se recorta")
}

func TestCut_RangosVacios(t *testing.T) {
	items := []int{10, 20, 30}
	assert.Empty(t, report.Cut(items, report.Range{Start: 4, End: 2}), "inicio mayor que fin")
	assert.Empty(t, report.Cut(items, report.Range{Start: 9, End: 9}), "inicio fuera del conjunto")
	assert.Empty(t, report.Cut([]int{}, report.FullRange(0)))
}

func TestParseOrientation(t *testing.T) {
	assert.Equal(t, report.Landscape, report.ParseOrientation("landscape"))
	assert.Equal(t, report.Portrait, report.ParseOrientation("portrait"))
	assert.Equal(t, report.Portrait, report.ParseOrientation(""), "la orientación por defecto es vertical")
	assert.Equal(t, report.Portrait, report.ParseOrientation("diagonal"))
}

func TestSingleProductName(t *testing.T) {
	same := []entity.Transaction{
		{ProductName: "Tシャツ"},
		{ProductName: "Tシャツ"},
	}
	name, single := report.SingleProductName(same)
	assert.True(t, single)
	assert.Equal(t, "Tシャツ", name)

	mixed := append(same, entity.Transaction{ProductName: "ベルト"})
	_, single = report.SingleProductName(mixed)
	assert.False(t, single)

	_, single = report.SingleProductName(nil)
	assert.False(t, single, "el libro vacío no tiene producto único")
}

// TestGrandTotal los productos sin precio aportan cero al total.
func TestGrandTotal(t *testing.T) {
	items := []entity.Product{
		{Name: "Tシャツ", Stock: 3, Price: decimal.NewFromInt(2500)},
		{Name: "ベルト", Stock: 10},
		{Name: "パンツ", Stock: 2, Price: decimal.NewFromInt(5800)},
	}
	total := report.GrandTotal(items)
	assert.True(t, decimal.NewFromInt(19100).Equal(total), "total = 3×2500 + 2×5800, got %s", total)
}

func TestGrandTotal_Vacio(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(report.GrandTotal(nil)))
}
