package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nikiya/zaiko-api/internal/application/report"
	"github.com/nikiya/zaiko-api/internal/domain/entity"
	"github.com/nikiya/zaiko-api/internal/infrastructure/excel"
)

func TestInventoryXLSX_LibroLegible(t *testing.T) {
	w := excel.NewExcelizeReportWriter()
	items := []entity.Product{
		{Name: "Tシャツ", Category: "衣類", Stock: 25, Price: decimal.NewFromInt(2500)},
		{Name: "ベルト", Category: "服飾雑貨", Stock: 4},
	}
	data, err := w.InventoryXLSX(&report.InventoryReport{
		Items:      items,
		GrandTotal: report.GrandTotal(items),
		IssuedAt:   time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err, "el resultado debe reabrirse como libro válido")
	defer book.Close()

	assert.Contains(t, book.GetSheetList(), "在庫一覧")
	name, err := book.GetCellValue("在庫一覧", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Tシャツ", name)
}

func TestHistoryXLSX_LibroLegible(t *testing.T) {
	w := excel.NewExcelizeReportWriter()
	data, err := w.HistoryXLSX(&report.HistoryReport{
		Items: []entity.Transaction{
			{ProductName: "Tシャツ", User: "田中", Amount: 20, Date: "2026/08/01 09:00", Type: entity.MovementIn},
		},
		Paths:    map[string]string{"Tシャツ": "衣類"},
		IssuedAt: time.Now(),
	})
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()
	assert.Contains(t, book.GetSheetList(), "入出庫履歴")
}
