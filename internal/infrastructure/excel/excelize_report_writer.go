// Package excel escribe los reportes como libros .xlsx con Excelize, para quien
// prefiera hoja de cálculo en vez de PDF.
package excel

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/nikiya/zaiko-api/internal/application/report"
	"github.com/nikiya/zaiko-api/internal/domain/entity"
)

// ExcelizeReportWriter implementa report.ExcelWriter.
type ExcelizeReportWriter struct{}

// NewExcelizeReportWriter construye el writer.
func NewExcelizeReportWriter() *ExcelizeReportWriter { return &ExcelizeReportWriter{} }

// InventoryXLSX escribe el reporte de inventario y devuelve los bytes del libro.
func (w *ExcelizeReportWriter) InventoryXLSX(rep *report.InventoryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "在庫一覧"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	headers := []any{"商品名", "カテゴリー", "単価", "在庫数", "合計金額"}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return nil, err
	}

	rowNum := 2
	for _, p := range rep.Items {
		var unit, total any = "-", "-"
		if p.HasPrice() {
			unit, _ = p.Price.Float64()
			total, _ = p.Price.Mul(decimalStock(p)).Float64()
		}
		if err := setRow(f, sheet, rowNum, []any{p.Name, p.CategoryPath(), unit, p.Stock, total}); err != nil {
			return nil, err
		}
		rowNum++
	}

	grand, _ := rep.GrandTotal.Float64()
	if err := setRow(f, sheet, rowNum+1, []any{"総計", "", "", "", grand}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// HistoryXLSX escribe el reporte de historial. Con conjunto mono-producto el
// nombre va en una fila de encabezado y la tabla pierde esa columna.
func (w *ExcelizeReportWriter) HistoryXLSX(rep *report.HistoryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "入出庫履歴"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	rowNum := 1
	if rep.SingleProduct {
		if err := setRow(f, sheet, rowNum, []any{"商品名", rep.ProductName, rep.CategoryPath}); err != nil {
			return nil, err
		}
		rowNum += 2
		if err := setRow(f, sheet, rowNum, []any{"日付", "担当者", "出庫先", "数量"}); err != nil {
			return nil, err
		}
	} else {
		if err := setRow(f, sheet, rowNum, []any{"日付", "商品名", "カテゴリー", "担当者", "出庫先", "数量"}); err != nil {
			return nil, err
		}
	}
	rowNum++

	for _, t := range rep.Items {
		dest := "-"
		if t.Type == entity.MovementOut && t.Destination != "" {
			dest = t.Destination
		}
		var cells []any
		if rep.SingleProduct {
			cells = []any{t.Date, t.User, dest, t.Amount}
		} else {
			cells = []any{t.Date, t.ProductName, rep.Paths[t.ProductName], t.User, dest, t.Amount}
		}
		if err := setRow(f, sheet, rowNum, cells); err != nil {
			return nil, err
		}
		rowNum++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func decimalStock(p entity.Product) decimal.Decimal {
	return decimal.NewFromInt(int64(p.Stock))
}

func setRow(f *excelize.File, sheet string, rowNum int, cells []any) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("excel: celda (%d,%d): %w", i+1, rowNum, err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("excel: escribir %s: %w", cell, err)
		}
	}
	return nil
}
