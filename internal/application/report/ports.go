package report

// PDFGenerator renderiza un reporte a PDF. Implementado en infrastructure/pdf.
type PDFGenerator interface {
	InventoryPDF(rep *InventoryReport) ([]byte, error)
	HistoryPDF(rep *HistoryReport) ([]byte, error)
}

// ExcelWriter escribe un reporte como libro .xlsx. Implementado en
// infrastructure/excel.
type ExcelWriter interface {
	InventoryXLSX(rep *InventoryReport) ([]byte, error)
	HistoryXLSX(rep *HistoryReport) ([]byte, error)
}
