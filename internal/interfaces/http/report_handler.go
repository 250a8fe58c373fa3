package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nikiya/zaiko-api/internal/application/dto"
	"github.com/nikiya/zaiko-api/internal/application/report"
)

// ReportHandler emite los reportes imprimibles de inventario e historial.
type ReportHandler struct {
	builder *report.Builder
	pdf     report.PDFGenerator
	excel   report.ExcelWriter
}

// NewReportHandler construye el handler.
func NewReportHandler(builder *report.Builder, pdf report.PDFGenerator, excel report.ExcelWriter) *ReportHandler {
	return &ReportHandler{builder: builder, pdf: pdf, excel: excel}
}

// rangeFromQuery arma el rango 1-indexado; los params ausentes quedan en cero
// y el recorte los normaliza a [1, n].
func rangeFromQuery(c *fiber.Ctx) report.Range {
	return report.Range{
		Start: c.QueryInt("start"),
		End:   c.QueryInt("end"),
	}
}

func reportFilename(prefix, ext string) string {
	return prefix + "_" + time.Now().Format("20060102_150405") + "." + ext
}

// Inventory godoc
// @Summary      Reporte de inventario (PDF o XLSX)
// @Tags         reports
// @Produce      application/pdf
// @Param        format       query  string  false  "pdf | xlsx (default pdf)"
// @Param        orientation  query  string  false  "portrait | landscape"
// @Param        start        query  int     false  "Posición inicial 1-indexada"
// @Param        end          query  int     false  "Posición final inclusiva"
// @Param        q            query  string  false  "Substring del nombre"
// @Param        category     query  string  false  "Categoría mayor"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	rep := h.builder.Inventory(filterFromQuery(c), rangeFromQuery(c), report.ParseOrientation(c.Query("orientation")))

	switch c.Query("format", "pdf") {
	case "pdf":
		data, err := h.pdf.InventoryPDF(rep)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+reportFilename("inventory", "pdf")+`"`)
		return c.Send(data)
	case "xlsx":
		data, err := h.excel.InventoryXLSX(rep)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+reportFilename("inventory", "xlsx")+`"`)
		return c.Send(data)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format debe ser pdf o xlsx"})
	}
}

// History godoc
// @Summary      Reporte de movimientos (PDF o XLSX)
// @Tags         reports
// @Produce      application/pdf
// @Param        format       query  string  false  "pdf | xlsx (default pdf)"
// @Param        orientation  query  string  false  "portrait | landscape"
// @Param        start        query  int     false  "Posición inicial 1-indexada"
// @Param        end          query  int     false  "Posición final inclusiva"
// @Param        q            query  string  false  "Substring del nombre de producto"
// @Param        from         query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        to           query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/history [get]
func (h *ReportHandler) History(c *fiber.Ctx) error {
	rep := h.builder.History(filterFromQuery(c), rangeFromQuery(c), report.ParseOrientation(c.Query("orientation")))

	switch c.Query("format", "pdf") {
	case "pdf":
		data, err := h.pdf.HistoryPDF(rep)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+reportFilename("history", "pdf")+`"`)
		return c.Send(data)
	case "xlsx":
		data, err := h.excel.HistoryXLSX(rep)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+reportFilename("history", "xlsx")+`"`)
		return c.Send(data)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format debe ser pdf o xlsx"})
	}
}
