// filepath: internal/api/handlers/export_handler.go
package handlers

import (
	"flowershop/internal/logging"
	"flowershop/internal/services"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// TruncatedHeader is set on exports cut at report.max_rows.
const TruncatedHeader = "X-Export-Truncated"

// @Summary Export catalog as spreadsheet
// @Description Downloads the catalog (optionally one type) as an .xlsx workbook, oldest record first.
// @Description At most report.max_rows rows are written; X-Export-Truncated: true marks a cut export.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param type query string false "Exact flower type; omit or 'Tất cả' for all"
// @Success 200 {file} file "Spreadsheet"
// @Failure 500 {object} ErrorResponse "Store or render error"
// @Router /export/excel [get]
func (h *Handlers) ExportExcel(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, services.FormatXLSX)
}

// @Summary Export catalog as PDF
// @Description Downloads the catalog (optionally one type) as an A4 PDF table, oldest record first.
// @Description Without report.font_path the built-in Helvetica is used and Vietnamese text is folded to ASCII ("Tổng" prints as "Tong").
// @Description At most report.max_rows rows are written; X-Export-Truncated: true marks a cut export.
// @Tags export
// @Produce application/pdf
// @Param type query string false "Exact flower type; omit or 'Tất cả' for all"
// @Success 200 {file} file "PDF document"
// @Failure 500 {object} ErrorResponse "Store or render error"
// @Router /export/pdf [get]
func (h *Handlers) ExportPDF(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, services.FormatPDF)
}

func (h *Handlers) export(w http.ResponseWriter, r *http.Request, format services.ExportFormat) {
	flowerType := r.URL.Query().Get("type")

	result, err := h.Exports.Export(r.Context(), format, flowerType)
	if err != nil {
		respondWithServiceError(w, "Export", err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(result.Filename)))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	if result.Truncated {
		w.Header().Set(TruncatedHeader, "true")
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		logging.Log.Warnf("Export: client went away: %v", err)
		return
	}

	h.Auditor.Log(r.Context(), "catalog.export", requestActor(r), result.Filename, map[string]interface{}{
		"format": string(format),
		"type":   flowerType,
		"rows":   result.Rows,
	})
}
