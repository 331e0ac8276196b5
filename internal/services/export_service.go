// filepath: internal/services/export_service.go
package services

import (
	"bytes"
	"context"
	"flowershop/internal/config"
	"flowershop/internal/logging"
	"flowershop/internal/report"
	"fmt"
	"time"
)

var _ ExportService = (*exportService)(nil)

// ExportFormat selects the document renderer.
type ExportFormat string

const (
	FormatXLSX ExportFormat = "xlsx"
	FormatPDF  ExportFormat = "pdf"
)

// ExportResult is a rendered catalog document.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
	Rows        int
	// Truncated is set when the catalog held more than report.max_rows matching records.
	Truncated bool
}

type exportService struct {
	Catalog CatalogStore
	Cfg     *config.Config
	now     func() time.Time
}

// NewExportService creates a new ExportService.
func NewExportService(catalog CatalogStore, cfg *config.Config) *exportService {
	return &exportService{
		Catalog: catalog,
		Cfg:     cfg,
		now:     time.Now,
	}
}

// Export renders the catalog, optionally restricted to one flower type, oldest record first.
// At most report.max_rows records are included; one extra row is read to tell
// a full catalog from a truncated one.
func (s *exportService) Export(ctx context.Context, format ExportFormat, flowerType string) (*ExportResult, error) {
	if format != FormatXLSX && format != FormatPDF {
		return nil, validationError("unsupported export format %q", format)
	}

	maxRows := s.Cfg.Report.MaxRows
	limit := maxRows
	if maxRows > 0 {
		limit = maxRows + 1
	}
	flowers, err := s.Catalog.ListFlowers(ctx, NormalizeTypeFilter(flowerType), limit)
	if err != nil {
		return nil, storeError("load catalog for export", err)
	}
	truncated := maxRows > 0 && len(flowers) > maxRows
	if truncated {
		flowers = flowers[:maxRows]
		logging.Log.Warnf("ExportService: export truncated to %d rows", maxRows)
	}

	generatedAt := s.now()
	table := report.BuildCatalogTable(flowers, generatedAt)
	if truncated {
		table.MarkTruncated(maxRows)
	}

	var buf bytes.Buffer
	result := &ExportResult{
		Filename:  report.Filename(generatedAt, string(format)),
		Rows:      len(flowers),
		Truncated: truncated,
	}
	switch format {
	case FormatXLSX:
		result.ContentType = report.XLSXContentType
		err = report.RenderXLSX(&buf, table)
	case FormatPDF:
		result.ContentType = report.PDFContentType
		err = report.RenderPDF(&buf, table, report.PDFOptions{FontPath: s.Cfg.Report.FontPath})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s export: %w", format, err)
	}

	result.Data = buf.Bytes()
	return result, nil
}
