// filepath: internal/report/table.go

// Package report renders the flower catalog as spreadsheet and PDF documents.
// Both renderers consume the same Table, so column order, labels and row
// numbering are decided once in BuildCatalogTable.
package report

import (
	"flowershop/internal/models"
	"fmt"
	"strconv"
	"time"
)

const (
	// SheetName is the spreadsheet tab title.
	SheetName = "Catalog Hoa"
	// Title heads the PDF document.
	Title = "CATALOG HOA ĐẸP"

	filenamePrefix = "Catalog_Hoa_"
	tagRuneLimit   = 30
)

// CellKind tells a renderer how to present a value.
type CellKind int

const (
	KindText CellKind = iota
	KindInteger
	KindMoney
)

// Column describes one table column for both formats.
type Column struct {
	Header      string  // spreadsheet header label
	ShortHeader string  // PDF header label
	Width       float64 // spreadsheet width in character units
	PDFWidth    float64 // PDF width in points
	Kind        CellKind
	MaxRunes    int // PDF-only truncation, 0 means none
}

// Cell holds a value in both raw and display form.
type Cell struct {
	Text   string
	Number int64
	Kind   CellKind
}

// Style is the presentation intent shared by the renderers.
type Style struct {
	HeaderFill   string // hex RGB
	HeaderText   string
	HeaderBold   bool
	GridColor    string
	GridWidth    float64 // points
	BodyFontSize float64
}

// Table is a format-agnostic catalog table.
type Table struct {
	Title       string
	GeneratedAt time.Time
	Columns     []Column
	Rows        [][]Cell
	Footer      string
	Style       Style
}

// CatalogColumns is the fixed column layout of a catalog export.
var CatalogColumns = []Column{
	{Header: "STT", ShortHeader: "STT", Width: 8, PDFWidth: 30, Kind: KindInteger},
	{Header: "Tên hoa", ShortHeader: "Tên hoa", Width: 35, PDFWidth: 140, Kind: KindText},
	{Header: "Giá (VNĐ)", ShortHeader: "Giá", Width: 15, PDFWidth: 70, Kind: KindMoney},
	{Header: "Loại", ShortHeader: "Loại", Width: 15, PDFWidth: 70, Kind: KindText},
	{Header: "Quy cách", ShortHeader: "Quy cách", Width: 12, PDFWidth: 60, Kind: KindText},
	{Header: "Tồn kho", ShortHeader: "Tồn", Width: 10, PDFWidth: 40, Kind: KindInteger},
	{Header: "Tags", ShortHeader: "Tags", Width: 25, PDFWidth: 80, Kind: KindText, MaxRunes: tagRuneLimit},
}

// CatalogStyle is the dark-green header look of the catalog exports.
var CatalogStyle = Style{
	HeaderFill:   "#2E7D32",
	HeaderText:   "#FFFFFF",
	HeaderBold:   true,
	GridColor:    "#808080",
	GridWidth:    0.5,
	BodyFontSize: 8,
}

// BuildCatalogTable lays out flowers in input order, numbering rows from 1.
func BuildCatalogTable(flowers []models.Flower, generatedAt time.Time) *Table {
	rows := make([][]Cell, 0, len(flowers))
	for i, f := range flowers {
		rows = append(rows, []Cell{
			intCell(int64(i + 1)),
			textCell(f.Name),
			{Text: FormatPrice(f.Price), Number: f.Price, Kind: KindMoney},
			textCell(f.Type),
			textCell(f.Unit),
			intCell(f.Stock),
			textCell(f.Tags),
		})
	}

	return &Table{
		Title:       Title,
		GeneratedAt: generatedAt,
		Columns:     CatalogColumns,
		Rows:        rows,
		Footer:      fmt.Sprintf("Tổng: %d sản phẩm", len(flowers)),
		Style:       CatalogStyle,
	}
}

// MarkTruncated rewrites the footer of a table cut at limit rows.
func (t *Table) MarkTruncated(limit int) {
	t.Footer = fmt.Sprintf("Tổng: %d sản phẩm (giới hạn %d dòng, danh mục còn nhiều hơn)", len(t.Rows), limit)
}

// GeneratedLine is the "exported at" line printed under the PDF title.
func (t *Table) GeneratedLine() string {
	return "Ngày xuất: " + t.GeneratedAt.Format("02/01/2006 15:04")
}

// Filename returns Catalog_Hoa_<YYYYMMDD>_<HHMMSS>.<ext>.
func Filename(generatedAt time.Time, ext string) string {
	return filenamePrefix + generatedAt.Format("20060102_150405") + "." + ext
}

func textCell(s string) Cell {
	return Cell{Text: s, Kind: KindText}
}

func intCell(n int64) Cell {
	return Cell{Text: strconv.FormatInt(n, 10), Number: n, Kind: KindInteger}
}
