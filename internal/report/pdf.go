// filepath: internal/report/pdf.go
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
)

// PDFContentType is the MIME type of RenderPDF output.
const PDFContentType = "application/pdf"

const (
	pdfTopMargin    = 30
	pdfSideMargin   = 72
	pdfBottomMargin = 72
	headerRowHeight = 18
	bodyRowHeight   = 14
	headerFontSize  = 10
	unicodeFamily   = "CatalogSans"
)

// PDFOptions controls font embedding and stream compression.
type PDFOptions struct {
	// FontPath is a TrueType font with Vietnamese glyphs. When empty the
	// built-in Helvetica is used and text is folded to plain ASCII.
	FontPath     string
	Uncompressed bool
}

// RenderPDF writes the table as an A4 document: title, export time, the
// table with its header repeated on every page, then the record count.
func RenderPDF(w io.Writer, t *Table, opts PDFOptions) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(!opts.Uncompressed)
	pdf.SetMargins(pdfSideMargin, pdfTopMargin, pdfSideMargin)
	pdf.SetAutoPageBreak(false, pdfBottomMargin)

	family := "Helvetica"
	text := FoldASCII
	if opts.FontPath != "" {
		pdf.AddUTF8Font(unicodeFamily, "", opts.FontPath)
		pdf.AddUTF8Font(unicodeFamily, "B", opts.FontPath)
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("failed to load font %s: %w", opts.FontPath, err)
		}
		family = unicodeFamily
		text = func(s string) string { return s }
	}

	pdf.AddPage()

	pdf.SetFont(family, "B", 18)
	pdf.CellFormat(0, 22, text(t.Title), "", 1, "L", false, 0, "")
	pdf.Ln(12)
	pdf.SetFont(family, "", 10)
	pdf.CellFormat(0, 12, text(t.GeneratedLine()), "", 1, "L", false, 0, "")
	pdf.Ln(12)

	tw := &tableWriter{pdf: pdf, table: t, family: family, text: text}
	tw.x = centeredX(pdf, t.Columns)
	tw.writeHeader()
	_, pageHeight := pdf.GetPageSize()
	for _, row := range t.Rows {
		if pdf.GetY()+bodyRowHeight > pageHeight-pdfBottomMargin {
			pdf.AddPage()
			tw.writeHeader()
		}
		tw.writeRow(row)
	}

	pdf.Ln(12)
	pdf.SetFont(family, "B", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 12, text(t.Footer), "", 1, "L", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// PDFCellText is the text printed for a cell in a PDF column.
func PDFCellText(col Column, cell Cell) string {
	return Truncate(cell.Text, col.MaxRunes)
}

type tableWriter struct {
	pdf    *fpdf.Fpdf
	table  *Table
	family string
	text   func(string) string
	x      float64
}

func (tw *tableWriter) writeHeader() {
	style := tw.table.Style
	fontStyle := ""
	if style.HeaderBold {
		fontStyle = "B"
	}
	tw.pdf.SetFont(tw.family, fontStyle, headerFontSize)
	tw.pdf.SetFillColor(hexRGB(style.HeaderFill))
	tw.pdf.SetTextColor(hexRGB(style.HeaderText))
	tw.pdf.SetDrawColor(hexRGB(style.GridColor))
	tw.pdf.SetLineWidth(style.GridWidth)

	tw.pdf.SetX(tw.x)
	for _, col := range tw.table.Columns {
		tw.pdf.CellFormat(col.PDFWidth, headerRowHeight, tw.text(col.ShortHeader), "1", 0, "C", true, 0, "")
	}
	tw.pdf.Ln(-1)
}

func (tw *tableWriter) writeRow(row []Cell) {
	tw.pdf.SetFont(tw.family, "", tw.table.Style.BodyFontSize)
	tw.pdf.SetTextColor(0, 0, 0)

	tw.pdf.SetX(tw.x)
	for i, col := range tw.table.Columns {
		var cell Cell
		if i < len(row) {
			cell = row[i]
		}
		tw.pdf.CellFormat(col.PDFWidth, bodyRowHeight, tw.text(PDFCellText(col, cell)), "1", 0, "C", false, 0, "")
	}
	tw.pdf.Ln(-1)
}

func centeredX(pdf *fpdf.Fpdf, cols []Column) float64 {
	var total float64
	for _, c := range cols {
		total += c.PDFWidth
	}
	pageWidth, _ := pdf.GetPageSize()
	if total >= pageWidth {
		return 0
	}
	return (pageWidth - total) / 2
}

// hexRGB parses "#RRGGBB". Malformed input yields black.
func hexRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
