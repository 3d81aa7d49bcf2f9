package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/apper-api/internal/model"
)

// Generator renders a one page quote sheet for a stored calculation using
// the core Helvetica font.
type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(calc model.Calculation, resp *model.CalculationResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := "Financing Quote"
	if resp != nil && resp.Output != nil && resp.Output.WidgetTitle != "" {
		title = resp.Output.WidgetTitle
	}

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Calculation #%d from %s", calc.ID, formatDate(calc.CreatedAt))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section(pdf, g.fontName, "Vehicle")
	widths := []float64{60, 120}
	for _, row := range [][]string{
		{"Name", safeValue(calc.VehicleName)},
		{"Baumuster", safeValue(calc.VehicleBaumuster)},
		{"NST", safeValue(calc.VehicleNST)},
		{"Condition", safeEnum(calc.VehicleCondition)},
		{"Gross list price", formatPrice(calc.GrossListPrice, calc.Currency)},
	} {
		drawTableRow(pdf, g.fontName, tr, row, widths, false)
	}
	pdf.Ln(4)

	section(pdf, g.fontName, "Customer")
	drawTableRow(pdf, g.fontName, tr, []string{"Customer type", safeEnum(calc.CustomerType)}, widths, false)
	drawTableRow(pdf, g.fontName, tr, []string{"Product type", safeEnum(calc.ProductType)}, widths, false)
	pdf.Ln(4)

	section(pdf, g.fontName, "Result")
	drawTableRow(pdf, g.fontName, tr, []string{"Item", "Value"}, widths, true)
	rows := resultRows(resp)
	if len(rows) == 0 {
		rows = append(rows, []string{"Monthly Rate", fmt.Sprintf("%.2f %s", calc.CalculatedRate, calc.Currency)})
	}
	for _, row := range rows {
		drawTableRow(pdf, g.fontName, tr, row, widths, false)
	}
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "", 9)
	pdf.MultiCell(0, 5, tr("Financial code: "+calc.FinancialCode), "", "L", false)
	if calc.RequestID != nil {
		pdf.MultiCell(0, 5, tr("Request ID: "+*calc.RequestID), "", "L", false)
	}
	if resp != nil && resp.Message != "" {
		pdf.MultiCell(0, 5, tr(resp.Message), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func resultRows(resp *model.CalculationResponse) [][]string {
	if resp == nil || resp.Output == nil {
		return nil
	}
	var rows [][]string
	for _, container := range resp.Output.Containers {
		for _, item := range container.Items {
			rows = append(rows, []string{item.Label, item.Value})
		}
	}
	return rows
}

func section(pdf *gofpdf.Fpdf, fontName, title string) {
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 && !header {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func safeValue(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "-"
	}
	return *value
}

func safeEnum[T ~string](value *T) string {
	if value == nil {
		return "-"
	}
	s := string(*value)
	return safeValue(&s)
}

func formatPrice(value *float64, currency string) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f %s", *value, currency)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("02.01.2006")
}
