package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel creates an Excel workbook from the quotation export data
// and returns the file contents.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quotation"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through L).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
	lastCol := columns[len(columns)-1]

	widths := []float64{14, 38, 14, 12, 14, 7, 9, 12, 8, 14, 15, 13}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F3B4A"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	// Section-header rows get the pale highlight the on-screen table uses.
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#FFFFE0"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-4) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	title := "Quotation"
	if data.QuotationNo != "" {
		title = "Quotation " + data.QuotationNo
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if data.CustomerName != "" {
		if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge customer: %w", err)
		}
		customer := data.CustomerName
		if data.Phone != "" {
			customer += " · " + data.Phone
		}
		f.SetCellValue(sheetName, "A2", sanitizeExcelCell("Customer: "+customer))
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}

	if data.ShippingAddress != "" {
		if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
			return nil, fmt.Errorf("merge address: %w", err)
		}
		f.SetCellValue(sheetName, "A3", sanitizeExcelCell("Ship To: "+data.ShippingAddress))
		f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)
	}

	if err := f.MergeCell(sheetName, "A4", lastCol+"4"); err != nil {
		return nil, fmt.Errorf("merge dates: %w", err)
	}
	f.SetCellValue(sheetName, "A4", fmt.Sprintf("Date: %s    Delivery: %s", data.QuotationDate, data.DeliveryDate))
	f.SetCellStyle(sheetName, "A4", lastCol+"4", subtitleStyle)

	// ── Row 6: Column Headers ───────────────────────────────────────────

	headers := []string{
		"Section", "Description", "Ratings", "Make", "Material",
		"Qty", "Net Qty", "List Price", "Disc %",
		"Unit After Disc", "Gross After Disc", "LP Gross",
	}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s6", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A6", lastCol+"6", headerStyle)

	// ── Data Rows (starting row 7) ──────────────────────────────────────

	row := 7
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)

		if r.IsHeader {
			if err := f.MergeCell(sheetName, "B"+rowStr, lastCol+rowStr); err != nil {
				return nil, fmt.Errorf("merge section row: %w", err)
			}
			f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Description))
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, sectionStyle)
			row++
			continue
		}

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.Section))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Description))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Ratings))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.Make))
		f.SetCellValue(sheetName, "E"+rowStr, sanitizeExcelCell(r.Material))
		f.SetCellValue(sheetName, "F"+rowStr, FormatQty(float64(r.Quantity)))
		f.SetCellValue(sheetName, "G"+rowStr, FormatQty(float64(r.NetQty)))
		f.SetCellValue(sheetName, "H"+rowStr, FormatINR(r.ListPrice))
		f.SetCellValue(sheetName, "I"+rowStr, fmt.Sprintf("%.2f%%", r.DiscountPercent))
		f.SetCellValue(sheetName, "J"+rowStr, FormatINR(r.DiscUnitPrice))
		f.SetCellValue(sheetName, "K"+rowStr, FormatINR(r.DiscGrossPrice))
		f.SetCellValue(sheetName, "L"+rowStr, FormatINR(r.LPGrossPrice))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, itemStyle)

		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++

	summaryRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "J"+summaryRow, "LP Gross Total:")
	f.SetCellStyle(sheetName, "J"+summaryRow, "J"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "K"+summaryRow, FormatINR(data.LPTotal))
	f.SetCellStyle(sheetName, "K"+summaryRow, "K"+summaryRow, summaryValueStyle)
	row++

	summaryRow = fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "J"+summaryRow, "Net After Discount:")
	f.SetCellStyle(sheetName, "J"+summaryRow, "J"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "K"+summaryRow, FormatINR(data.NetTotal))
	f.SetCellStyle(sheetName, "K"+summaryRow, "K"+summaryRow, summaryValueStyle)

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
