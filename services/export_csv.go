package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// csvHeader matches the column order of the on-screen items table.
var csvHeader = []string{
	"section", "description", "ratings", "make", "material",
	"quantity", "net_qty", "list_price", "discount_percent",
	"disc_unit_price", "disc_gross_price", "lp_gross_price",
}

// GenerateCSV renders the quotation rows as a delimited dump in insertion
// order. Derived monetary fields carry 2 decimals; header pseudo rows leave
// them blank.
func GenerateCSV(data ExportData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range data.Rows {
		record := []string{
			r.Section,
			r.Description,
			r.Ratings,
			r.Make,
			r.Material,
			strconv.Itoa(r.Quantity),
			strconv.Itoa(r.NetQty),
			fmt.Sprintf("%.2f", r.ListPrice),
			fmt.Sprintf("%.2f", r.DiscountPercent),
			fmt.Sprintf("%.2f", r.DiscUnitPrice),
			fmt.Sprintf("%.2f", r.DiscGrossPrice),
			fmt.Sprintf("%.2f", r.LPGrossPrice),
		}
		if r.IsHeader {
			record = []string{
				r.Section, r.Description, "", "", "",
				"0", "0", "0.00", "0.00", "", "", "",
			}
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
