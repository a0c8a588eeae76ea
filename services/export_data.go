package services

// ExportRow is a single flattened quotation row (product or section header)
// in insertion order.
type ExportRow struct {
	IsHeader        bool
	Section         string
	Description     string
	Ratings         string
	Make            string
	Material        string
	Quantity        int
	NetQty          int
	ListPrice       float64
	DiscountPercent float64
	DiscUnitPrice   float64
	DiscGrossPrice  float64
	LPGrossPrice    float64
}

// ExportData holds everything the CSV/Excel/PDF renderers need.
type ExportData struct {
	QuotationNo     string
	CustomerName    string
	Phone           string
	ShippingAddress string
	QuotationDate   string
	DeliveryDate    string
	Rows            []ExportRow
	LPTotal         float64
	NetTotal        float64
}

// BuildExportRows flattens a document into export rows, preserving
// insertion order and header placement.
func BuildExportRows(doc *Document) []ExportRow {
	rows := make([]ExportRow, 0, doc.Len())
	for _, item := range doc.Rows() {
		rows = append(rows, ExportRow{
			IsHeader:        item.IsHeader(),
			Section:         item.Section,
			Description:     item.Description,
			Ratings:         item.Ratings,
			Make:            item.Make,
			Material:        item.Material,
			Quantity:        item.Quantity,
			NetQty:          item.NetQty,
			ListPrice:       item.ListPrice,
			DiscountPercent: item.DiscountPercent,
			DiscUnitPrice:   item.DiscUnitPrice,
			DiscGrossPrice:  item.DiscGrossPrice,
			LPGrossPrice:    item.LPGrossPrice,
		})
	}
	return rows
}
