// Package services implements the quotation pricing and costing engine:
// line item derivation, section grouping, document totals, and the
// enclosure, wiring and busbar fabrication sub-calculators.
package services

// RowKind discriminates product rows from section-header pseudo rows.
// Headers carry no price or quantity; the kind tag replaces the old
// string-prefix convention for marking them.
type RowKind int

const (
	RowKindItem RowKind = iota
	RowKindHeader
)

// LineItem is a single quotation row: either a purchasable product or a
// section header. The three Disc/LP price fields are derived and always
// zero for headers.
type LineItem struct {
	Kind            RowKind `json:"kind"`
	Section         string  `json:"section"`
	Description     string  `json:"description"`
	Ratings         string  `json:"ratings"`
	Make            string  `json:"make"`
	Material        string  `json:"material"`
	Quantity        int     `json:"quantity"`
	NetQty          int     `json:"net_qty"`
	ListPrice       float64 `json:"list_price"`
	DiscountPercent float64 `json:"discount_percent"`

	DiscUnitPrice  float64 `json:"disc_unit_price"`
	DiscGrossPrice float64 `json:"disc_gross_price"`
	LPGrossPrice   float64 `json:"lp_gross_price"`
}

// IsHeader reports whether the row is a section-header pseudo row.
func (li LineItem) IsHeader() bool {
	return li.Kind == RowKindHeader
}

// Derive computes the monetary fields of a line item from its raw fields.
// It is pure and idempotent: repeated calls with unchanged inputs produce
// identical outputs. Header rows always come back with zeroed derived
// fields and zeroed quantities, whatever else is set on them.
func Derive(item LineItem) LineItem {
	if item.Kind == RowKindHeader {
		item.Quantity = 0
		item.NetQty = 0
		item.ListPrice = 0
		item.DiscountPercent = 0
		item.DiscUnitPrice = 0
		item.DiscGrossPrice = 0
		item.LPGrossPrice = 0
		return item
	}

	item.LPGrossPrice = Round2(item.ListPrice * float64(item.NetQty))
	item.DiscUnitPrice = Round2(item.ListPrice * (1 - item.DiscountPercent/100))
	item.DiscGrossPrice = Round2(item.DiscUnitPrice * float64(item.NetQty))
	return item
}
