package services

import "strings"

// Document is the ordered line item store for one quotation. It owns its
// rows exclusively; every mutation either fully succeeds or is rejected
// before any state change.
type Document struct {
	rows []LineItem
}

// NewDocument returns an empty line item store.
func NewDocument() *Document {
	return &Document{}
}

// NewDocumentFromRows rebuilds a store from previously persisted rows.
// Each row is re-derived on the way in; validation already happened when
// the rows were first added.
func NewDocumentFromRows(rows []LineItem) *Document {
	d := &Document{rows: make([]LineItem, len(rows))}
	for i, row := range rows {
		d.rows[i] = Derive(row)
	}
	return d
}

// ItemPatch carries the editable fields of a row. Nil pointers leave the
// corresponding field untouched.
type ItemPatch struct {
	Description     *string
	Ratings         *string
	Make            *string
	Material        *string
	Section         *string
	Quantity        *int
	NetQty          *int
	ListPrice       *float64
	DiscountPercent *float64
}

// AddHeader appends a section-header pseudo row. Header names are unique
// case-insensitively across the document.
func (d *Document) AddHeader(name string) error {
	name = strings.TrimSpace(name)
	for _, row := range d.rows {
		if row.Kind == RowKindHeader && strings.EqualFold(row.Description, name) {
			return ErrDuplicateSection
		}
	}
	d.rows = append(d.rows, Derive(LineItem{
		Kind:        RowKindHeader,
		Description: name,
	}))
	return nil
}

// AddProduct validates and appends a product row. The available quantity
// comes from the catalog lookup; a request above it is rejected, as is a
// row whose (description, make, material, list price) tuple already exists.
func (d *Document) AddProduct(item LineItem, available int) error {
	item.Kind = RowKindItem
	if item.Quantity > available {
		return ErrInsufficientStock
	}
	for _, row := range d.rows {
		if row.Kind != RowKindItem {
			continue
		}
		if row.Description == item.Description &&
			row.Make == item.Make &&
			row.Material == item.Material &&
			row.ListPrice == item.ListPrice {
			return ErrDuplicateItem
		}
	}
	if item.NetQty == 0 {
		item.NetQty = item.Quantity
	}
	d.rows = append(d.rows, Derive(item))
	return nil
}

// Edit applies a patch to the row at index and re-derives it.
func (d *Document) Edit(index int, patch ItemPatch) error {
	if index < 0 || index >= len(d.rows) {
		return errIndexOutOfRange(index, len(d.rows))
	}
	row := d.rows[index]
	if patch.Description != nil {
		row.Description = *patch.Description
	}
	if patch.Ratings != nil {
		row.Ratings = *patch.Ratings
	}
	if patch.Make != nil {
		row.Make = *patch.Make
	}
	if patch.Material != nil {
		row.Material = *patch.Material
	}
	if patch.Section != nil {
		row.Section = *patch.Section
	}
	if patch.Quantity != nil {
		row.Quantity = *patch.Quantity
	}
	if patch.NetQty != nil {
		row.NetQty = *patch.NetQty
	}
	if patch.ListPrice != nil {
		row.ListPrice = *patch.ListPrice
	}
	if patch.DiscountPercent != nil {
		row.DiscountPercent = *patch.DiscountPercent
	}
	d.rows[index] = Derive(row)
	return nil
}

// Delete removes the row at index. Remaining rows keep their content.
func (d *Document) Delete(index int) error {
	if index < 0 || index >= len(d.rows) {
		return errIndexOutOfRange(index, len(d.rows))
	}
	d.rows = append(d.rows[:index], d.rows[index+1:]...)
	return nil
}

// Clear empties the store.
func (d *Document) Clear() {
	d.rows = nil
}

// Len returns the number of rows, headers included.
func (d *Document) Len() int {
	return len(d.rows)
}

// Rows returns a copy of the rows in insertion order.
func (d *Document) Rows() []LineItem {
	out := make([]LineItem, len(d.rows))
	copy(out, d.rows)
	return out
}

// Totals sums LP gross and discounted gross prices over product rows.
// Headers contribute nothing; an empty document yields (0, 0).
func (d *Document) Totals() (lpTotal, netTotal float64) {
	for _, row := range d.rows {
		if row.Kind == RowKindHeader {
			continue
		}
		lpTotal += row.LPGrossPrice
		netTotal += row.DiscGrossPrice
	}
	return lpTotal, netTotal
}

// Group is a named run of product rows under one section header.
type Group struct {
	Name  string
	Items []LineItem
}

// UngroupedSection is the bucket for items that precede any header.
const UngroupedSection = "Ungrouped"

// Groups partitions product rows by their nearest preceding header,
// preserving insertion order within each group. Items before the first
// header land in the implicit ungrouped bucket.
func (d *Document) Groups() []Group {
	var groups []Group
	current := -1
	for _, row := range d.rows {
		if row.Kind == RowKindHeader {
			groups = append(groups, Group{Name: row.Description})
			current = len(groups) - 1
			continue
		}
		if current == -1 {
			groups = append(groups, Group{Name: UngroupedSection})
			current = 0
		}
		groups[current].Items = append(groups[current].Items, row)
	}
	return groups
}
