package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF creates a PDF document from quotation export data using
// maroto/v2. It returns the raw PDF bytes or an error.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addPDFHeader(m, data)
	addPDFTableHeader(m)
	for _, r := range data.Rows {
		addPDFTableRow(m, r)
	}
	addPDFSummary(m, data)
	addPDFFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addPDFHeader adds the title, customer block, and dates.
func addPDFHeader(m core.Maroto, data ExportData) {
	title := "Quotation"
	if data.QuotationNo != "" {
		title = "Quotation " + data.QuotationNo
	}

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	grayText := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	grayRight := grayText
	grayRight.Align = align.Right

	customer := data.CustomerName
	if data.Phone != "" {
		customer = fmt.Sprintf("%s (%s)", customer, data.Phone)
	}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Customer: %s", customer), grayText),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.QuotationDate), grayRight),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Ship To: %s", data.ShippingAddress), grayText),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Delivery: %s", data.DeliveryDate), grayRight),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addPDFTableHeader adds the column header row for the items table.
func addPDFTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(3).Add(
				text.New("Description", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Ratings", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Make", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Qty", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Net Qty", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("List Price", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Disc %", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Net Price", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addPDFTableRow adds a single quotation row, with section headers rendered
// as a full-width highlighted band.
func addPDFTableRow(m core.Maroto, r ExportRow) {
	if r.IsHeader {
		bg := &props.Color{Red: 255, Green: 255, Blue: 224}
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(
					text.New(r.Description, props.Text{
						Size:  8,
						Style: fontstyle.Bold,
						Align: align.Left,
					}),
				).WithStyle(&props.Cell{BackgroundColor: bg}),
			),
		)
		return
	}

	baseText := props.Text{
		Size:  7,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(3).Add(text.New(r.Description, leftText)),
			col.New(1).Add(text.New(r.Ratings, baseText)),
			col.New(1).Add(text.New(r.Make, baseText)),
			col.New(1).Add(text.New(FormatQty(float64(r.Quantity)), rightText)),
			col.New(1).Add(text.New(FormatQty(float64(r.NetQty)), rightText)),
			col.New(2).Add(text.New(FormatINR(r.ListPrice), rightText)),
			col.New(1).Add(text.New(fmt.Sprintf("%.1f%%", r.DiscountPercent), baseText)),
			col.New(2).Add(text.New(FormatINR(r.DiscGrossPrice), rightText)),
		),
	)
}

// addPDFSummary adds the totals section at the bottom of the PDF.
func addPDFSummary(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := labelStyle

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("LP Gross Total", labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(FormatINR(data.LPTotal), valueStyle),
			).WithStyle(summaryCell),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("Net After Discount", labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(FormatINR(data.NetTotal), valueStyle),
			).WithStyle(summaryCell),
		),
	)
}

// addPDFFooter adds the generated-date line at the bottom.
func addPDFFooter(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.QuotationDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
