package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemaker/services"
)

// recordToLineItem maps one quotation_items record onto the pricing model.
func recordToLineItem(r *core.Record) services.LineItem {
	item := services.LineItem{
		Section:         r.GetString("section"),
		Description:     r.GetString("description"),
		Ratings:         r.GetString("ratings"),
		Make:            r.GetString("make"),
		Material:        r.GetString("material"),
		Quantity:        r.GetInt("quantity"),
		NetQty:          r.GetInt("net_qty"),
		ListPrice:       r.GetFloat("list_price"),
		DiscountPercent: r.GetFloat("discount_percent"),
	}
	if r.GetString("row_type") == "header" {
		item.Kind = services.RowKindHeader
	}
	return item
}

// loadQuotationDocument rebuilds the in-memory line item store for a
// quotation from its persisted rows. The returned records run parallel to
// the document rows, so row index i maps to records[i].
func loadQuotationDocument(app *pocketbase.PocketBase, quotationID string) (*services.Document, []*core.Record, error) {
	records, err := app.FindRecordsByFilter(
		"quotation_items",
		"quotation = {:quotation}",
		"sort_order", 0, 0,
		map[string]any{"quotation": quotationID},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("load quotation items: %w", err)
	}

	rows := make([]services.LineItem, len(records))
	for i, r := range records {
		rows[i] = recordToLineItem(r)
	}
	return services.NewDocumentFromRows(rows), records, nil
}

// HandleQuotationView returns the quotation with its rows, section groups
// and totals.
func HandleQuotationView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing quotation ID")
		}

		quotation, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		doc, _, err := loadQuotationDocument(app, quotationID)
		if err != nil {
			log.Printf("quotation_view: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		lpTotal, netTotal := doc.Totals()
		cashDiscount := quotation.GetFloat("cash_discount_percent")
		payable := services.Round2(netTotal * (1 - cashDiscount/100))

		return e.JSON(http.StatusOK, map[string]any{
			"quotation": map[string]any{
				"id":                    quotation.Id,
				"quotation_no":          quotation.GetString("quotation_no"),
				"customer_name":         quotation.GetString("customer_name"),
				"phone":                 quotation.GetString("phone"),
				"shipping_address":      quotation.GetString("shipping_address"),
				"quotation_date":        quotation.GetString("quotation_date"),
				"delivery_date":         quotation.GetString("delivery_date"),
				"cash_discount_percent": cashDiscount,
			},
			"rows":      doc.Rows(),
			"groups":    doc.Groups(),
			"lp_total":  lpTotal,
			"net_total": netTotal,
			"payable":   payable,
		})
	}
}
