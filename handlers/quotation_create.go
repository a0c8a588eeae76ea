package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemaker/services"
)

// HandleQuotationCreate processes the quotation creation form. Picking a
// known customer autofills phone and shipping address from the catalog;
// submitted values win over autofill.
func HandleQuotationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			log.Printf("quotation_create: could not parse form: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		quotationNo := strings.TrimSpace(e.Request.FormValue("quotation_no"))
		if quotationNo == "" {
			return ErrorToast(e, http.StatusBadRequest, "Quotation number is required")
		}

		existing, _ := app.FindRecordsByFilter(
			"quotations", "quotation_no = {:no}", "", 1, 0,
			map[string]any{"no": quotationNo},
		)
		if len(existing) > 0 {
			return ErrorToast(e, http.StatusBadRequest, "A quotation with this number already exists")
		}

		customerName := strings.TrimSpace(e.Request.FormValue("customer_name"))
		phone := strings.TrimSpace(e.Request.FormValue("phone"))
		address := strings.TrimSpace(e.Request.FormValue("shipping_address"))

		if customerName != "" && (phone == "" || address == "") {
			for _, c := range services.ListCustomers(app) {
				if strings.EqualFold(c.Name, customerName) {
					if phone == "" {
						phone = c.Phone
					}
					if address == "" {
						address = c.Address
					}
					break
				}
			}
		}

		cashDiscount, _ := strconv.ParseFloat(e.Request.FormValue("cash_discount_percent"), 64)

		col, err := app.FindCollectionByNameOrId("quotations")
		if err != nil {
			log.Printf("quotation_create: could not find quotations collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Internal error")
		}

		record := core.NewRecord(col)
		record.Set("quotation_no", quotationNo)
		record.Set("customer_name", customerName)
		record.Set("phone", phone)
		record.Set("shipping_address", address)
		record.Set("quotation_date", e.Request.FormValue("quotation_date"))
		record.Set("delivery_date", e.Request.FormValue("delivery_date"))
		record.Set("cash_discount_percent", cashDiscount)

		if err := app.Save(record); err != nil {
			log.Printf("quotation_create: could not save quotation: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Internal error")
		}

		SetToast(e, "success", "Quotation created")
		return e.JSON(http.StatusOK, map[string]any{
			"id":           record.Id,
			"quotation_no": quotationNo,
		})
	}
}
