package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuotationList returns all quotations, newest first.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("quotations", "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("quotation_list: %v", err)
			records = nil
		}

		quotations := make([]map[string]any, 0, len(records))
		for _, r := range records {
			quotations = append(quotations, map[string]any{
				"id":             r.Id,
				"quotation_no":   r.GetString("quotation_no"),
				"customer_name":  r.GetString("customer_name"),
				"quotation_date": r.GetString("quotation_date"),
				"delivery_date":  r.GetString("delivery_date"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{"quotations": quotations})
	}
}

// HandleQuotationDelete deletes a quotation; its rows cascade.
func HandleQuotationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing quotation ID")
		}

		record, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("quotation_delete: error deleting %s: %v", quotationID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quotation deleted")
		return e.JSON(http.StatusOK, map[string]any{"deleted": quotationID})
	}
}
