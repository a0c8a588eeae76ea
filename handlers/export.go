package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemaker/services"
)

// buildExportData fetches the quotation and all rows, returning an
// ExportData struct for the CSV/Excel/PDF renderers.
func buildExportData(app *pocketbase.PocketBase, quotationID string) (services.ExportData, error) {
	quotation, err := app.FindRecordById("quotations", quotationID)
	if err != nil {
		return services.ExportData{}, fmt.Errorf("quotation not found: %w", err)
	}

	doc, _, err := loadQuotationDocument(app, quotationID)
	if err != nil {
		return services.ExportData{}, err
	}

	lpTotal, netTotal := doc.Totals()

	return services.ExportData{
		QuotationNo:     quotation.GetString("quotation_no"),
		CustomerName:    quotation.GetString("customer_name"),
		Phone:           quotation.GetString("phone"),
		ShippingAddress: quotation.GetString("shipping_address"),
		QuotationDate:   quotation.GetString("quotation_date"),
		DeliveryDate:    quotation.GetString("delivery_date"),
		Rows:            services.BuildExportRows(doc),
		LPTotal:         lpTotal,
		NetTotal:        netTotal,
	}, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleExportCSV returns a handler that generates and downloads a CSV dump
// of the quotation rows.
func HandleExportCSV(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		data, err := buildExportData(app, quotationID)
		if err != nil {
			log.Printf("export_csv: %v", err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		csvBytes, err := services.GenerateCSV(data)
		if err != nil {
			log.Printf("export_csv: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate CSV file")
		}

		filename := fmt.Sprintf("Quotation_%s.csv", sanitizeFilename(data.QuotationNo))

		e.Response.Header().Set("Content-Type", "text/csv")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(csvBytes)
		return nil
	}
}

// HandleExportExcel returns a handler that generates and downloads an Excel
// workbook for a quotation.
func HandleExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		data, err := buildExportData(app, quotationID)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		xlsxBytes, err := services.GenerateExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Quotation_%s.xlsx", sanitizeFilename(data.QuotationNo))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleExportPDF returns a handler that generates and downloads a PDF file
// for a quotation.
func HandleExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		data, err := buildExportData(app, quotationID)
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		pdfBytes, err := services.GeneratePDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Quotation_%s.pdf", sanitizeFilename(data.QuotationNo))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
