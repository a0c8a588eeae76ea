package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemaker/services"
)

// setItemFields writes a derived line item onto a quotation_items record.
func setItemFields(r *core.Record, item services.LineItem) {
	rowType := "item"
	if item.IsHeader() {
		rowType = "header"
	}
	r.Set("row_type", rowType)
	r.Set("section", item.Section)
	r.Set("description", item.Description)
	r.Set("ratings", item.Ratings)
	r.Set("make", item.Make)
	r.Set("material", item.Material)
	r.Set("quantity", item.Quantity)
	r.Set("net_qty", item.NetQty)
	r.Set("list_price", item.ListPrice)
	r.Set("discount_percent", item.DiscountPercent)
	r.Set("disc_unit_price", item.DiscUnitPrice)
	r.Set("disc_gross_price", item.DiscGrossPrice)
	r.Set("lp_gross_price", item.LPGrossPrice)
}

// nextSortOrder returns a sort order past every existing row.
func nextSortOrder(records []*core.Record) int {
	if len(records) == 0 {
		return 1
	}
	return records[len(records)-1].GetInt("sort_order") + 1
}

// HandleAddSection appends a section-header row to a quotation.
func HandleAddSection(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing quotation ID")
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Section name is required")
		}

		doc, records, err := loadQuotationDocument(app, quotationID)
		if err != nil {
			log.Printf("items: HandleAddSection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if err := doc.AddHeader(name); err != nil {
			if errors.Is(err, services.ErrDuplicateSection) {
				return ErrorToast(e, http.StatusBadRequest, "A section with this name already exists")
			}
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		col, err := app.FindCollectionByNameOrId("quotation_items")
		if err != nil {
			log.Printf("items: HandleAddSection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Internal error")
		}

		rows := doc.Rows()
		record := core.NewRecord(col)
		record.Set("quotation", quotationID)
		record.Set("sort_order", nextSortOrder(records))
		setItemFields(record, rows[len(rows)-1])
		if err := app.Save(record); err != nil {
			log.Printf("items: HandleAddSection: save: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Section added")
		return e.JSON(http.StatusOK, map[string]any{"rows": rows})
	}
}

// HandleAddProduct appends a product row. The catalog resolves stock,
// ratings, list price and default discount; submitted price fields win
// over catalog values.
func HandleAddProduct(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing quotation ID")
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		description := strings.TrimSpace(e.Request.FormValue("description"))
		if description == "" {
			return ErrorToast(e, http.StatusBadRequest, "Description is required")
		}
		itemMake := strings.TrimSpace(e.Request.FormValue("make"))
		material := strings.TrimSpace(e.Request.FormValue("material"))

		catalogItem, ok := services.FindInventoryItem(app, description, itemMake, material)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Item not found in catalog")
		}

		quantity, _ := strconv.Atoi(e.Request.FormValue("quantity"))
		if quantity <= 0 {
			return ErrorToast(e, http.StatusBadRequest, "Quantity must be positive")
		}
		// Blank net qty defaults to quantity later; garbage is rejected.
		netQty := 0
		if v := strings.TrimSpace(e.Request.FormValue("net_qty")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				perr := &services.ParseError{Input: v}
				return ErrorToast(e, http.StatusBadRequest, perr.Error())
			}
			netQty = n
		}

		listPrice := catalogItem.ListPrice
		if v := e.Request.FormValue("list_price"); v != "" {
			listPrice, _ = strconv.ParseFloat(v, 64)
		}
		discount := catalogItem.DiscountPercent
		if v := e.Request.FormValue("discount_percent"); v != "" {
			discount, _ = strconv.ParseFloat(v, 64)
		}

		doc, records, err := loadQuotationDocument(app, quotationID)
		if err != nil {
			log.Printf("items: HandleAddProduct: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		item := services.LineItem{
			Section:         strings.TrimSpace(e.Request.FormValue("section")),
			Description:     description,
			Ratings:         catalogItem.Ratings,
			Make:            itemMake,
			Material:        material,
			Quantity:        quantity,
			NetQty:          netQty,
			ListPrice:       listPrice,
			DiscountPercent: discount,
		}

		if err := doc.AddProduct(item, catalogItem.TotalQuantity); err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientStock):
				return ErrorToast(e, http.StatusBadRequest, "Requested quantity exceeds available stock")
			case errors.Is(err, services.ErrDuplicateItem):
				return ErrorToast(e, http.StatusBadRequest, "An identical item already exists in the quotation")
			default:
				return ErrorToast(e, http.StatusBadRequest, err.Error())
			}
		}

		col, err := app.FindCollectionByNameOrId("quotation_items")
		if err != nil {
			log.Printf("items: HandleAddProduct: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Internal error")
		}

		rows := doc.Rows()
		record := core.NewRecord(col)
		record.Set("quotation", quotationID)
		record.Set("sort_order", nextSortOrder(records))
		setItemFields(record, rows[len(rows)-1])
		if err := app.Save(record); err != nil {
			log.Printf("items: HandleAddProduct: save: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Item added")
		lpTotal, netTotal := doc.Totals()
		return e.JSON(http.StatusOK, map[string]any{
			"rows":      rows,
			"lp_total":  lpTotal,
			"net_total": netTotal,
		})
	}
}

// patchFromForm builds an ItemPatch from the submitted fields. Absent
// fields stay nil and leave the row untouched.
func patchFromForm(e *core.RequestEvent) (services.ItemPatch, error) {
	var patch services.ItemPatch

	setString := func(field string, dst **string) {
		if vs, ok := e.Request.Form[field]; ok && len(vs) > 0 {
			v := strings.TrimSpace(vs[0])
			*dst = &v
		}
	}
	setString("description", &patch.Description)
	setString("ratings", &patch.Ratings)
	setString("make", &patch.Make)
	setString("material", &patch.Material)
	setString("section", &patch.Section)

	if vs, ok := e.Request.Form["quantity"]; ok && len(vs) > 0 {
		v, err := strconv.Atoi(vs[0])
		if err != nil {
			return patch, &services.ParseError{Input: vs[0]}
		}
		patch.Quantity = &v
	}
	if vs, ok := e.Request.Form["net_qty"]; ok && len(vs) > 0 {
		v, err := strconv.Atoi(vs[0])
		if err != nil {
			return patch, &services.ParseError{Input: vs[0]}
		}
		patch.NetQty = &v
	}
	if vs, ok := e.Request.Form["list_price"]; ok && len(vs) > 0 {
		v, err := strconv.ParseFloat(vs[0], 64)
		if err != nil {
			return patch, &services.ParseError{Input: vs[0]}
		}
		patch.ListPrice = &v
	}
	if vs, ok := e.Request.Form["discount_percent"]; ok && len(vs) > 0 {
		v, err := strconv.ParseFloat(vs[0], 64)
		if err != nil {
			return patch, &services.ParseError{Input: vs[0]}
		}
		patch.DiscountPercent = &v
	}

	return patch, nil
}

// HandlePatchItem edits one row by position and re-derives its prices.
func HandlePatchItem(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		index, err := strconv.Atoi(e.Request.PathValue("index"))
		if quotationID == "" || err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Missing quotation ID or row index")
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		patch, err := patchFromForm(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		doc, records, err := loadQuotationDocument(app, quotationID)
		if err != nil {
			log.Printf("items: HandlePatchItem: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if err := doc.Edit(index, patch); err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		setItemFields(records[index], doc.Rows()[index])
		if err := app.Save(records[index]); err != nil {
			log.Printf("items: HandlePatchItem: save: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		lpTotal, netTotal := doc.Totals()
		return e.JSON(http.StatusOK, map[string]any{
			"row":       doc.Rows()[index],
			"lp_total":  lpTotal,
			"net_total": netTotal,
		})
	}
}

// HandleDeleteItem removes one row by position.
func HandleDeleteItem(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		index, err := strconv.Atoi(e.Request.PathValue("index"))
		if quotationID == "" || err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Missing quotation ID or row index")
		}

		doc, records, err := loadQuotationDocument(app, quotationID)
		if err != nil {
			log.Printf("items: HandleDeleteItem: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if err := doc.Delete(index); err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		if err := app.Delete(records[index]); err != nil {
			log.Printf("items: HandleDeleteItem: delete: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Row deleted")
		lpTotal, netTotal := doc.Totals()
		return e.JSON(http.StatusOK, map[string]any{
			"rows":      doc.Rows(),
			"lp_total":  lpTotal,
			"net_total": netTotal,
		})
	}
}

// HandleClearItems removes every row of a quotation.
func HandleClearItems(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing quotation ID")
		}

		_, records, err := loadQuotationDocument(app, quotationID)
		if err != nil {
			log.Printf("items: HandleClearItems: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		// All rows go in one transaction so a failure clears nothing.
		err = app.RunInTransaction(func(txApp core.App) error {
			for _, r := range records {
				if err := txApp.Delete(r); err != nil {
					return fmt.Errorf("delete row %s: %w", r.Id, err)
				}
			}
			return nil
		})
		if err != nil {
			log.Printf("items: HandleClearItems: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "All rows cleared")
		return e.JSON(http.StatusOK, map[string]any{"rows": []services.LineItem{}})
	}
}
