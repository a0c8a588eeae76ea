package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemaker/services"
)

// HandleCustomerList returns all catalog customers for quotation autofill.
// An unreachable catalog yields an empty list, not an error.
func HandleCustomerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{
			"customers": services.ListCustomers(app),
		})
	}
}

// HandleCategoryList returns the category names, always including the
// implicit default.
func HandleCategoryList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{
			"categories": services.ListCategories(app),
		})
	}
}

// HandleCategoryCreate stores a new category from the submitted form.
func HandleCategoryCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Category name is required")
		}

		if err := services.CreateCategory(app, name); err != nil {
			log.Printf("catalog: HandleCategoryCreate: %v", err)
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		SetToast(e, "success", "Category created")
		return e.JSON(http.StatusOK, map[string]any{
			"categories": services.ListCategories(app),
		})
	}
}

// HandleInventoryList returns catalog items, optionally filtered by the
// category query parameter.
func HandleInventoryList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category := e.Request.URL.Query().Get("category")
		return e.JSON(http.StatusOK, map[string]any{
			"items": services.ListInventory(app, category),
		})
	}
}
