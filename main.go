package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemaker/collections"
	"quotemaker/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/customers", handlers.HandleCustomerList(app))
		se.Router.GET("/categories", handlers.HandleCategoryList(app))
		se.Router.POST("/categories", handlers.HandleCategoryCreate(app))
		se.Router.GET("/inventory", handlers.HandleInventoryList(app))

		// ── Quotation CRUD ───────────────────────────────────────
		se.Router.GET("/quotations", handlers.HandleQuotationList(app))
		se.Router.POST("/quotations", handlers.HandleQuotationCreate(app))
		se.Router.GET("/quotations/{id}", handlers.HandleQuotationView(app))
		se.Router.DELETE("/quotations/{id}", handlers.HandleQuotationDelete(app))

		// ── Quotation rows ───────────────────────────────────────
		se.Router.POST("/quotations/{id}/sections", handlers.HandleAddSection(app))
		se.Router.POST("/quotations/{id}/items", handlers.HandleAddProduct(app))
		se.Router.PATCH("/quotations/{id}/items/{index}", handlers.HandlePatchItem(app))
		se.Router.DELETE("/quotations/{id}/items/{index}", handlers.HandleDeleteItem(app))
		se.Router.DELETE("/quotations/{id}/items", handlers.HandleClearItems(app))

		// ── Quotation export ─────────────────────────────────────
		se.Router.GET("/quotations/{id}/export/csv", handlers.HandleExportCSV(app))
		se.Router.GET("/quotations/{id}/export/excel", handlers.HandleExportExcel(app))
		se.Router.GET("/quotations/{id}/export/pdf", handlers.HandleExportPDF(app))

		// ── Fabrication calculators ──────────────────────────────
		se.Router.POST("/calc/enclosure", handlers.HandleCalcEnclosure(app))
		se.Router.POST("/calc/enclosure/percent", handlers.HandleCalcEnclosurePercent(app))
		se.Router.POST("/calc/wiring", handlers.HandleCalcWiring(app))
		se.Router.POST("/calc/busbar/sections", handlers.HandleCalcBusbarSection(app))
		se.Router.POST("/calc/busbar", handlers.HandleCalcBusbar(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
