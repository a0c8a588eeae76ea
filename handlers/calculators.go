package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemaker/services"
)

// enclosureRequest carries the working state of the sheet-metal calculator.
// Empty slices fall back to the seeded defaults. Edits are applied in order
// before recomputing, so row 0 autofill happens server side.
type enclosureRequest struct {
	SpecRows      []services.EnclosureSpecRow      `json:"spec_rows"`
	DimensionRows []services.EnclosureDimensionRow `json:"dimension_rows"`
	Edits         []dimensionEdit                  `json:"edits"`
}

type dimensionEdit struct {
	Index  int     `json:"index"`
	Column string  `json:"column"`
	Value  float64 `json:"value"`
}

// HandleCalcEnclosure recomputes the enclosure sheet-metal calculator.
func HandleCalcEnclosure(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req enclosureRequest
		if err := e.BindBody(&req); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid request body")
		}

		if len(req.SpecRows) == 0 {
			req.SpecRows = services.DefaultSpecRows()
		}
		if len(req.DimensionRows) == 0 {
			req.DimensionRows = services.DefaultDimensionRows()
		}
		for _, edit := range req.Edits {
			services.SetDimension(req.DimensionRows, edit.Index, edit.Column, edit.Value)
		}

		result := services.RecomputeEnclosure(req.SpecRows, req.DimensionRows)
		return e.JSON(http.StatusOK, map[string]any{
			"spec_rows": req.SpecRows,
			"result":    result,
		})
	}
}

// HandleCalcEnclosurePercent applies a percentage adjustment over the
// included gauge rows.
func HandleCalcEnclosurePercent(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req struct {
			SpecRows []services.EnclosureSpecRow `json:"spec_rows"`
			Percent  string                      `json:"percent"`
		}
		if err := e.BindBody(&req); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid request body")
		}

		adj, err := services.ApplyPercent(req.SpecRows, req.Percent)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}
		return e.JSON(http.StatusOK, adj)
	}
}

// HandleCalcWiring recomputes the wiring cost table. An empty request
// returns the seeded size/rate pairs.
func HandleCalcWiring(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req struct {
			Rows []services.WiringRow `json:"rows"`
		}
		if err := e.BindBody(&req); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid request body")
		}

		if len(req.Rows) == 0 {
			req.Rows = services.DefaultWiringRows()
		}
		return e.JSON(http.StatusOK, services.RecomputeWiring(req.Rows))
	}
}

// busbarDensity maps the material name to its density. Zero means no
// material selected; CalculateAll refuses that.
func busbarDensity(material string) float64 {
	switch material {
	case "aluminum":
		return services.DensityAluminum
	case "copper":
		return services.DensityCopper
	}
	return 0
}

// HandleCalcBusbarSection validates and appends a new busbar section to the
// submitted book.
func HandleCalcBusbarSection(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req struct {
			Sections []*services.BusbarSection `json:"sections"`
			Title    string                    `json:"title"`
		}
		if err := e.BindBody(&req); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid request body")
		}
		if req.Title == "" {
			return ErrorToast(e, http.StatusBadRequest, "Section title is required")
		}

		book := &services.BusbarBook{Sections: req.Sections}
		if _, err := book.AddSection(req.Title); err != nil {
			if errors.Is(err, services.ErrDuplicateBusbarSection) {
				return ErrorToast(e, http.StatusBadRequest, "A busbar section with this title already exists")
			}
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		return e.JSON(http.StatusOK, map[string]any{"sections": book.Sections})
	}
}

// HandleCalcBusbar computes every busbar row and the grand total across
// sections. Rows with unparseable input come back flagged; the rest
// still compute.
func HandleCalcBusbar(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req struct {
			Sections []*services.BusbarSection `json:"sections"`
			Material string                    `json:"material"`
		}
		if err := e.BindBody(&req); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid request body")
		}

		if err := services.CalculateAll(req.Sections, busbarDensity(req.Material)); err != nil {
			if errors.Is(err, services.ErrNoMaterialSelected) {
				return ErrorToast(e, http.StatusBadRequest, "Select a busbar material first")
			}
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		return e.JSON(http.StatusOK, map[string]any{
			"sections":    req.Sections,
			"grand_total": services.GrandTotal(req.Sections),
		})
	}
}
