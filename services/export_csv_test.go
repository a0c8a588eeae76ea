package services

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestGenerateCSV(t *testing.T) {
	result, err := GenerateCSV(sampleExportData())
	if err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(result))).ReadAll()
	if err != nil {
		t.Fatalf("result is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3 (header + 2 rows)", len(records))
	}
	if records[0][0] != "section" || records[0][11] != "lp_gross_price" {
		t.Errorf("header row = %v", records[0])
	}

	// Section pseudo row leaves the derived columns blank.
	sectionRow := records[1]
	if sectionRow[1] != "Incomer Section" {
		t.Errorf("section description = %q", sectionRow[1])
	}
	if sectionRow[9] != "" || sectionRow[10] != "" || sectionRow[11] != "" {
		t.Errorf("section derived columns not blank: %v", sectionRow)
	}

	itemRow := records[2]
	if itemRow[1] != "MCCB 100A" {
		t.Errorf("item description = %q", itemRow[1])
	}
	if itemRow[7] != "1000.00" {
		t.Errorf("list price = %q, want 1000.00", itemRow[7])
	}
	if itemRow[10] != "1800.00" {
		t.Errorf("disc gross = %q, want 1800.00", itemRow[10])
	}
	if itemRow[11] != "2000.00" {
		t.Errorf("lp gross = %q, want 2000.00", itemRow[11])
	}
}

func TestGenerateCSV_Empty(t *testing.T) {
	result, err := GenerateCSV(ExportData{})
	if err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(result)), "\n")
	if len(lines) != 1 {
		t.Errorf("empty data should produce header only, got %d lines", len(lines))
	}
}

func TestBuildExportRows(t *testing.T) {
	doc := NewDocument()
	doc.AddHeader("Feeders")
	doc.AddProduct(LineItem{
		Section: "Feeders", Description: "MCB 32A", Make: "Legrand",
		Material: "FR", Quantity: 6, ListPrice: 250, DiscountPercent: 10,
	}, 100)

	rows := BuildExportRows(doc)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if !rows[0].IsHeader || rows[0].Description != "Feeders" {
		t.Errorf("row 0 = %+v, want header Feeders", rows[0])
	}
	if rows[1].IsHeader || rows[1].NetQty != 6 {
		t.Errorf("row 1 = %+v, want item with net qty 6", rows[1])
	}
	if rows[1].DiscGrossPrice != 1350 {
		t.Errorf("DiscGrossPrice = %v, want 1350", rows[1].DiscGrossPrice)
	}
}
