package services

import (
	"testing"
)

func TestGeneratePDF_BasicQuotation(t *testing.T) {
	result, err := GeneratePDF(sampleExportData())
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGeneratePDF_EmptyRows(t *testing.T) {
	data := ExportData{
		QuotationNo:   "QTN-2026-002",
		QuotationDate: "2026-08-01",
	}

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
}

func TestGeneratePDF_SectionBands(t *testing.T) {
	data := sampleExportData()
	data.Rows = append(data.Rows,
		ExportRow{IsHeader: true, Description: "Outgoing Feeders"},
		ExportRow{
			Section: "Outgoing Feeders", Description: "MCB 32A",
			Quantity: 12, NetQty: 12, ListPrice: 250, DiscountPercent: 15,
			DiscUnitPrice: 212.5, DiscGrossPrice: 2550, LPGrossPrice: 3000,
		},
	)

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
}
