package parse

import (
	"testing"

	"github.com/claritydocs/bizdoc-extractor/internal/models"
)

func TestSetField(t *testing.T) {
	doc := newDoc()

	if err := SetField(doc, "company_name", "株式会社テスト"); err != nil {
		t.Fatalf("SetField company_name: %v", err)
	}
	if doc.CompanyName != "株式会社テスト" {
		t.Errorf("company_name = %q", doc.CompanyName)
	}

	if err := SetField(doc, "document_type", "invoice"); err != nil {
		t.Fatalf("SetField document_type: %v", err)
	}
	if doc.DocumentType != models.TypeInvoice {
		t.Errorf("document_type = %q", doc.DocumentType)
	}

	if err := SetField(doc, "fraction_calculation", "0"); err != nil {
		t.Fatalf("SetField fraction_calculation: %v", err)
	}
	if doc.FractionCalculation != models.FractionFloor {
		t.Errorf("fraction_calculation = %d", doc.FractionCalculation)
	}

	if err := SetField(doc, "delivery_date", "2024/05/01"); err != nil {
		t.Fatalf("SetField delivery_date: %v", err)
	}
	if doc.Details == nil || doc.Details.DeliveryDate != "2024/05/01" {
		t.Errorf("details = %+v", doc.Details)
	}
}

func TestSetFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"unknown field", "no_such_field", "x"},
		{"invalid document type", "document_type", "receipt"},
		{"enum out of range", "consumption_tax_display", "5"},
		{"enum not an integer", "bank_account_type", "savings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := newDoc()
			if err := SetField(doc, tt.field, tt.value); err == nil {
				t.Errorf("SetField(%q, %q) succeeded, want error", tt.field, tt.value)
			}
		})
	}
}

func TestItemPatches(t *testing.T) {
	doc := newDoc()
	AddItem(doc, models.LineItem{ProductName: "Widget", TotalPrice: "5,000", TaxAmount: "500"})
	AddItem(doc, models.LineItem{ProductName: "Gadget", TotalPrice: "2,000", TaxAmount: "200"})

	if err := ReplaceItem(doc, 1, models.LineItem{ProductName: "Sprocket"}); err != nil {
		t.Fatalf("ReplaceItem: %v", err)
	}
	if doc.Items[1].ProductName != "Sprocket" {
		t.Errorf("items[1] = %+v", doc.Items[1])
	}

	if err := RemoveItem(doc, 0); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if len(doc.Items) != 1 || doc.Items[0].ProductName != "Sprocket" {
		t.Errorf("items = %+v", doc.Items)
	}

	if err := ReplaceItem(doc, 5, models.LineItem{}); err == nil {
		t.Error("ReplaceItem out of range succeeded, want error")
	}
	if err := RemoveItem(doc, -1); err == nil {
		t.Error("RemoveItem negative index succeeded, want error")
	}
	if err := SetItemField(doc, 3, "unit", "pcs"); err == nil {
		t.Error("SetItemField out of range succeeded, want error")
	}
	if err := SetItemField(doc, 0, "no_such_field", "x"); err == nil {
		t.Error("SetItemField unknown field succeeded, want error")
	}
}

// Corrections never cascade: editing a total leaves the previously derived
// tax amount alone.
func TestSetItemFieldDoesNotRecomputeTax(t *testing.T) {
	doc := newDoc()
	AddItem(doc, models.LineItem{ProductName: "Widget", TotalPrice: "5,000", TaxRate: "10", TaxAmount: "500"})

	if err := SetItemField(doc, 0, "total_price", "8,000"); err != nil {
		t.Fatalf("SetItemField: %v", err)
	}
	if doc.Items[0].TotalPrice != "8,000" {
		t.Errorf("total_price = %q", doc.Items[0].TotalPrice)
	}
	if doc.Items[0].TaxAmount != "500" {
		t.Errorf("tax_amount = %q, want the original 500", doc.Items[0].TaxAmount)
	}
}
