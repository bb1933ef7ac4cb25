package parse

import (
	"testing"

	"github.com/claritydocs/bizdoc-extractor/internal/models"
)

func TestParseItemsBasicTable(t *testing.T) {
	text := "納品書\n品名 数量 単位 単価 金額\nWidget 10 pcs ¥500 ¥5,000\n小計 ¥5,000"

	items := ParseItems(text)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}

	want := models.LineItem{
		ProductName: "Widget",
		Quantity:    "10",
		Unit:        "pcs",
		UnitPrice:   "500",
		TotalPrice:  "5,000",
		TaxRate:     "10",
		TaxAmount:   "500",
		SalesAmount: "5,000",
	}
	if items[0] != want {
		t.Errorf("item = %+v, want %+v", items[0], want)
	}
}

func TestParseItemLineGrammars(t *testing.T) {
	tests := []struct {
		name string
		line string
		want models.LineItem
	}{
		{
			"quantity before unit",
			"ボールペン 100 本 ¥150 ¥15,000",
			models.LineItem{ProductName: "ボールペン", Quantity: "100", Unit: "本", UnitPrice: "150", TotalPrice: "15,000", TaxRate: "10", TaxAmount: "1500", SalesAmount: "15,000"},
		},
		{
			"unit before quantity",
			"保守サービス 式 1 50,000 50,000",
			models.LineItem{ProductName: "保守サービス", Quantity: "1", Unit: "式", UnitPrice: "50,000", TotalPrice: "50,000", TaxRate: "10", TaxAmount: "5000", SalesAmount: "50,000"},
		},
		{
			"digits in the product name take the permissive form",
			"第3世代ウィジェット 5 個 300 1,500",
			models.LineItem{ProductName: "第3世代ウィジェット", Quantity: "5", Unit: "個", UnitPrice: "300", TotalPrice: "1,500", TaxRate: "10", TaxAmount: "150", SalesAmount: "1,500"},
		},
		{
			"multi-word unit stays on the first grammar",
			"Widget 10 blue box 500 5,000",
			models.LineItem{ProductName: "Widget", Quantity: "10", Unit: "blue box", UnitPrice: "500", TotalPrice: "5,000", TaxRate: "10", TaxAmount: "500", SalesAmount: "5,000"},
		},
		{
			"trailing remarks captured",
			"Widget 10 pcs 500 5,000 fragile",
			models.LineItem{ProductName: "Widget", Quantity: "10", Unit: "pcs", UnitPrice: "500", TotalPrice: "5,000", TaxRate: "10", TaxAmount: "500", Remarks: "fragile", SalesAmount: "5,000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseItemLine(tt.line)
			if !ok {
				t.Fatalf("parseItemLine(%q) did not match", tt.line)
			}
			if got != tt.want {
				t.Errorf("parseItemLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseItemsDropsNoiseLines(t *testing.T) {
	text := "品名 数量 単位 単価\nWidget 10 pcs 500 5,000\nいつもお世話になっております\nGadget 2 sets 1,000 2,000\n小計"

	items := ParseItems(text)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (noise line should be dropped)", len(items))
	}
	if items[0].ProductName != "Widget" || items[1].ProductName != "Gadget" {
		t.Errorf("items = %q, %q; want Widget, Gadget", items[0].ProductName, items[1].ProductName)
	}
}

// Multi-page documents repeat the column header; the repeats must not be
// parsed as rows.
func TestParseItemsSkipsRepeatedHeaders(t *testing.T) {
	text := "Product Qty Unit Cost Amt\nWidget 10 pcs 500 5,000\nProduct Qty Unit Cost Amt\nGadget 2 sets 1,000 2,000\n小計 7,000"

	items := ParseItems(text)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[1].ProductName != "Gadget" {
		t.Errorf("second item = %q, want Gadget", items[1].ProductName)
	}
}

func TestParseItemsNoTable(t *testing.T) {
	if items := ParseItems("請求書\n合計 ¥5,500"); items != nil {
		t.Errorf("got %v, want nil when no item header exists", items)
	}
}

func TestParseItemsStopsAtBlankLine(t *testing.T) {
	text := "品名 数量 単位 単価\nWidget 10 pcs 500 5,000\n\nGadget 2 sets 1,000 2,000"

	items := ParseItems(text)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1 (blank line ends the table)", len(items))
	}
}

func TestDeriveTaxAmount(t *testing.T) {
	tests := []struct {
		total string
		want  string
	}{
		{"1,000", "100"},
		{"5,000", "500"},
		{"999", "100"},
		{"5", "1"},
		{"0", "0"},
		{"", ""},
		{"N/A", ""},
	}

	for _, tt := range tests {
		if got := deriveTaxAmount(tt.total); got != tt.want {
			t.Errorf("deriveTaxAmount(%q) = %q, want %q", tt.total, got, tt.want)
		}
	}
}
