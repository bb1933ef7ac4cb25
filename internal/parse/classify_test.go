package parse

import (
	"testing"

	"github.com/claritydocs/bizdoc-extractor/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.DocumentType
	}{
		{"japanese delivery slip", "納品書\n株式会社テスト", models.TypeDelivery},
		{"english delivery slip", "DELIVERY SLIP\nACME Co.", models.TypeDelivery},
		{"japanese invoice", "請求書\n合計 ¥5,500", models.TypeInvoice},
		{"english invoice", "Invoice No. INV-001", models.TypeInvoice},
		{"japanese order", "注文書\n納期: 2024/04/01", models.TypeOrder},
		{"english purchase order", "Purchase Order #PO-42", models.TypeOrder},
		{"japanese quotation", "見積書\n有効期限 2024/06/30", models.TypeQuotation},
		{"english estimate", "Estimate for construction work", models.TypeQuotation},
		{"empty input defaults to delivery", "", models.TypeDelivery},
		{"no keywords defaults to delivery", "こんにちは world", models.TypeDelivery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// A document carrying vocabulary of several types classifies by rule rank,
// not by keyword position or frequency.
func TestClassifyPriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.DocumentType
	}{
		{"invoice beats quotation", "見積書に基づく請求書", models.TypeInvoice},
		{"delivery beats invoice", "請求書に添付の納品書", models.TypeDelivery},
		{"order beats quotation", "quotation attached to purchase order", models.TypeOrder},
		{"invoice mentioned last still wins over quotation", "quotation quote estimate invoice", models.TypeInvoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
