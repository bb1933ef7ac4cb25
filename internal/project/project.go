// Package project maps a canonical document into one of the four
// destination-specific record shapes. Projection is a pure reshape: fields
// are renamed and regrouped per a static mapping, items are correlated by
// position, and no monetary value is recomputed.
package project

import (
	"github.com/claritydocs/bizdoc-extractor/internal/models"
)

// Project dispatches on the document type and returns the matching
// destination record. The result is one of DeliveryRecord, InvoiceRecord,
// OrderRecord or QuotationRecord.
func Project(doc *models.CanonicalDocument) any {
	switch doc.DocumentType {
	case models.TypeInvoice:
		return Invoice(doc)
	case models.TypeOrder:
		return Order(doc)
	case models.TypeQuotation:
		return Quotation(doc)
	default:
		return Delivery(doc)
	}
}

// Delivery reshapes the canonical record into the delivery-slip destination
// shape. The delivery date is the canonical issue date under a new name.
func Delivery(doc *models.CanonicalDocument) *models.DeliveryRecord {
	items := make([]models.DeliveryItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, models.DeliveryItem{
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			TotalPrice:  it.TotalPrice,
			TaxRate:     it.TaxRate,
			TaxAmount:   it.TaxAmount,
			Remarks:     it.Remarks,
		})
	}
	return &models.DeliveryRecord{
		TotalAmount:           doc.TotalAmount,
		TotalTax:              doc.TotalTax,
		ConsumptionTaxDisplay: doc.ConsumptionTaxDisplay,
		FractionCalculation:   doc.FractionCalculation,
		DeliveryDate:          doc.IssueDate,
		Remarks:               doc.Remarks,
		Items:                 items,
	}
}

// Invoice reshapes the canonical record into the invoice destination shape.
// The grand total surfaces twice, as total_purchase and amount_billed.
func Invoice(doc *models.CanonicalDocument) *models.InvoiceRecord {
	items := make([]models.InvoiceItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, models.InvoiceItem{
			ProductName: it.ProductName,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			SalesAmount: it.SalesAmount,
			TaxRate:     it.TaxRate,
			TaxAmount:   it.TaxAmount,
			Remarks:     it.Remarks,
			SalesDate:   it.SalesDate,
		})
	}
	return &models.InvoiceRecord{
		ClientName:            doc.ClientName,
		IssueDate:             doc.IssueDate,
		ClosingDate:           doc.ClosingDate,
		CollectionDate:        doc.CollectionDate,
		ConsumptionTaxDisplay: doc.ConsumptionTaxDisplay,
		FractionCalculation:   doc.FractionCalculation,
		PurchaseAmount:        doc.TotalAmount,
		ConsumptionTaxAmount:  doc.TotalTax,
		TotalPurchase:         doc.GrandTotal,
		AmountBilled:          doc.GrandTotal,
		BankName:              doc.BankName,
		BankAccountName:       doc.BankAccountName,
		BankBranchName:        doc.BankBranchName,
		BankAccountType:       doc.BankAccountType,
		BankAccountNumber:     doc.BankAccountNumber,
		Items:                 items,
	}
}

// Order reshapes the canonical record into the purchase-order destination
// shape.
func Order(doc *models.CanonicalDocument) *models.OrderRecord {
	items := make([]models.OrderItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, models.OrderItem{
			ProductName: it.ProductName,
			ProductCode: it.ProductCode,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
			TaxRate:     it.TaxRate,
			TaxAmount:   it.TaxAmount,
			Remarks:     it.Remarks,
		})
	}
	return &models.OrderRecord{
		TotalAmount:           doc.TotalAmount,
		TotalTax:              doc.TotalTax,
		GrandTotal:            doc.GrandTotal,
		ConsumptionTaxDisplay: doc.ConsumptionTaxDisplay,
		FractionCalculation:   doc.FractionCalculation,
		OrderDate:             doc.IssueDate,
		Items:                 items,
		Details:               doc.Details,
	}
}

// Quotation reshapes the canonical record into the quotation destination
// shape.
func Quotation(doc *models.CanonicalDocument) *models.QuotationRecord {
	items := make([]models.QuotationItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, models.QuotationItem{
			ProductName: it.ProductName,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			SalesAmount: it.SalesAmount,
			TaxRate:     it.TaxRate,
			TaxAmount:   it.TaxAmount,
			Remarks:     it.Remarks,
		})
	}
	return &models.QuotationRecord{
		QuotationNumber:       doc.DocumentNumber,
		Version:               doc.Version,
		TotalAmount:           doc.TotalAmount,
		TotalTax:              doc.TotalTax,
		ConsumptionTaxDisplay: doc.ConsumptionTaxDisplay,
		FractionCalculation:   doc.FractionCalculation,
		QuotationDate:         doc.IssueDate,
		ExpiryDate:            doc.ExpiryDate,
		Subject:               doc.Subject,
		Remarks:               doc.Remarks,
		Items:                 items,
		Details:               doc.Details,
	}
}
