package parse

import (
	"fmt"
	"strconv"

	"github.com/claritydocs/bizdoc-extractor/internal/models"
)

// Patch operations layer human corrections on top of extraction output. Each
// call replaces exactly one field or one item; derived fields are never
// recomputed, so editing a total_price leaves tax_amount untouched. Unknown
// field names and out-of-range indexes are contract violations and return an
// error.

// SetField replaces one scalar field on the document, addressed by its
// canonical (snake_case) name.
func SetField(doc *models.CanonicalDocument, name, value string) error {
	switch name {
	case "document_type":
		switch models.DocumentType(value) {
		case models.TypeDelivery, models.TypeInvoice, models.TypeOrder, models.TypeQuotation:
			doc.DocumentType = models.DocumentType(value)
		default:
			return fmt.Errorf("invalid document_type %q", value)
		}
	case "document_number":
		doc.DocumentNumber = value
	case "version":
		doc.Version = value
	case "company_name":
		doc.CompanyName = value
	case "company_address":
		doc.CompanyAddress = value
	case "company_postal_code":
		doc.CompanyPostalCode = value
	case "company_phone":
		doc.CompanyPhone = value
	case "company_registration_number":
		doc.CompanyRegistrationNumber = value
	case "company_contact":
		doc.CompanyContact = value
	case "client_name":
		doc.ClientName = value
	case "client_address":
		doc.ClientAddress = value
	case "client_postal_code":
		doc.ClientPostalCode = value
	case "issue_date":
		doc.IssueDate = value
	case "expiry_date":
		doc.ExpiryDate = value
	case "closing_date":
		doc.ClosingDate = value
	case "collection_date":
		doc.CollectionDate = value
	case "total_amount":
		doc.TotalAmount = value
	case "total_tax":
		doc.TotalTax = value
	case "grand_total":
		doc.GrandTotal = value
	case "consumption_tax_display":
		n, err := parseEnum(value, models.TaxExclusive, models.TaxInclusive)
		if err != nil {
			return fmt.Errorf("consumption_tax_display: %w", err)
		}
		doc.ConsumptionTaxDisplay = n
	case "fraction_calculation":
		n, err := parseEnum(value, models.FractionFloor, models.FractionRound)
		if err != nil {
			return fmt.Errorf("fraction_calculation: %w", err)
		}
		doc.FractionCalculation = n
	case "bank_account_type":
		n, err := parseEnum(value, models.AccountSavings, models.AccountCurrent)
		if err != nil {
			return fmt.Errorf("bank_account_type: %w", err)
		}
		doc.BankAccountType = n
	case "subject":
		doc.Subject = value
	case "remarks":
		doc.Remarks = value
	case "bank_name":
		doc.BankName = value
	case "bank_branch_name":
		doc.BankBranchName = value
	case "bank_account_name":
		doc.BankAccountName = value
	case "bank_account_number":
		doc.BankAccountNumber = value
	case "delivery_date":
		doc.Details = ensureDetails(doc.Details)
		doc.Details.DeliveryDate = value
	case "delivery_place":
		doc.Details = ensureDetails(doc.Details)
		doc.Details.DeliveryPlace = value
	case "payment_terms":
		doc.Details = ensureDetails(doc.Details)
		doc.Details.PaymentTerms = value
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

// AddItem appends one item to the document.
func AddItem(doc *models.CanonicalDocument, item models.LineItem) {
	doc.Items = append(doc.Items, item)
}

// ReplaceItem replaces the item at index i.
func ReplaceItem(doc *models.CanonicalDocument, i int, item models.LineItem) error {
	if i < 0 || i >= len(doc.Items) {
		return fmt.Errorf("item index %d out of range (have %d items)", i, len(doc.Items))
	}
	doc.Items[i] = item
	return nil
}

// RemoveItem deletes the item at index i, preserving the order of the rest.
func RemoveItem(doc *models.CanonicalDocument, i int) error {
	if i < 0 || i >= len(doc.Items) {
		return fmt.Errorf("item index %d out of range (have %d items)", i, len(doc.Items))
	}
	doc.Items = append(doc.Items[:i], doc.Items[i+1:]...)
	return nil
}

// SetItemField replaces one field on the item at index i.
func SetItemField(doc *models.CanonicalDocument, i int, name, value string) error {
	if i < 0 || i >= len(doc.Items) {
		return fmt.Errorf("item index %d out of range (have %d items)", i, len(doc.Items))
	}
	item := &doc.Items[i]
	switch name {
	case "product_name":
		item.ProductName = value
	case "unit":
		item.Unit = value
	case "quantity":
		item.Quantity = value
	case "unit_price":
		item.UnitPrice = value
	case "total_price":
		// Deliberately no tax_amount recomputation: patches are isolated.
		item.TotalPrice = value
	case "tax_rate":
		item.TaxRate = value
	case "tax_amount":
		item.TaxAmount = value
	case "remarks":
		item.Remarks = value
	case "sales_amount":
		item.SalesAmount = value
	case "sales_date":
		item.SalesDate = value
	case "product_code":
		item.ProductCode = value
	default:
		return fmt.Errorf("unknown item field %q", name)
	}
	return nil
}

func parseEnum(value string, min, max int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", value)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("value %d out of range [%d,%d]", n, min, max)
	}
	return n, nil
}
