package models

// Destination records are the four external-system-facing shapes derived from
// a CanonicalDocument. They carry no information of their own: projection is a
// pure field rename/reshape, with no recomputation of monetary values.

// DeliveryItem is one destination item row for a delivery slip.
type DeliveryItem struct {
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	Unit        string `json:"unit"`
	Quantity    string `json:"quantity"`
	TotalPrice  string `json:"total_price"`
	TaxRate     string `json:"tax_rate"`
	TaxAmount   string `json:"tax_amount"`
	Remarks     string `json:"remarks,omitempty"`
}

// DeliveryRecord is the delivery-slip destination shape.
type DeliveryRecord struct {
	TotalAmount           string         `json:"total_amount"`
	TotalTax              string         `json:"total_tax"`
	ConsumptionTaxDisplay int            `json:"consumption_tax_display"`
	FractionCalculation   int            `json:"fraction_calculation"`
	DeliveryDate          string         `json:"delivery_date"`
	Remarks               string         `json:"remarks,omitempty"`
	Items                 []DeliveryItem `json:"items"`
}

// InvoiceItem is one destination item row for an invoice.
type InvoiceItem struct {
	ProductName string `json:"product_name"`
	Unit        string `json:"unit"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	SalesAmount string `json:"sales_amount"`
	TaxRate     string `json:"tax_rate"`
	TaxAmount   string `json:"tax_amount"`
	Remarks     string `json:"remarks,omitempty"`
	SalesDate   string `json:"sales_date,omitempty"`
}

// InvoiceRecord is the invoice destination shape.
type InvoiceRecord struct {
	ClientName            string        `json:"client_name"`
	IssueDate             string        `json:"issue_date"`
	ClosingDate           string        `json:"closing_date,omitempty"`
	CollectionDate        string        `json:"collection_date,omitempty"`
	ConsumptionTaxDisplay int           `json:"consumption_tax_display"`
	FractionCalculation   int           `json:"fraction_calculation"`
	PurchaseAmount        string        `json:"purchase_amount"`
	ConsumptionTaxAmount  string        `json:"consumption_tax_amount"`
	TotalPurchase         string        `json:"total_purchase"`
	AmountBilled          string        `json:"amount_billed"`
	BankName              string        `json:"bank_name,omitempty"`
	BankAccountName       string        `json:"bank_account_name,omitempty"`
	BankBranchName        string        `json:"bank_branch_name,omitempty"`
	BankAccountType       int           `json:"bank_account_type,omitempty"`
	BankAccountNumber     string        `json:"bank_account_number,omitempty"`
	Items                 []InvoiceItem `json:"items"`
}

// OrderItem is one destination item row for a purchase order.
type OrderItem struct {
	ProductName string `json:"product_name"`
	ProductCode string `json:"product_code,omitempty"`
	Unit        string `json:"unit"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
	TaxRate     string `json:"tax_rate"`
	TaxAmount   string `json:"tax_amount"`
	Remarks     string `json:"remarks,omitempty"`
}

// OrderRecord is the purchase-order destination shape.
type OrderRecord struct {
	SpecialNotes          string      `json:"special_notes,omitempty"`
	TotalAmount           string      `json:"total_amount"`
	TotalTax              string      `json:"total_tax"`
	GrandTotal            string      `json:"grand_total"`
	ConsumptionTaxDisplay int         `json:"consumption_tax_display"`
	FractionCalculation   int         `json:"fraction_calculation"`
	OrderDate             string      `json:"order_date"`
	Items                 []OrderItem `json:"items"`
	Details               *Details    `json:"details,omitempty"`
}

// QuotationItem is one destination item row for a quotation.
type QuotationItem struct {
	ProductName string `json:"product_name"`
	Unit        string `json:"unit"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	SalesAmount string `json:"sales_amount"`
	TaxRate     string `json:"tax_rate"`
	TaxAmount   string `json:"tax_amount"`
	Remarks     string `json:"remarks,omitempty"`
}

// QuotationRecord is the quotation destination shape.
type QuotationRecord struct {
	QuotationNumber       string          `json:"quotation_number"`
	Version               string          `json:"version,omitempty"`
	TotalAmount           string          `json:"total_amount"`
	TotalTax              string          `json:"total_tax"`
	ConsumptionTaxDisplay int             `json:"consumption_tax_display"`
	FractionCalculation   int             `json:"fraction_calculation"`
	QuotationDate         string          `json:"quotation_date"`
	ExpiryDate            string          `json:"expiry_date,omitempty"`
	Subject               string          `json:"subject,omitempty"`
	Remarks               string          `json:"remarks,omitempty"`
	Items                 []QuotationItem `json:"items"`
	Details               *Details        `json:"details,omitempty"`
}
