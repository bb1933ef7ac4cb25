package models

// DocumentType identifies the kind of business document.
type DocumentType string

const (
	TypeDelivery  DocumentType = "delivery"
	TypeInvoice   DocumentType = "invoice"
	TypeOrder     DocumentType = "order"
	TypeQuotation DocumentType = "quotation"
)

// Tax display modes (consumption_tax_display).
const (
	TaxExclusive = 0
	TaxInclusive = 1
)

// Fraction calculation modes (fraction_calculation).
const (
	FractionFloor = 0
	FractionCeil  = 1
	FractionRound = 2
)

// Bank account types (bank_account_type).
const (
	AccountSavings = 1 // 普通
	AccountCurrent = 2 // 当座
)

// LineItem is one row of the goods/services table.
// All monetary fields keep the numeral formatting found in the source text
// (thousands separators preserved, currency glyphs stripped).
type LineItem struct {
	ProductName string `json:"product_name"`
	Unit        string `json:"unit"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
	TaxRate     string `json:"tax_rate"`
	TaxAmount   string `json:"tax_amount"` // always derived, never read from text
	Remarks     string `json:"remarks"`

	// Destination-specific extras.
	SalesAmount string `json:"sales_amount,omitempty"` // invoice/quotation
	SalesDate   string `json:"sales_date,omitempty"`   // invoice
	ProductCode string `json:"product_code,omitempty"` // order
}

// Details holds order/quotation delivery and payment terms.
type Details struct {
	DeliveryDate  string `json:"delivery_date,omitempty"`
	DeliveryPlace string `json:"delivery_place,omitempty"`
	PaymentTerms  string `json:"payment_terms,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// CanonicalDocument is the single normalized representation of one document,
// independent of its destination shape. It is built fresh per extraction call
// and mutated only through explicit patch operations.
type CanonicalDocument struct {
	DocumentType   DocumentType `json:"document_type"`
	DocumentNumber string       `json:"document_number"`
	Version        string       `json:"version,omitempty"` // quotations

	CompanyName               string `json:"company_name"`
	CompanyAddress            string `json:"company_address"`
	CompanyPostalCode         string `json:"company_postal_code"`
	CompanyPhone              string `json:"company_phone"`
	CompanyRegistrationNumber string `json:"company_registration_number"`
	CompanyContact            string `json:"company_contact,omitempty"`

	ClientName       string `json:"client_name"`
	ClientAddress    string `json:"client_address"`
	ClientPostalCode string `json:"client_postal_code"`

	IssueDate      string `json:"issue_date"`
	ExpiryDate     string `json:"expiry_date,omitempty"`     // quotations
	ClosingDate    string `json:"closing_date,omitempty"`    // invoices
	CollectionDate string `json:"collection_date,omitempty"` // invoices

	Items []LineItem `json:"items"`

	TotalAmount string `json:"total_amount"` // subtotal excluding tax
	TotalTax    string `json:"total_tax"`
	GrandTotal  string `json:"grand_total"`

	ConsumptionTaxDisplay int `json:"consumption_tax_display"` // 0 exclusive, 1 inclusive
	FractionCalculation   int `json:"fraction_calculation"`    // 0 floor, 1 ceil, 2 round

	Details *Details `json:"details,omitempty"` // order/quotation
	Subject string   `json:"subject,omitempty"` // quotations
	Remarks string   `json:"remarks,omitempty"`

	BankName          string `json:"bank_name,omitempty"` // invoices
	BankBranchName    string `json:"bank_branch_name,omitempty"`
	BankAccountName   string `json:"bank_account_name,omitempty"`
	BankAccountType   int    `json:"bank_account_type,omitempty"`
	BankAccountNumber string `json:"bank_account_number,omitempty"`

	// RawText is the verbatim input, retained for audit.
	RawText string `json:"raw_text,omitempty"`
}

// NewCanonicalDocument returns a document with the type-independent defaults:
// delivery type, tax-exclusive display, round-to-nearest fractions.
func NewCanonicalDocument() *CanonicalDocument {
	return &CanonicalDocument{
		DocumentType:          TypeDelivery,
		Items:                 []LineItem{},
		ConsumptionTaxDisplay: TaxExclusive,
		FractionCalculation:   FractionRound,
	}
}
