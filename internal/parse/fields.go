package parse

import (
	"regexp"
	"strings"

	"github.com/claritydocs/bizdoc-extractor/internal/models"
)

// fieldRule is one ranked extraction rule: a bilingual pattern whose first
// submatch becomes the value of a single scalar field. Rules never fail; an
// unmatched pattern leaves the field as the empty string.
type fieldRule struct {
	name    string
	pattern *regexp.Regexp
	assign  func(doc *models.CanonicalDocument, value string)
}

// fieldRules is the full scalar rule library, evaluated in this order against
// the first occurrence in the text. The order itself carries no precedence
// between distinct fields; it is fixed so extraction stays deterministic.
var fieldRules = []fieldRule{
	{
		name:    "document_number",
		pattern: regexp.MustCompile(`(?i)(?:No\.|番号|#|注文番号|見積番号|請求書番号)[\s:]*([A-Z0-9-]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.DocumentNumber = v },
	},
	{
		name:    "version",
		pattern: regexp.MustCompile(`(?i)(?:version|ver|版)[\s:]*([0-9.]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.Version = v },
	},
	{
		name:    "issue_date",
		pattern: regexp.MustCompile(`(\d{4}年\d{1,2}月\d{1,2}日|\d{4}[-/]\d{1,2}[-/]\d{1,2}|\d{1,2}[-/]\d{1,2}[-/]\d{4})`),
		assign:  func(d *models.CanonicalDocument, v string) { d.IssueDate = v },
	},
	{
		name:    "expiry_date",
		pattern: regexp.MustCompile(`(?i)(?:有効期限|expiry|valid\s*until)[\s:]*(\d{4}[-/]\d{1,2}[-/]\d{1,2}|\d{4}年\d{1,2}月\d{1,2}日)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.ExpiryDate = v },
	},
	{
		name:    "closing_date",
		pattern: regexp.MustCompile(`(?i)(?:締切日|締日|closing\s*date)[\s:]*([^\n]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.ClosingDate = v },
	},
	{
		name:    "collection_date",
		pattern: regexp.MustCompile(`(?i)(?:回収予定日|回収日|collection\s*date)[\s:]*([^\n]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.CollectionDate = v },
	},
	{
		name:    "company_phone",
		pattern: regexp.MustCompile(`(?i)(?:電話|TEL|Phone)[\s:]*([0-9-]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.CompanyPhone = v },
	},
	{
		name:    "company_registration_number",
		pattern: regexp.MustCompile(`(?i)(?:登録番号|Registration\s*Number)[\s:]*([T0-9]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.CompanyRegistrationNumber = v },
	},
	{
		name:    "company_contact",
		pattern: regexp.MustCompile(`(?i)(?:担当|Contact)[\s:]*([^\n]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.CompanyContact = v },
	},
	{
		name:    "bank_name",
		pattern: regexp.MustCompile(`(?i)(?:銀行|Bank)[\s:]*([^\n]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.BankName = v },
	},
	{
		name:    "bank_branch_name",
		pattern: regexp.MustCompile(`(?i)(?:支店|Branch)[\s:]*([^\n]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.BankBranchName = v },
	},
	{
		name:    "bank_account_name",
		pattern: regexp.MustCompile(`(?i)(?:口座名義|Account\s*Name)[\s:]*([^\n]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.BankAccountName = v },
	},
	{
		name:    "bank_account_number",
		pattern: regexp.MustCompile(`(?i)(?:口座番号|Account\s*Number)[\s:]*([0-9]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.BankAccountNumber = v },
	},
	{
		name:    "subject",
		pattern: regexp.MustCompile(`(?i)(?:件名|subject)[\s:]*([^\n]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.Subject = v },
	},
	{
		name:    "payment_terms",
		pattern: regexp.MustCompile(`(?i)(?:支払条件|payment\s*terms)[\s:]*([^\n]+)`),
		assign: func(d *models.CanonicalDocument, v string) {
			d.Details = ensureDetails(d.Details)
			d.Details.PaymentTerms = v
		},
	},
	{
		name:    "delivery_date",
		pattern: regexp.MustCompile(`(?i)(?:納期|delivery\s*date)[\s:]*([^\n]+)`),
		assign: func(d *models.CanonicalDocument, v string) {
			d.Details = ensureDetails(d.Details)
			d.Details.DeliveryDate = v
		},
	},
	{
		name:    "delivery_place",
		pattern: regexp.MustCompile(`(?i)(?:納入場所|delivery\s*place)[\s:]*([^\n]+)`),
		assign: func(d *models.CanonicalDocument, v string) {
			d.Details = ensureDetails(d.Details)
			d.Details.DeliveryPlace = v
		},
	},
	{
		name:    "remarks",
		pattern: regexp.MustCompile(`(?i)(?:備考|remarks|notes)[\s:]*([^\n]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.Remarks = v },
	},
	{
		name:    "total_amount",
		pattern: regexp.MustCompile(`(?i)(?:金額|小計|Subtotal)[\s:]*¥?([\d,]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.TotalAmount = v },
	},
	{
		name:    "total_tax",
		pattern: regexp.MustCompile(`(?i)(?:消費税|税|Tax|VAT)[\s:]*¥?([\d,]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.TotalTax = v },
	},
	{
		name:    "grand_total",
		pattern: regexp.MustCompile(`(?i)(?:合計|総額|Total)(?:\(税込\))?[\s:]*¥?([\d,]+)`),
		assign:  func(d *models.CanonicalDocument, v string) { d.GrandTotal = v },
	},
}

// Find-all patterns with ordinal assignment: the first occurrence belongs to
// the issuing company, the second (if any) to the client.
var (
	postalPattern  = regexp.MustCompile(`〒\s*(\d{3}-?\d{4})`)
	companyPattern = regexp.MustCompile(`(?i)([^\n]*(?:株式会社|有限会社|合同会社|Co\.|Ltd\.|Inc\.|Corp\.|LLC)[^\n]*)`)
	addressPattern = regexp.MustCompile(`〒\s*\d{3}-?\d{4}\s*([^\n]+(?:都|道|府|県)[^\n]+)`)

	// The honorific salutation marker overrides the ordinal client name.
	honorificPattern = regexp.MustCompile(`([^\n]+)御中`)
)

// ExtractField runs the named scalar rule against the text and returns the
// captured value, or the empty string when the pattern does not match.
// Unknown field names also return the empty string; absence is never an error.
func ExtractField(text, name string) string {
	for _, r := range fieldRules {
		if r.name == name {
			return firstMatch(r.pattern, text)
		}
	}
	return ""
}

// applyFieldRules evaluates the whole rule library plus the ordinal find-all
// rules against the text and assigns every captured value onto the document.
func applyFieldRules(doc *models.CanonicalDocument, text string) {
	for _, r := range fieldRules {
		if v := firstMatch(r.pattern, text); v != "" {
			r.assign(doc, v)
		}
	}

	if codes := postalPattern.FindAllStringSubmatch(text, -1); len(codes) > 0 {
		doc.CompanyPostalCode = codes[0][1]
		if len(codes) > 1 {
			doc.ClientPostalCode = codes[1][1]
		}
	}

	if names := companyPattern.FindAllString(text, -1); len(names) > 0 {
		doc.CompanyName = strings.TrimSpace(names[0])
		if len(names) > 1 {
			doc.ClientName = strings.TrimSpace(names[1])
		}
	}
	if m := honorificPattern.FindStringSubmatch(text); m != nil {
		doc.ClientName = strings.TrimSpace(m[1])
	}

	if addrs := addressPattern.FindAllStringSubmatch(text, -1); len(addrs) > 0 {
		doc.CompanyAddress = strings.TrimSpace(addrs[0][1])
		if len(addrs) > 1 {
			doc.ClientAddress = strings.TrimSpace(addrs[1][1])
		}
	}
}

// flagRule sets an enum field when a single keyword is present anywhere in
// the text. Rules are applied in order and later rules overwrite earlier
// ones, so a document carrying both 外税 and 内税 vocabulary ends up
// tax-inclusive: last write wins, not first match.
type flagRule struct {
	pattern *regexp.Regexp
	assign  func(doc *models.CanonicalDocument)
}

var flagRules = []flagRule{
	{regexp.MustCompile(`普通`), func(d *models.CanonicalDocument) { d.BankAccountType = models.AccountSavings }},
	{regexp.MustCompile(`当座`), func(d *models.CanonicalDocument) { d.BankAccountType = models.AccountCurrent }},

	{regexp.MustCompile(`外税`), func(d *models.CanonicalDocument) { d.ConsumptionTaxDisplay = models.TaxExclusive }},
	{regexp.MustCompile(`内税|税込`), func(d *models.CanonicalDocument) { d.ConsumptionTaxDisplay = models.TaxInclusive }},

	{regexp.MustCompile(`切り捨て`), func(d *models.CanonicalDocument) { d.FractionCalculation = models.FractionFloor }},
	{regexp.MustCompile(`切り上げ`), func(d *models.CanonicalDocument) { d.FractionCalculation = models.FractionCeil }},
	{regexp.MustCompile(`四捨五入`), func(d *models.CanonicalDocument) { d.FractionCalculation = models.FractionRound }},
}

func applyFlagRules(doc *models.CanonicalDocument, text string) {
	for _, r := range flagRules {
		if r.pattern.MatchString(text) {
			r.assign(doc)
		}
	}
}

func firstMatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func ensureDetails(d *models.Details) *models.Details {
	if d == nil {
		return &models.Details{}
	}
	return d
}
