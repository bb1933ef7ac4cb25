package parse

import (
	"regexp"

	"github.com/claritydocs/bizdoc-extractor/internal/models"
)

// typeRule pairs a document type with its bilingual keyword pattern.
type typeRule struct {
	docType models.DocumentType
	pattern *regexp.Regexp
}

// typeRules is evaluated in order; the first matching pattern wins. The order
// is a deliberate tie-break: a document carrying both invoice and quotation
// vocabulary classifies as an invoice because that rule is ranked higher, not
// because of where or how often the keywords appear.
var typeRules = []typeRule{
	{models.TypeDelivery, regexp.MustCompile(`(?i)納品書|delivery\s*slip`)},
	{models.TypeInvoice, regexp.MustCompile(`(?i)請求書|invoice`)},
	{models.TypeOrder, regexp.MustCompile(`(?i)注文書|purchase\s*order|order`)},
	{models.TypeQuotation, regexp.MustCompile(`(?i)見積書|quotation|quote|estimate`)},
}

// Classify returns the document type for the given text. Classification is
// total: ambiguous or empty input falls back to the delivery type, never an
// error.
func Classify(text string) models.DocumentType {
	for _, r := range typeRules {
		if r.pattern.MatchString(text) {
			return r.docType
		}
	}
	return models.TypeDelivery
}
