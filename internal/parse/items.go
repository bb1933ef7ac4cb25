package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/claritydocs/bizdoc-extractor/internal/models"
)

// itemSectionPattern locates the goods/services table: a header line carrying
// product vocabulary, then everything up to a totals or page-break marker (or
// end of input). RE2 has no lookahead, so the terminator is consumed by a
// non-capturing group; only the captured region is used.
var itemSectionPattern = regexp.MustCompile(
	`(?is)(?:品名|商品名|Product|Item|Description)[^\n]*\n(.*?)(?:金額|小計|合計|Page|備考欄|\n\n|$)`,
)

// itemHeaderPattern re-matches header vocabulary inside the captured region,
// so repeated headers on multi-page documents are not parsed as rows.
var itemHeaderPattern = regexp.MustCompile(
	`(?i)品名|商品名|Product|Description|数量|Quantity|単価|Price|金額|Amount`,
)

// rowGrammar is one candidate field ordering for a single item line.
type rowGrammar struct {
	pattern *regexp.Regexp
	// unitFirst swaps the quantity/unit capture groups.
	unitFirst bool
}

// rowGrammars is tried in order per line; the first grammar that matches wins.
// Grammar 1: name qty unit unit-price total-price [remarks]
// Grammar 2: name unit qty unit-price total-price [remarks]
// Grammar 3: permissive fallback with a single-token unit.
var rowGrammars = []rowGrammar{
	{regexp.MustCompile(`^([^\d¥]+?)\s+(\d+(?:\.\d+)?)\s+([^\d¥]+?)\s+¥?([\d,]+(?:\.\d+)?)\s+¥?([\d,]+(?:\.\d+)?)\s*(.*)?$`), false},
	{regexp.MustCompile(`^([^\d¥]+?)\s+([^\d¥]+?)\s+(\d+(?:\.\d+)?)\s+¥?([\d,]+(?:\.\d+)?)\s+¥?([\d,]+(?:\.\d+)?)\s*(.*)?$`), true},
	{regexp.MustCompile(`^(.+?)\s+(\d+(?:\.\d+)?)\s+(\S+)\s+¥?([\d,]+(?:\.\d+)?)\s+¥?([\d,]+(?:\.\d+)?)\s*(.*)?$`), false},
}

// The flat consumption tax rate assumed when the source layout carries no
// per-line rate.
const defaultTaxRate = "10"

// ParseItems extracts line items from the document text. A missing item table
// yields an empty sequence; lines matching no grammar are dropped without
// error, since OCR noise is expected to produce unparseable rows.
func ParseItems(text string) []models.LineItem {
	section := itemSectionPattern.FindStringSubmatch(text)
	if section == nil {
		return nil
	}

	var items []models.LineItem
	for _, line := range strings.Split(section[1], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if itemHeaderPattern.MatchString(line) {
			continue
		}
		if item, ok := parseItemLine(line); ok {
			items = append(items, item)
		}
	}
	return items
}

func parseItemLine(line string) (models.LineItem, bool) {
	for _, g := range rowGrammars {
		m := g.pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		quantity, unit := m[2], m[3]
		if g.unitFirst {
			quantity, unit = m[3], m[2]
		}

		totalPrice := strings.TrimSpace(m[5])
		item := models.LineItem{
			ProductName: strings.TrimSpace(m[1]),
			Quantity:    strings.TrimSpace(quantity),
			Unit:        strings.TrimSpace(unit),
			UnitPrice:   strings.TrimSpace(m[4]),
			TotalPrice:  totalPrice,
			TaxRate:     defaultTaxRate,
			TaxAmount:   deriveTaxAmount(totalPrice),
			Remarks:     strings.TrimSpace(m[6]),
			SalesAmount: totalPrice,
		}
		return item, true
	}
	return models.LineItem{}, false
}

// deriveTaxAmount computes round(total * 0.10) from the comma-stripped total.
// The result is always derived, never read from the source text.
func deriveTaxAmount(totalPrice string) string {
	n, err := strconv.ParseFloat(strings.ReplaceAll(totalPrice, ",", ""), 64)
	if err != nil {
		return ""
	}
	return strconv.FormatInt(int64(math.Round(n*0.10)), 10)
}
