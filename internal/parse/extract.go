package parse

import (
	"log/slog"

	"github.com/claritydocs/bizdoc-extractor/internal/models"
)

// Extract runs the full extraction pipeline over one document's text:
// width folding, type classification, the scalar field rule library, the
// presence flags and the line-item grammars, merged into a single canonical
// record. The verbatim input is retained as raw_text for audit.
//
// Extract never fails for data-quality reasons; missing fields stay empty and
// unparseable item lines are dropped. An unexpected panic inside the run is
// recovered, logged, and the default record (still carrying raw_text) is
// returned rather than a partial or crashed state.
func Extract(text string) (doc *models.CanonicalDocument) {
	doc = models.NewCanonicalDocument()
	doc.RawText = text

	defer func() {
		if r := recover(); r != nil {
			slog.Error("extraction run failed, returning default record", "panic", r)
			doc = models.NewCanonicalDocument()
			doc.RawText = text
		}
	}()

	folded := Fold(text)

	doc.DocumentType = Classify(folded)
	applyFieldRules(doc, folded)
	applyFlagRules(doc, folded)
	if items := ParseItems(folded); items != nil {
		doc.Items = items
	}

	return doc
}
