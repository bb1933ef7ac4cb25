package parse

import (
	"strings"

	"golang.org/x/text/width"
)

// Fold prepares raw recovered text for pattern matching. OCR over Japanese
// documents routinely emits full-width digits, Latin and punctuation (１０,
// ＴＥＬ, ：, ￥) which would never match the half-width vocabulary in the
// rule library. Width folding collapses those variants; line endings are
// normalized so the line-oriented grammars see plain \n.
//
// The verbatim input is kept separately on the record as raw_text; Fold never
// touches that copy.
func Fold(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return width.Fold.String(text)
}
