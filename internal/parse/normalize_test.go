package parse

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii passthrough", "Invoice No. 123", "Invoice No. 123"},
		{"full-width digits", "１２３４５", "12345"},
		{"full-width latin", "ＩＮＶ－００１", "INV-001"},
		{"full-width punctuation", "￥５，０００", "¥5,000"},
		{"ideographic space", "品名　数量", "品名 数量"},
		{"half-width katakana widened", "ｱｲｳｴｵ", "アイウエオ"},
		{"crlf to lf", "a\r\nb", "a\nb"},
		{"bare cr to lf", "a\rb", "a\nb"},
		{"kanji untouched", "株式会社", "株式会社"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.in); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
