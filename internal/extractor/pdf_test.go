package extractor

import (
	"strings"
	"testing"
)

func TestTextQuality(t *testing.T) {
	tests := []struct {
		name    string
		pages   []string
		minimum float64
		maximum float64
	}{
		{"clean english", []string{"Invoice No. INV-001 Total 5,000"}, 0.9, 1.0},
		{"clean japanese", []string{"納品書 株式会社クラリティ 合計 ¥5,000"}, 0.9, 1.0},
		{"mixed with currency marks", []string{"〒100-0001 東京都 ¥1,000"}, 0.9, 1.0},
		{"font garbage", []string{strings.Repeat("�", 50)}, 0.0, 0.1},
		{"empty", nil, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := textQuality(tt.pages)
			if q < tt.minimum || q > tt.maximum {
				t.Errorf("textQuality = %.2f, want within [%.2f, %.2f]", q, tt.minimum, tt.maximum)
			}
		})
	}
}

func TestIsReadableText(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  bool
	}{
		{
			"japanese invoice text",
			[]string{"請求書\n株式会社クラリティ印刷\n品名 数量 単価 金額\nWidget 10 500 5000\n合計 5,500"},
			true,
		},
		{
			"english delivery text",
			[]string{"DELIVERY SLIP\nNo. D-100\nProduct Quantity Unit Price Amount\nWidget 10 pcs 500 5,000\nTotal 5,500"},
			true,
		},
		{"too short", []string{"請求書 合計"}, false},
		{
			"garbage from broken font encoding",
			[]string{strings.Repeat("�", 100)},
			false,
		},
		{
			"readable characters but no document vocabulary",
			[]string{strings.Repeat("the quick brown fox jumps over the lazy dog ", 3)},
			false,
		},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isReadableText(tt.pages); got != tt.want {
				t.Errorf("isReadableText = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainsCommonWords(t *testing.T) {
	if !containsCommonWords([]string{"INVOICE for services"}) {
		t.Error("english keyword not recognized")
	}
	if !containsCommonWords([]string{"株式会社テスト"}) {
		t.Error("japanese keyword not recognized")
	}
	if containsCommonWords([]string{"lorem ipsum dolor sit amet"}) {
		t.Error("keyword-free text reported as recognizable")
	}
}
