package facts

import (
	"strings"
	"testing"

	"kisaan-academy-be/internal/constant"
	"kisaan-academy-be/pkg/commodity"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestFormatQuote(t *testing.T) {
	tests := []struct {
		name     string
		quote    *commodity.Quote
		language string
		want     string
	}{
		{
			name:     "urdu price two decimals",
			quote:    &commodity.Quote{Name: "Wheat", Price: 4500.0},
			language: constant.LanguageUrdu,
			want:     "Wheat کی موجودہ قیمت: 4500.00 روپے فی کلوگرام (PKR/kg)",
		},
		{
			name:     "english price two decimals",
			quote:    &commodity.Quote{Name: "Wheat", Price: 4500.5},
			language: constant.LanguageEnglish,
			want:     "Current price of Wheat: 4500.50 PKR per kg",
		},
		{
			name:     "english increase line",
			quote:    &commodity.Quote{Name: "Rice", Price: 5500.0, Change: floatPtr(12.5)},
			language: constant.LanguageEnglish,
			want:     "Current price of Rice: 5500.00 PKR per kg\nincreased: 12.5 PKR",
		},
		{
			name:     "urdu decrease uses absolute value",
			quote:    &commodity.Quote{Name: "Rice", Price: 5500.0, Change: floatPtr(-8.0)},
			language: constant.LanguageUrdu,
			want:     "Rice کی موجودہ قیمت: 5500.00 روپے فی کلوگرام (PKR/kg)\nکمی: 8 روپے",
		},
		{
			name:     "zero change omits the line",
			quote:    &commodity.Quote{Name: "Cotton", Price: 8000.0, Change: floatPtr(0)},
			language: constant.LanguageEnglish,
			want:     "Current price of Cotton: 8000.00 PKR per kg",
		},
		{
			name:     "nil quote urdu",
			quote:    nil,
			language: constant.LanguageUrdu,
			want:     "قیمت کی معلومات دستیاب نہیں ہے۔",
		},
		{
			name:     "nil quote english",
			quote:    nil,
			language: constant.LanguageEnglish,
			want:     "Price information not available.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatQuote(tt.quote, tt.language)
			if got != tt.want {
				t.Errorf("FormatQuote = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatQuoteNeverNegativeChange(t *testing.T) {
	quote := &commodity.Quote{Name: "Sugar", Price: 150.0, Change: floatPtr(-3.25)}
	got := FormatQuote(quote, constant.LanguageEnglish)
	if strings.Contains(got, "-3.25") {
		t.Errorf("change should be rendered as an absolute value, got %q", got)
	}
	if !strings.Contains(got, "decreased") {
		t.Errorf("negative change should read decreased, got %q", got)
	}
}
