package currency

import (
	"strings"
	"testing"
)

func TestFormatter_Western(t *testing.T) {
	f := New(DigitWestern)
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "৳ 0"},
		{"small", 90, "৳ 90"},
		{"rounds up", 1234.6, "৳ 1,235"},
		{"rounds down", 999.4, "৳ 999"},
		{"grouped", 1234567.2, "৳ 1,234,567"},
		{"negative clamps", -50, "৳ 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Format(tt.amount); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatter_Localized(t *testing.T) {
	f := New(DigitLocalized)
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "৳ ০"},
		{"small", 90, "৳ ৯০"},
		{"rounds", 1234.6, "৳ ১,২৩৫"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Format(tt.amount); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatter_NeverShowsFraction(t *testing.T) {
	for _, style := range []DigitStyle{DigitWestern, DigitLocalized} {
		f := New(style)
		for _, amount := range []float64{0.4, 10.5, 1234.56} {
			if got := f.Format(amount); strings.ContainsAny(got, ".") {
				t.Errorf("style %s: Format(%v) shows sub-units: %q", style, amount, got)
			}
		}
	}
}

func TestNew_UnknownStyleFallsBack(t *testing.T) {
	f := New(DigitStyle("whatever"))
	if got := f.Format(5); got != "৳ 5" {
		t.Errorf("unknown style should use western digits, got %q", got)
	}
}
