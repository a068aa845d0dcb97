// Package currency renders taka amounts for display. Amounts are always
// rounded to the whole unit; sub-units are never shown on the invoice.
package currency

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DigitStyle selects the digit-rendering convention. Both variants are
// legitimate: shops printing for English-reading customers use western
// digits, others want the numbers in Bengali.
type DigitStyle string

const (
	DigitWestern   DigitStyle = "western"
	DigitLocalized DigitStyle = "localized"
)

// Symbol is the Bangladeshi taka sign prefixed to every amount.
const Symbol = "৳"

var bengaliDigits = map[rune]rune{
	'0': '০', '1': '১', '2': '২', '3': '৩', '4': '৪',
	'5': '৫', '6': '৬', '7': '৭', '8': '৮', '9': '৯',
}

// Formatter renders monetary amounts with locale-appropriate grouping.
type Formatter struct {
	style   DigitStyle
	printer *message.Printer
}

// New builds a formatter for the given style. Unknown styles fall back to
// western digits.
func New(style DigitStyle) *Formatter {
	tag := language.English
	if style == DigitLocalized {
		tag = language.Bengali
	}
	return &Formatter{style: style, printer: message.NewPrinter(tag)}
}

// Format renders a non-negative amount rounded to the nearest whole taka
// with thousands grouping, e.g. "৳ 1,235". Fractional input is fine;
// negative or non-finite input renders as zero.
func (f *Formatter) Format(amount float64) string {
	if math.IsNaN(amount) || amount < 0 {
		amount = 0
	}
	s := f.printer.Sprintf("%v", number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
	if f.style == DigitLocalized {
		s = localizeDigits(s)
	}
	return Symbol + " " + s
}

// localizeDigits maps any remaining ASCII digits to Bengali ones. The bn
// printer already emits native digits where its tables cover them; this
// keeps the output uniform either way.
func localizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if b, ok := bengaliDigits[r]; ok {
			return b
		}
		return r
	}, s)
}
