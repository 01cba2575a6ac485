// Package money formats amounts for display.
package money

import (
	"github.com/billtrail/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formats amounts with the number grouping of a language and the
// symbol of a currency.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter returns a Formatter for the language and currency.
func NewFormatter(tag language.Tag, unit currency.Unit) Formatter {
	p := message.NewPrinter(tag)

	return Formatter{
		printer: p,
		symbol:  p.Sprint(currency.NarrowSymbol(unit)),
	}
}

// Default formats amounts in Indian rupees with English number grouping.
func Default() Formatter {
	return NewFormatter(language.English, currency.INR)
}

// ForProfile returns the Formatter for the language and currency of a profile.
func ForProfile(p models.Profile) Formatter {
	return NewFormatter(p.Tag(), p.Unit())
}

// Format returns the amount with currency symbol, e.g. ₹25,000.
func (f Formatter) Format(amount decimal.Decimal) string {
	if f.printer == nil {
		return Default().Format(amount)
	}

	if amount.IsInteger() {
		return f.symbol + f.printer.Sprintf("%d", amount.IntPart())
	}

	return f.symbol + f.printer.Sprintf("%.2f", amount.InexactFloat64())
}

// Number formats an integer with the number grouping of the language.
func (f Formatter) Number(n int64) string {
	if f.printer == nil {
		return Default().Number(n)
	}

	return f.printer.Sprintf("%d", n)
}
