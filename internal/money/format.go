// Package money formats amounts for display.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts with a single currency symbol and thousands grouping.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

func NewFormatter(symbol string) Formatter {
	return Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(language.English),
	}
}

// Format renders d rounded to cents, e.g. "₹1,234.5" or "-₹30".
func (f Formatter) Format(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	v := d.Round(2).InexactFloat64()

	return sign + f.symbol + f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

func (f Formatter) Symbol() string {
	return f.symbol
}
