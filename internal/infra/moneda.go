package infra

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printerCOP = message.NewPrinter(language.Spanish)

// FormatCOP renders a peso amount with the Spanish thousands separator
// (1250000 -> "1.250.000"). Cash amounts here carry no decimal places.
func FormatCOP(d decimal.Decimal) string {
	return printerCOP.Sprintf("%v", number.Decimal(d.IntPart()))
}
