package billing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var amountPrinter = message.NewPrinter(language.Slovenian)

// FormatAmount renders a euro amount the Slovenian way: "1.234,50 €".
func FormatAmount(amount float64) string {
	return amountPrinter.Sprintf("%v €", number.Decimal(amount, number.Scale(2)))
}

// FormatCount renders an item count with Slovenian digit grouping.
func FormatCount(n int) string {
	return amountPrinter.Sprintf("%d", n)
}
