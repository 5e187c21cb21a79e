package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// pt-BR printer shared by the formatters; printers are safe for concurrent use
var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders a value as Brazilian reais, two decimal places
// ("R$ 1.234,56").
func FormatCurrency(value float64) string {
	return brPrinter.Sprintf("R$ %.2f", value)
}

// FormatPercentage renders a percentage with one decimal place ("37,5%")
func FormatPercentage(value float64) string {
	return brPrinter.Sprintf("%.1f%%", value)
}
