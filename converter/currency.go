package converter

import (
	"fmt"

	"github.com/Ethernal-Tech/currency-converter/numeral"
	"github.com/shopspring/decimal"
)

const YenCode = "jpy"

var currencySymbols = map[string]string{
	"eur": "€",
	"jpy": "¥",
	"usd": "$",
}

// Symbol returns the currency sign or the code itself for currencies without one
func Symbol(code string) string {
	if symbol, exists := currencySymbols[code]; exists {
		return symbol
	}

	return code
}

// FormatCurrency renders "1234.50 eur", yen amounts get 万 grouping appended: "329323.00 jpy (32万円)"
func FormatCurrency(amount decimal.Decimal, code string) string {
	text := fmt.Sprintf("%s %s", amount.StringFixed(2), code)

	if code == YenCode {
		text = fmt.Sprintf("%s (%s)", text, numeral.FormatYen(amount, false))
	}

	return text
}
