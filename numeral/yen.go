package numeral

import (
	"strings"

	"github.com/shopspring/decimal"
)

var tenThousand = decimal.NewFromInt(10_000)

// FormatYen renders amount with 万 grouping, e.g. 329323 -> "32万円" or "32万9323円" with remainder
func FormatYen(amount decimal.Decimal, withRemainder bool) string {
	man := amount.Div(tenThousand).Floor()
	rem := amount.Sub(man.Mul(tenThousand))

	var sb strings.Builder

	if man.IsPositive() {
		sb.WriteString(man.String())
		sb.WriteString("万")
	}

	if withRemainder {
		sb.WriteString(rem.StringFixed(0))
	}

	sb.WriteString("円")

	return sb.String()
}
