package numeral

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Ethernal-Tech/currency-converter/common"
)

// ErrInvalidAmount is returned for any text that does not read as an amount
var ErrInvalidAmount = errors.New("invalid amount")

// Unit is a magnitude marker word and the value it multiplies the preceding number with
type Unit struct {
	Marker     string
	Multiplier int64
}

// Units are applied in this order. Largest first, each marker splits the text left for the next one
var Units = []Unit{
	{Marker: "man", Multiplier: 10_000},
	{Marker: "sen", Multiplier: 1_000},
	{Marker: "hyaku", Multiplier: 100},
}

// Parse converts amounts like "32man9sen3hyaku23" (329323) or "1234,56" into a number
func Parse(amount string) (float64, error) {
	total := float64(0)
	remaining := amount

	for _, unit := range Units {
		value, rest, err := unit.extract(remaining)
		if err != nil {
			return 0, err
		}

		total += value
		remaining = rest
	}

	value, err := parseRemainder(remaining)
	if err != nil {
		return 0, err
	}

	return total + value, nil
}

// extract returns the value of the number in front of the first marker occurrence and the text after it
func (u Unit) extract(text string) (float64, string, error) {
	prefix, suffix, found := strings.Cut(text, u.Marker)
	if !found {
		return 0, text, nil
	}

	prefix = common.StripWhitespace(prefix)

	count, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q before %q is not an integer", ErrInvalidAmount, prefix, u.Marker)
	}

	return float64(count) * float64(u.Multiplier), suffix, nil
}

func parseRemainder(text string) (float64, error) {
	text = strings.ReplaceAll(common.StripWhitespace(text), ",", ".")
	if text == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, text)
	}

	return value, nil
}
