package currency

import (
	"fmt"
	"math"
	"strings"
)

// Format renders amount with symbol and comma thousands separators.
// Cents are shown only when the amount is fractional: "$600", "$1,300.50".
func Format(symbol string, amount float64) string {
	cents := math.Round(amount * 100)

	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := math.Floor(cents / 100)
	frac := int64(cents) % 100

	result := symbol + addThousandsSeparator(fmt.Sprintf("%.0f", whole), ",")
	if frac != 0 {
		result += fmt.Sprintf(".%02d", frac)
	}

	if negative {
		result = "-" + result
	}
	return result
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
