package order

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount as sent to the presentation layer
type Money struct {
	Amount  string `json:"amount"`  // fixed two digits, dot separator: "23.70"
	Display string `json:"display"` // "R$ 23,70"
}

// NewMoney rounds d to cents and renders both forms.
func NewMoney(d decimal.Decimal) Money {
	return Money{
		Amount:  d.StringFixed(2),
		Display: FormatBRL(d),
	}
}

// FormatBRL formats d the way prices are shown in the store: "R$ 1.234,50".
func FormatBRL(d decimal.Decimal) string {
	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return "R$ " + sign + groupThousands(intPart) + "," + fracPart
}

func groupThousands(digits string) string {
	var parts []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{digits[start:i]}, parts...)
	}
	return strings.Join(parts, ".")
}
