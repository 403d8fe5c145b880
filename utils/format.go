// utils/format.go
package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency renders an amount as Sri Lankan Rupees with thousands
// separators and two decimal places, e.g. "LKR 1,500.00".
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("LKR %s%s.%s", sign, b.String(), parts[1])
}
