package labels

import (
	"fmt"
	"strings"
)

// FormatCurrency formats an amount as Brazilian Real, e.g. R$ 1.234.567,89.
// The result always carries exactly 2 decimal places.
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)

	result := "R$ " + groupThousands(parts[0]) + "," + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// FormatPercent renders a rate such as 33.333 as "33,3%".
func FormatPercent(rate float64) string {
	return strings.Replace(fmt.Sprintf("%.1f%%", rate), ".", ",", 1)
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
