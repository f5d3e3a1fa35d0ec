// Package cli provides formatting and rendering utilities for terminal
// and ledger output.
package cli

import (
	"fmt"
	"strconv"
)

// FormatCell renders a ledger money value with exactly two decimals, or
// an empty string when the value is zero. Blanking zeros matches the
// ledger convention: a paid-off remaining balance and an absent one look
// the same in the output file.
func FormatCell(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatMoney renders a money value with two decimals, zeros included.
func FormatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatCount adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	out := ""
	rem := len(s) % 3
	if rem > 0 {
		out = s[:rem]
	}
	for i := rem; i < len(s); i += 3 {
		if out != "" {
			out += ","
		}
		out += s[i : i+3]
	}
	return out
}
