package utils

import (
	"strconv"
	"strings"
)

// FormatUSD renders an integer dollar amount with thousand separators,
// e.g. 95500 -> "$95,500". Used by the roster exports.
func FormatUSD(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + formatThousand(int64(amount))
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
