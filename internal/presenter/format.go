package presenter

import (
	"fmt"
	"math"
	"strconv"
)

// FormatCount renders an integer with thousands separators, e.g. 12345 ->
// "12,345".
func FormatCount(n int) string {
	return groupThousands(strconv.FormatInt(int64(n), 10))
}

// FormatCurrency renders a currency amount rounded to whole units with
// thousands separators, e.g. 1234567.8 -> "$1,234,568".
func FormatCurrency(v float64) string {
	rounded := int64(math.Round(v))
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	return sign + "$" + groupThousands(strconv.FormatInt(rounded, 10))
}

// FormatScore renders an investment score with one decimal place, the fixed
// display precision of the 0-10 scale.
func FormatScore(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// RoundArea rounds a surface in m² to a whole number for display.
func RoundArea(v float64) int {
	return int(math.Round(v))
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var out []byte
	head := n % 3
	if head > 0 {
		out = append(out, digits[:head]...)
	}
	for i := head; i < n; i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}
