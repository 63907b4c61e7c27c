package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// GetLimitParam extracts a page size from the request, clamped to
// [1, max]. Falls back to def when absent or unparseable.
func GetLimitParam(c echo.Context, def, max int) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// FormatINR renders an amount the way the storefront shows totals,
// with Indian digit grouping: 130000 -> "₹1,30,000.00".
func FormatINR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	totalPaise := int64(math.Round(amount * 100))
	whole := totalPaise / 100
	paise := totalPaise % 100

	digits := strconv.FormatInt(whole, 10)
	var groups []string
	// last group of three, then groups of two
	if len(digits) > 3 {
		groups = append(groups, digits[len(digits)-3:])
		digits = digits[:len(digits)-3]
		for len(digits) > 2 {
			groups = append(groups, digits[len(digits)-2:])
			digits = digits[:len(digits)-2]
		}
	}
	groups = append(groups, digits)

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("₹")
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteString(",")
		}
	}
	b.WriteString(".")
	if paise < 10 {
		b.WriteString("0")
	}
	b.WriteString(strconv.FormatInt(paise, 10))
	return b.String()
}
