package helpers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ist matches the pump's wall clock. FixedZone avoids a tzdata dependency.
var ist = time.FixedZone("IST", 5*3600+1800)

// FormatCurrency renders a rupee amount with Indian digit grouping and no
// fractional digits, e.g. 150000 -> "₹1,50,000".
func FormatCurrency(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	// Indian grouping: last three digits, then pairs.
	head := digits[:len(digits)-3]
	groups := []string{digits[len(digits)-3:]}
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return sign + "₹" + strings.Join(groups, ",")
}

// FormatQuantity renders liters fixed to 2 decimals, e.g. "5.00 L".
func FormatQuantity(liters float64) string {
	return fmt.Sprintf("%.2f L", liters)
}

// FormatDateTime renders a timestamp in IST, e.g. "05 Feb, 02:30 pm".
func FormatDateTime(t time.Time) string {
	return t.In(ist).Format("02 Jan, 03:04 pm")
}
