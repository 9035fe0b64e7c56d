package resolver

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const displayDateLayout = "02 Jan 2006"

// FormatDate renders a date for display. No raw storage-format dates
// ever reach a template.
func FormatDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// FormatDatePtr renders an optional date, empty when absent.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}

// FormatAmount renders a money amount as Rupiah with dot thousand
// separators, e.g. "Rp 12.345.678".
func FormatAmount(amount decimal.Decimal) string {
	whole := amount.Round(0).String()

	neg := strings.HasPrefix(whole, "-")
	digits := strings.TrimPrefix(whole, "-")

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := "Rp " + strings.Join(groups, ".")
	if neg {
		out = "Rp -" + strings.Join(groups, ".")
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
