package ui

import (
	"fmt"
	"strings"
	"time"
)

// FormatMoney renders a VND amount in the display format used across
// all screens, e.g. 170000 -> "170,000 đ"
func FormatMoney(amount float64) string {
	return FormatNumber(amount) + " đ"
}

// FormatNumber groups the integer part of the amount by thousands
func FormatNumber(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%.0f", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// FormatPercent renders a ratio as a percentage with one decimal
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

// FormatDate renders a timestamp for table cells; zero times render
// as a dash
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006 15:04")
}

// RelativeTime renders a Vietnamese relative timestamp for the
// notification dropdown
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "vừa xong"
	case d < time.Hour:
		return fmt.Sprintf("%d phút trước", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d giờ trước", int(d.Hours()))
	default:
		return fmt.Sprintf("%d ngày trước", int(d.Hours()/24))
	}
}
