package view

import (
	"fmt"
	"strings"
	"time"
)

// FormatCount renders an engagement count the compact way the result cards
// show them: 999 stays "999", 1500 becomes "1.5K", 2500000 becomes "2.5M".
// Negative or missing counts render as "0".
func FormatCount(n int) string {
	if n <= 0 {
		return "0"
	}
	switch {
	case n >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000_000)) + "M"
	case n >= 1_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000)) + "K"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

// RelativeTime renders an indexed-at timestamp as a short age label.
// A nil timestamp renders as "recently".
func RelativeTime(t *time.Time) string {
	if t == nil {
		return "recently"
	}
	d := time.Since(*t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
