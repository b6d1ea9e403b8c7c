package ui

import (
	"fmt"
	"strings"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}

// padLeft pads a string with leading spaces to the given width.
func padLeft(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(r)) + s
}

// formatRating renders a 0-10 vote average with one decimal.
func formatRating(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// releaseDate returns the release date or "Unknown".
func releaseDate(date string) string {
	if strings.TrimSpace(date) == "" {
		return "Unknown"
	}
	return strings.TrimSpace(date)
}

// releaseYear returns the four-digit year of a YYYY-MM-DD date, or "".
func releaseYear(date string) string {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// overviewText returns the overview or a placeholder.
func overviewText(overview string) string {
	if strings.TrimSpace(overview) == "" {
		return "No overview available."
	}
	return strings.TrimSpace(overview)
}

// pluralize returns "1 vote", "2 votes".
func pluralize(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// clampRow keeps a selection inside [0, n).
func clampRow(row, n int) int {
	if n <= 0 || row < 0 {
		return 0
	}
	if row >= n {
		return n - 1
	}
	return row
}

// ternary returns a if cond is true, otherwise b.
func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
