package chronoclip

import "time"

// IsValidDate reports whether the triple names a real calendar date.
// It is the single source of truth for calendrical validity: every
// recognizer rejects syntactically matched but impossible dates (month
// 13, day 32, Feb 30) through this check.
func IsValidDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && t.Month() == time.Month(month) && t.Day() == day
}
