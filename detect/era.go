package detect

import (
	"strconv"
	"time"
)

// eraTable maps era names to the Gregorian year in which era-year 1
// begins. Immutable; used only by the era recognizer.
var eraTable = map[string]int{
	"令和": 2019,
	"平成": 1989,
	"昭和": 1926,
	"大正": 1912,
	"明治": 1868,
}

// firstYearToken is the token naming era-year 1 (e.g. 平成元年).
const firstYearToken = "元"

// ConvertEraYear converts an era name plus era-year token to an absolute
// Gregorian year. Returns false for unknown era names or non-positive
// era years.
func ConvertEraYear(eraName, eraYearToken string) (int, bool) {
	base, ok := eraTable[eraName]
	if !ok {
		return 0, false
	}
	year := 1
	if eraYearToken != firstYearToken {
		n, err := strconv.Atoi(eraYearToken)
		if err != nil || n < 1 {
			return 0, false
		}
		year = n
	}
	return base + year - 1, true
}

// ResolveYearForMonthDay infers the most plausible absolute year for a
// month-day-only expression. The candidate is constructed in the
// reference year; if it falls strictly before the reference instant's
// calendar day it advances one year, so month-day expressions always
// resolve to the next occurrence on or after "today". A candidate equal
// to today keeps the current year.
func ResolveYearForMonthDay(month, day int, ref time.Time) time.Time {
	today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	candidate := time.Date(ref.Year(), time.Month(month), day, 0, 0, 0, 0, ref.Location())
	if candidate.Before(today) {
		candidate = time.Date(ref.Year()+1, time.Month(month), day, 0, 0, 0, 0, ref.Location())
	}
	return candidate
}
