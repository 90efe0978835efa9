package detect

import (
	"regexp"
	"strconv"
	"time"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

var _ chronoclip.Recognizer = (*MonthDayRecognizer)(nil)

var monthDayRe = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日`)

// Validity of a year-less month-day is checked in a leap year so Feb 29
// stays recognizable; the resolved year is inferred separately.
const leapCheckYear = 2024

// MonthDayRecognizer matches bare month-day expressions (8月10日) and
// infers the year: always the next occurrence on or after the reference
// instant's calendar day.
//
// This recognizer also fires on the day portion of long-form and
// era-based dates; the span resolver discards those overlaps downstream.
type MonthDayRecognizer struct{}

// Name returns the recognizer's identifier.
func (r *MonthDayRecognizer) Name() string { return "monthday" }

// Match scans text for bare month-day expressions resolved against ref.
func (r *MonthDayRecognizer) Match(text string, ref time.Time) []chronoclip.RawMatch {
	var matches []chronoclip.RawMatch
	for _, m := range monthDayRe.FindAllStringSubmatchIndex(text, -1) {
		month, _ := strconv.Atoi(text[m[2]:m[3]])
		day, _ := strconv.Atoi(text[m[4]:m[5]])
		if !chronoclip.IsValidDate(leapCheckYear, month, day) {
			continue
		}
		d := ResolveYearForMonthDay(month, day, ref)
		matches = append(matches, chronoclip.RawMatch{
			Start:      m[0],
			End:        m[1],
			Text:       text[m[0]:m[1]],
			Recognizer: r.Name(),
			Date:       formatDate(d.Year(), int(d.Month()), d.Day()),
			Kind:       chronoclip.SpanDate,
		})
	}
	return matches
}
