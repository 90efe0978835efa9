package detect

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

var _ chronoclip.Recognizer = (*TimeRecognizer)(nil)

var timeRe = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)(?:\s*[〜～~-]\s*([01]?\d|2[0-3]):([0-5]\d))?\b`)

// TimeRecognizer matches bare times of day (18:30) and time ranges
// (18:30〜20:00). It runs last in the chain, so a time overlapping a
// date span found earlier loses in overlap resolution.
type TimeRecognizer struct{}

// Name returns the recognizer's identifier.
func (r *TimeRecognizer) Name() string { return "time" }

// Match scans text for times of day.
func (r *TimeRecognizer) Match(text string, _ time.Time) []chronoclip.RawMatch {
	var matches []chronoclip.RawMatch
	for _, m := range timeRe.FindAllStringSubmatchIndex(text, -1) {
		match := chronoclip.RawMatch{
			Start:      m[0],
			End:        m[1],
			Text:       text[m[0]:m[1]],
			Recognizer: r.Name(),
			Time:       normalizeClock(text[m[2]:m[3]], text[m[4]:m[5]]),
			Kind:       chronoclip.SpanTime,
		}
		if m[6] >= 0 {
			match.EndTime = normalizeClock(text[m[6]:m[7]], text[m[8]:m[9]])
		}
		matches = append(matches, match)
	}
	return matches
}

// normalizeClock zero-pads an hour/minute pair into HH:MM.
func normalizeClock(hour, minute string) string {
	h, _ := strconv.Atoi(hour)
	m, _ := strconv.Atoi(minute)
	return fmt.Sprintf("%02d:%02d", h, m)
}
