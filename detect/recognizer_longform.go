package detect

import (
	"regexp"
	"strconv"
	"time"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

var _ chronoclip.Recognizer = (*LongFormRecognizer)(nil)

var longFormRe = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)

// LongFormRecognizer matches localized long-form dates: 2025年8月10日.
type LongFormRecognizer struct{}

// Name returns the recognizer's identifier.
func (r *LongFormRecognizer) Name() string { return "longform" }

// Match scans text for long-form dates. Calendrically invalid matches
// are rejected.
func (r *LongFormRecognizer) Match(text string, _ time.Time) []chronoclip.RawMatch {
	var matches []chronoclip.RawMatch
	for _, m := range longFormRe.FindAllStringSubmatchIndex(text, -1) {
		year, _ := strconv.Atoi(text[m[2]:m[3]])
		month, _ := strconv.Atoi(text[m[4]:m[5]])
		day, _ := strconv.Atoi(text[m[6]:m[7]])
		if !chronoclip.IsValidDate(year, month, day) {
			continue
		}
		matches = append(matches, chronoclip.RawMatch{
			Start:      m[0],
			End:        m[1],
			Text:       text[m[0]:m[1]],
			Recognizer: r.Name(),
			Date:       formatDate(year, month, day),
			Kind:       chronoclip.SpanDate,
		})
	}
	return matches
}
