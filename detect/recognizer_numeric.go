package detect

import (
	"regexp"
	"strconv"
	"time"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

var _ chronoclip.Recognizer = (*NumericRecognizer)(nil)

// Two alternatives rather than a backreference (RE2 has none); the
// separator must not be mixed within one date.
var numericRe = regexp.MustCompile(`\b(?:(\d{4})-(\d{1,2})-(\d{1,2})|(\d{4})/(\d{1,2})/(\d{1,2}))\b`)

// NumericRecognizer matches absolute numeric dates in YYYY-MM-DD or
// YYYY/MM/DD form.
type NumericRecognizer struct{}

// Name returns the recognizer's identifier.
func (r *NumericRecognizer) Name() string { return "numeric" }

// Match scans text for absolute numeric dates. Calendrically invalid
// matches (month 13, Feb 30) are rejected.
func (r *NumericRecognizer) Match(text string, _ time.Time) []chronoclip.RawMatch {
	var matches []chronoclip.RawMatch
	for _, m := range numericRe.FindAllStringSubmatchIndex(text, -1) {
		year, month, day, ok := numericGroups(text, m)
		if !ok || !chronoclip.IsValidDate(year, month, day) {
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

// numericGroups pulls year/month/day out of whichever alternative fired.
func numericGroups(text string, m []int) (year, month, day int, ok bool) {
	group := func(i int) (int, bool) {
		if m[2*i] < 0 {
			return 0, false
		}
		n, err := strconv.Atoi(text[m[2*i]:m[2*i+1]])
		return n, err == nil
	}
	for _, base := range []int{1, 4} {
		y, okY := group(base)
		mo, okM := group(base + 1)
		d, okD := group(base + 2)
		if okY && okM && okD {
			return y, mo, d, true
		}
	}
	return 0, 0, 0, false
}
