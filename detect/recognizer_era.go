package detect

import (
	"regexp"
	"strconv"
	"time"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

var _ chronoclip.Recognizer = (*EraRecognizer)(nil)

var eraRe = regexp.MustCompile(`(令和|平成|昭和|大正|明治)(元|\d{1,2})年(\d{1,2})月(\d{1,2})日`)

// EraRecognizer matches era-relative dates: 令和6年12月25日, 平成元年1月8日.
// Era names are converted to absolute years through the era table.
type EraRecognizer struct{}

// Name returns the recognizer's identifier.
func (r *EraRecognizer) Name() string { return "era" }

// Match scans text for era-based dates. Unknown eras and calendrically
// invalid dates are rejected.
func (r *EraRecognizer) Match(text string, _ time.Time) []chronoclip.RawMatch {
	var matches []chronoclip.RawMatch
	for _, m := range eraRe.FindAllStringSubmatchIndex(text, -1) {
		era := text[m[2]:m[3]]
		yearToken := text[m[4]:m[5]]
		month, _ := strconv.Atoi(text[m[6]:m[7]])
		day, _ := strconv.Atoi(text[m[8]:m[9]])

		year, ok := ConvertEraYear(era, yearToken)
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
