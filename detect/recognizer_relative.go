package detect

import (
	"regexp"
	"strings"
	"time"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

var _ chronoclip.Recognizer = (*RelativeRecognizer)(nil)

// Alternatives are ordered longest-first so 明後日 is not consumed as 明日.
var relativeRe = regexp.MustCompile(`明後日|明日|昨日|今日|来週|(?i:\b(?:today|tomorrow|yesterday|next\s+week)\b)`)

// relativeOffsets maps a normalized phrase to its day offset from the
// reference instant.
var relativeOffsets = map[string]int{
	"今日":        0,
	"明日":        1,
	"明後日":       2,
	"昨日":        -1,
	"来週":        7,
	"today":     0,
	"tomorrow":  1,
	"yesterday": -1,
	"next week": 7,
}

// RelativeRecognizer matches relative-to-now phrases (today, tomorrow,
// yesterday, next week and their Japanese forms). The resolved date
// zeroes the time of day.
type RelativeRecognizer struct{}

// Name returns the recognizer's identifier.
func (r *RelativeRecognizer) Name() string { return "relative" }

// Match scans text for relative phrases resolved against ref.
func (r *RelativeRecognizer) Match(text string, ref time.Time) []chronoclip.RawMatch {
	var matches []chronoclip.RawMatch
	for _, loc := range relativeRe.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		key := strings.Join(strings.Fields(strings.ToLower(raw)), " ")
		offset, ok := relativeOffsets[key]
		if !ok {
			continue
		}
		d := ref.AddDate(0, 0, offset)
		matches = append(matches, chronoclip.RawMatch{
			Start:      loc[0],
			End:        loc[1],
			Text:       raw,
			Recognizer: r.Name(),
			Date:       formatDate(d.Year(), int(d.Month()), d.Day()),
			Kind:       chronoclip.SpanDate,
		})
	}
	return matches
}
