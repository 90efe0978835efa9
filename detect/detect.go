// Package detect provides temporal expression detection. It runs a
// chain of independent pattern recognizers over a text unit, resolves
// overlapping hits into one ordered span sequence, and converts
// era-based and year-less expressions to absolute dates.
//
// Everything here is pure and deterministic: the reference instant is
// always supplied by the caller, never read from the ambient clock.
package detect

import (
	"fmt"
	"sort"
	"time"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

// Recognizers returns the recognizer chain in priority order. The order
// matters only for exact start-offset ties, where the earlier recognizer
// in this list wins.
func Recognizers() []chronoclip.Recognizer {
	return []chronoclip.Recognizer{
		&RelativeRecognizer{},
		&NumericRecognizer{},
		&LongFormRecognizer{},
		&EraRecognizer{},
		&MonthDayRecognizer{},
		&TimeRecognizer{},
	}
}

// DetectSpans runs every recognizer over text and resolves overlaps.
// Text with no temporal pattern returns an empty sequence, not an error.
func DetectSpans(text string, ref time.Time) []chronoclip.TemporalSpan {
	var matches []chronoclip.RawMatch
	for _, r := range Recognizers() {
		matches = append(matches, r.Match(text, ref)...)
	}
	return ResolveSpans(matches)
}

// ResolveSpans merges recognizer hits into an ordered, non-overlapping
// span sequence. The policy is greedy and local: hits are stable-sorted
// by start offset, then scanned left to right keeping a hit only when it
// starts at or after the end of the last kept hit. At an exact
// start-offset tie the hit found first in iteration order wins. This
// favors earlier, shorter spans over later, longer ones at the same
// start.
func ResolveSpans(matches []chronoclip.RawMatch) []chronoclip.TemporalSpan {
	if len(matches) == 0 {
		return nil
	}

	sorted := make([]chronoclip.RawMatch, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	spans := make([]chronoclip.TemporalSpan, 0, len(sorted))
	lastEnd := -1
	for _, m := range sorted {
		if m.Start < lastEnd {
			continue
		}
		spans = append(spans, chronoclip.TemporalSpan{
			Start:      m.Start,
			End:        m.End,
			Text:       m.Text,
			Recognizer: m.Recognizer,
			Date:       m.Date,
			Time:       m.Time,
			EndTime:    m.EndTime,
			Kind:       m.Kind,
		})
		lastEnd = m.End
	}
	return spans
}

// formatDate renders an ISO date. Callers have already established
// validity via chronoclip.IsValidDate.
func formatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
