package chronoclip

import "time"

// SpanKind classifies what a temporal span carries.
type SpanKind string

// Span kinds.
const (
	SpanDate     SpanKind = "date"
	SpanTime     SpanKind = "time"
	SpanDateTime SpanKind = "datetime"
)

// RawMatch is a single recognizer hit before overlap resolution.
// Offsets are byte offsets into the scanned text.
type RawMatch struct {
	Start      int
	End        int
	Text       string
	Recognizer string
	Date       string // ISO date (2006-01-02), empty when the match has no date
	Time       string // HH:MM, empty when the match has no time
	EndTime    string // HH:MM, set only for time ranges
	Kind       SpanKind
}

// TemporalSpan is a resolved, non-overlapping temporal expression within
// one text unit. Within a resolved sequence spans are ordered by start
// offset and never overlap.
type TemporalSpan struct {
	Start      int      `json:"startOffset"`
	End        int      `json:"endOffset"`
	Text       string   `json:"rawText"`
	Recognizer string   `json:"recognizerId"`
	Date       string   `json:"normalizedDate,omitempty"`
	Time       string   `json:"normalizedTime,omitempty"`
	EndTime    string   `json:"normalizedEndTime,omitempty"`
	Kind       SpanKind `json:"kind"`
}

// Validate returns an error if the span violates its structural invariants.
func (s *TemporalSpan) Validate() error {
	if s.Start >= s.End {
		return Errorf(EINVALID, "span start offset %d must be before end offset %d", s.Start, s.End)
	}
	if s.Recognizer == "" {
		return Errorf(EINVALID, "span recognizer ID required")
	}
	if s.Date != "" {
		if _, err := time.Parse("2006-01-02", s.Date); err != nil {
			return Errorf(EINVALID, "span date %q is not a valid ISO date", s.Date)
		}
	}
	return nil
}

// Recognizer matches one lexical family of temporal expression.
// Implementations are pure: they hold no per-call state, so a single
// recognizer value is safe for concurrent use.
type Recognizer interface {
	// Match scans text and returns all hits for this family. The
	// reference instant resolves relative phrases and year-less
	// expressions; it is supplied by the caller, never read from the
	// ambient clock. Hits may overlap hits from other recognizers;
	// overlap is resolved downstream.
	Match(text string, ref time.Time) []RawMatch

	// Name returns the recognizer's identifier (e.g., "era", "numeric").
	Name() string
}
