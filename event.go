package chronoclip

import "time"

// EventDateTime is one endpoint of a resolved event time. All-day events
// set Date only; timed events set DateTime and TimeZone. The layout
// mirrors what calendar APIs accept so a result can be handed off
// without reshaping.
type EventDateTime struct {
	Date     string `json:"date,omitempty"`     // 2006-01-02
	DateTime string `json:"dateTime,omitempty"` // 2006-01-02T15:04:05
	TimeZone string `json:"timeZone,omitempty"` // IANA name
}

// ResolvedDateInfo carries a resolved start/end pair. Either both
// endpoints are all-day dates or both are timed. Invariant: End is never
// before Start.
type ResolvedDateInfo struct {
	Start EventDateTime `json:"start"`
	End   EventDateTime `json:"end"`
}

// AllDay reports whether the pair is an all-day range.
func (d *ResolvedDateInfo) AllDay() bool {
	return d.Start.Date != ""
}

// Validate returns an error if the pair is malformed or inverted.
func (d *ResolvedDateInfo) Validate() error {
	if d.Start.Date != "" {
		start, err := time.Parse("2006-01-02", d.Start.Date)
		if err != nil {
			return Errorf(EINVALID, "start date %q is not a valid ISO date", d.Start.Date)
		}
		end, err := time.Parse("2006-01-02", d.End.Date)
		if err != nil {
			return Errorf(EINVALID, "end date %q is not a valid ISO date", d.End.Date)
		}
		if end.Before(start) {
			return Errorf(EINVALID, "event end %s precedes start %s", d.End.Date, d.Start.Date)
		}
		return nil
	}
	start, err := time.Parse("2006-01-02T15:04:05", d.Start.DateTime)
	if err != nil {
		return Errorf(EINVALID, "start datetime %q is not valid", d.Start.DateTime)
	}
	end, err := time.Parse("2006-01-02T15:04:05", d.End.DateTime)
	if err != nil {
		return Errorf(EINVALID, "end datetime %q is not valid", d.End.DateTime)
	}
	if end.Before(start) {
		return Errorf(EINVALID, "event end %s precedes start %s", d.End.DateTime, d.Start.DateTime)
	}
	return nil
}

// CandidateRole says what a scored candidate is a candidate for.
type CandidateRole string

// Candidate roles.
const (
	RoleTitle       CandidateRole = "title"
	RoleDescription CandidateRole = "description"
)

// CandidateOrigin identifies the structural source a candidate came
// from. Origins carry an implicit quality order: heading > emphasis >
// nearby text > page-level fallback.
type CandidateOrigin string

// Candidate origins.
const (
	OriginHeading  CandidateOrigin = "heading"
	OriginEmphasis CandidateOrigin = "emphasis"
	OriginNearby   CandidateOrigin = "nearby"
	OriginPage     CandidateOrigin = "page"
)

// Candidate is a scored title or description fragment. Candidates are
// created fresh per extraction call and discarded once the best one is
// chosen; they are never persisted.
type Candidate struct {
	Text   string          `json:"text"`
	Score  float64         `json:"score"`
	Origin CandidateOrigin `json:"originDescriptor"`
	Role   CandidateRole   `json:"role"`
}

// ExtractionResult is the structured output of one extraction call.
// Confidence is a heuristic quality estimate in [0,1], not a
// probability.
type ExtractionResult struct {
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Location    string            `json:"location,omitempty"`
	Price       string            `json:"price,omitempty"`
	DateInfo    *ResolvedDateInfo `json:"dateInfo,omitempty"`
	Confidence  float64           `json:"confidence"`
	Strategy    string            `json:"strategyUsed"`

	// Fallback is set when a specialized strategy failed and the generic
	// strategy produced this result instead. FallbackError carries the
	// original failure message.
	Fallback      bool   `json:"fallback,omitempty"`
	FallbackError string `json:"fallbackError,omitempty"`

	// Sources lists the origin descriptors that contributed to the
	// chosen title and description.
	Sources []string `json:"sources,omitempty"`
}

// Validate returns an error if the result violates its invariants.
func (r *ExtractionResult) Validate() error {
	if r.Confidence < 0 || r.Confidence > 1 {
		return Errorf(EINVALID, "confidence %v outside [0,1]", r.Confidence)
	}
	if r.Strategy == "" {
		return Errorf(EINVALID, "result strategy name required")
	}
	if r.DateInfo != nil {
		return r.DateInfo.Validate()
	}
	return nil
}
