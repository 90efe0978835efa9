package goquery

import (
	"context"
	"fmt"
	"time"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"github.com/is0692vs/ChronoClip-sub000/detect"
)

// Ensure Extractor implements chronoclip.ContextExtractor at compile time.
var _ chronoclip.ContextExtractor = (*Extractor)(nil)

// Confidence of the minimal degraded path: anchor text plus nearest
// heading, nothing else.
const minimalConfidence = 0.1

// DefaultTimeZone is used for timed results when the caller supplies
// none.
const DefaultTimeZone = "Asia/Tokyo"

// Extractor is the unified extraction facade. It builds extraction
// contexts for the two call sites (text selection, highlighted node),
// dispatches to the strategy registry, and guarantees a structured
// result: no call path returns an error or panics to the caller,
// degraded paths lower the confidence instead.
type Extractor struct {
	registry chronoclip.StrategyRegistry
	timeZone string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTimeZone sets the IANA zone applied to timed results.
// Defaults to DefaultTimeZone if not specified.
func WithTimeZone(tz string) Option {
	return func(e *Extractor) {
		e.timeZone = tz
	}
}

// NewExtractor creates an extraction facade over a strategy registry.
// A nil registry is tolerated: every call then takes the minimal path.
func NewExtractor(registry chronoclip.StrategyRegistry, opts ...Option) *Extractor {
	e := &Extractor{registry: registry, timeZone: DefaultTimeZone}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractFromSelection extracts the event context around a caller-made
// text selection. The anchor is the node containing the selection.
func (e *Extractor) ExtractFromSelection(ctx context.Context, selection string, anchor chronoclip.Node, ectx *chronoclip.ExtractionContext) *chronoclip.ExtractionResult {
	full := e.fill(ectx)
	full.SelectionText = selection
	full.Anchor = anchor
	return e.Extract(ctx, full)
}

// ExtractFromNode extracts the event context around a highlighted node.
func (e *Extractor) ExtractFromNode(ctx context.Context, anchor chronoclip.Node, ectx *chronoclip.ExtractionContext) *chronoclip.ExtractionResult {
	full := e.fill(ectx)
	full.Anchor = anchor
	return e.Extract(ctx, full)
}

// Extract runs the full pipeline for a prepared context. It never
// returns nil and never propagates a failure: a crash anywhere below
// degrades to the minimal result.
func (e *Extractor) Extract(ctx context.Context, ectx *chronoclip.ExtractionContext) (result *chronoclip.ExtractionResult) {
	ectx = e.fill(ectx)

	defer func() {
		if p := recover(); p != nil {
			result = minimalResult(ectx, fmt.Sprintf("extraction panic: %v", p))
		}
	}()

	if e.registry == nil {
		return minimalResult(ectx, "no strategy registry available")
	}

	result = e.registry.ExtractAll(ctx, ectx)
	if result == nil {
		return minimalResult(ectx, "registry returned no result")
	}
	return result
}

// fill normalizes a possibly-nil context and applies facade defaults.
func (e *Extractor) fill(ectx *chronoclip.ExtractionContext) *chronoclip.ExtractionContext {
	if ectx == nil {
		ectx = &chronoclip.ExtractionContext{}
	}
	if ectx.TimeZone == "" {
		ectx.TimeZone = e.timeZone
	}
	if ectx.Ref.IsZero() {
		ectx.Ref = time.Now()
	}
	if ectx.Root == nil {
		ectx.Root = ectx.Anchor
	}
	return ectx
}

// minimalResult produces a result from the anchor text and nearest
// heading alone, with a low fixed confidence. It must not fail for any
// input: it is the floor under every other path.
func minimalResult(ectx *chronoclip.ExtractionContext, diagnostic string) *chronoclip.ExtractionResult {
	result := &chronoclip.ExtractionResult{
		Strategy:      "minimal",
		Confidence:    minimalConfidence,
		Fallback:      true,
		FallbackError: diagnostic,
	}

	text := ectx.SelectionText
	if text == "" && ectx.Anchor != nil {
		text = ectx.Anchor.Text()
	}
	text = chronoclip.NormalizeText(text)
	if text != "" {
		result.Description = truncateRunes(text, 200)
		spans := detect.DetectSpans(text, ectx.Ref)
		result.DateInfo = detect.BuildDateInfo(spans, ectx.Ref, ectx.TimeZone)
	}

	if ectx.Anchor != nil {
		result.Title = nearestHeadingText(ectx.Anchor)
	}
	if result.Title == "" && result.Description == "" && result.DateInfo == nil {
		result.Confidence = 0
	}
	return result
}

// nearestHeadingText is a deliberately simple heading walk for the
// minimal path: anchor's own heading match or the first heading among
// direct ancestors' children, three levels up at most.
func nearestHeadingText(anchor chronoclip.Node) string {
	node := anchor
	for depth := 0; depth < 3; depth++ {
		if node.Is(headingSelector) {
			return chronoclip.NormalizeText(node.Text())
		}
		if headings := node.Find(headingSelector); len(headings) > 0 {
			return chronoclip.NormalizeText(headings[0].Text())
		}
		parent, ok := node.Parent()
		if !ok {
			break
		}
		node = parent
	}
	return ""
}

// DetectSpansAt is a convenience for callers that already hold a node:
// it detects spans in the node's normalized text.
func DetectSpansAt(node chronoclip.Node, ref time.Time) []chronoclip.TemporalSpan {
	if node == nil {
		return nil
	}
	return detect.DetectSpans(chronoclip.NormalizeText(node.Text()), ref)
}
