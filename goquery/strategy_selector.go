package goquery

import (
	"context"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"github.com/is0692vs/ChronoClip-sub000/detect"
)

// Ensure SelectorStrategy implements chronoclip.Strategy at compile time.
var _ chronoclip.Strategy = (*SelectorStrategy)(nil)

// Title text found through a fixed selector is trusted more than any
// heuristic guess, but not blindly.
const selectorTitleScore = 0.90

// SelectorStrategy extracts event fields through fixed CSS selectors
// from a per-domain rule. Missing fields fall back to the scanner's
// heuristics so a partial rule still produces a complete result.
type SelectorStrategy struct {
	name    string
	rule    *chronoclip.ExtractorRule
	scanner *Scanner
}

// NewSelectorStrategy creates a strategy for an externally supplied
// rule.
func NewSelectorStrategy(rule *chronoclip.ExtractorRule, scanner *Scanner) *SelectorStrategy {
	if scanner == nil {
		scanner = NewScanner()
	}
	return &SelectorStrategy{name: "selector", rule: rule, scanner: scanner}
}

// Name returns the strategy's identifier.
func (s *SelectorStrategy) Name() string {
	return s.name
}

// ExtractAll extracts event fields using the rule's selectors.
func (s *SelectorStrategy) ExtractAll(_ context.Context, ectx *chronoclip.ExtractionContext) (*chronoclip.ExtractionResult, error) {
	if ectx == nil || ectx.Root == nil {
		return nil, chronoclip.Errorf(chronoclip.EINVALID, "selector strategy requires a document root")
	}
	if s.rule == nil {
		return nil, chronoclip.Errorf(chronoclip.EINVALID, "selector strategy has no rule")
	}

	result := &chronoclip.ExtractionResult{Strategy: s.Name()}

	title := s.firstText(ectx.Root, s.rule.TitleSelector)
	result.Location = s.firstText(ectx.Root, s.rule.LocationSelector)
	result.Price = s.firstText(ectx.Root, s.rule.PriceSelector)

	var descCands []chronoclip.Candidate
	for _, text := range s.allText(ectx.Root, s.rule.DescriptionSelector) {
		descCands = append(descCands, chronoclip.Candidate{
			Text:   text,
			Origin: chronoclip.OriginNearby,
			Role:   chronoclip.RoleDescription,
		})
	}

	dateText := s.firstText(ectx.Root, s.rule.DateSelector)
	spans := detect.DetectSpans(dateText, ectx.Ref)
	if len(spans) == 0 {
		spans = s.fallbackSpans(ectx)
	}
	result.DateInfo = detect.BuildDateInfo(spans, ectx.Ref, ectx.TimeZone)

	titleScore := selectorTitleScore
	if title == "" || chronoclip.IsNoisy(title) {
		// Partial rule: reuse the heuristic path for the missing field.
		titleScore = 0
		anchor := ectx.Anchor
		if anchor == nil {
			anchor = ectx.Root
		}
		cands := s.scanner.TitleCandidates(anchor)
		if page := s.scanner.PageTitleCandidate(ectx.Root); page != nil {
			cands = append(cands, *page)
		}
		if best := chronoclip.BestTitle(cands); best != nil {
			title = best.Text
			titleScore = best.Score
			result.Sources = append(result.Sources, string(best.Origin))
		}
	} else {
		result.Sources = append(result.Sources, "selector")
	}
	result.Title = title

	if len(descCands) == 0 {
		anchor := ectx.Anchor
		if anchor == nil {
			anchor = ectx.Root
		}
		descCands = s.scanner.DescriptionCandidates(anchor)
	}
	result.Description = chronoclip.BuildDescription(descCands)

	if result.Location == "" {
		result.Location = s.scanner.Location(ectx.Anchor)
	}

	result.Confidence = (titleScore + chronoclip.DescriptionQuality(result.Description)) / 2
	return result, nil
}

// firstText returns the normalized text of the first node matching the
// selector, skipping nodes matched by the rule's ignore selector.
func (s *SelectorStrategy) firstText(root chronoclip.Node, selector string) string {
	for _, text := range s.allText(root, selector) {
		return text
	}
	return ""
}

// allText returns normalized text for every node matching the selector,
// skipping ignored and empty nodes.
func (s *SelectorStrategy) allText(root chronoclip.Node, selector string) []string {
	if selector == "" {
		return nil
	}
	var out []string
	for _, n := range root.Find(selector) {
		if s.rule.IgnoreSelector != "" && n.Is(s.rule.IgnoreSelector) {
			continue
		}
		if text := chronoclip.NormalizeText(n.Text()); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// fallbackSpans re-detects over the anchor or selection text when the
// rule's date selector finds nothing.
func (s *SelectorStrategy) fallbackSpans(ectx *chronoclip.ExtractionContext) []chronoclip.TemporalSpan {
	if ectx.Span != nil {
		return []chronoclip.TemporalSpan{*ectx.Span}
	}
	text := ectx.SelectionText
	if text == "" && ectx.Anchor != nil {
		text = ectx.Anchor.Text()
	}
	if text == "" {
		return nil
	}
	return detect.DetectSpans(chronoclip.NormalizeText(text), ectx.Ref)
}
