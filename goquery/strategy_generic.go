package goquery

import (
	"context"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"github.com/is0692vs/ChronoClip-sub000/detect"
)

// Ensure GenericStrategy implements chronoclip.Strategy at compile time.
var _ chronoclip.Strategy = (*GenericStrategy)(nil)

// GenericStrategy is the universal heuristic extraction path: it scans
// the content tree around the anchor for candidates, scores them, and
// assembles a result. It works on any page and is always registered as
// the registry's terminal fallback.
type GenericStrategy struct {
	scanner *Scanner

	// pages are optional page-level extractors consulted when the
	// structural walk yields no usable candidates and raw markup is
	// available.
	pages []chronoclip.PageExtractor
}

// NewGenericStrategy creates a GenericStrategy. Page extractors are
// optional and tried in order.
func NewGenericStrategy(scanner *Scanner, pages ...chronoclip.PageExtractor) *GenericStrategy {
	if scanner == nil {
		scanner = NewScanner()
	}
	return &GenericStrategy{scanner: scanner, pages: pages}
}

// Name returns the strategy's identifier.
func (g *GenericStrategy) Name() string {
	return "generic"
}

// ExtractAll runs the generic heuristic extraction for one context.
func (g *GenericStrategy) ExtractAll(_ context.Context, ectx *chronoclip.ExtractionContext) (*chronoclip.ExtractionResult, error) {
	if ectx == nil || (ectx.Anchor == nil && ectx.Root == nil && ectx.SelectionText == "") {
		return nil, chronoclip.Errorf(chronoclip.EINVALID, "extraction context has no anchor, root, or selection")
	}

	anchor := ectx.Anchor
	if anchor == nil {
		anchor = ectx.Root
	}

	spans := g.spans(ectx, anchor)

	titleCands := g.scanner.TitleCandidates(anchor)
	if page := g.scanner.PageTitleCandidate(ectx.Root); page != nil {
		titleCands = append(titleCands, *page)
	}

	descCands := g.scanner.DescriptionCandidates(anchor)

	// Last resort: page-level extraction from raw markup.
	if len(titleCands) == 0 || len(descCands) == 0 {
		pageTitle, pageText := g.extractPage(ectx.HTML)
		if len(titleCands) == 0 && pageTitle != "" {
			titleCands = append(titleCands, chronoclip.Candidate{
				Text:   chronoclip.StripTitleBoilerplate(pageTitle),
				Origin: chronoclip.OriginPage,
				Role:   chronoclip.RoleTitle,
			})
		}
		if len(descCands) == 0 && pageText != "" {
			descCands = append(descCands, chronoclip.Candidate{
				Text:   chronoclip.NormalizeText(pageText),
				Origin: chronoclip.OriginPage,
				Role:   chronoclip.RoleDescription,
			})
		}
	}

	result := &chronoclip.ExtractionResult{
		Strategy: g.Name(),
		DateInfo: detect.BuildDateInfo(spans, ectx.Ref, ectx.TimeZone),
		Location: g.scanner.Location(anchor),
	}

	var titleScore float64
	if best := chronoclip.BestTitle(titleCands); best != nil {
		result.Title = best.Text
		result.Sources = append(result.Sources, string(best.Origin))
		titleScore = best.Score
	}

	result.Description = chronoclip.BuildDescription(descCands)
	if result.Description != "" {
		result.Sources = append(result.Sources, string(chronoclip.OriginNearby))
	}

	result.Confidence = (titleScore + chronoclip.DescriptionQuality(result.Description)) / 2
	return result, nil
}

// spans returns the temporal spans for the context: the caller-supplied
// span when present, otherwise a fresh detection over the anchor text
// (or selection text).
func (g *GenericStrategy) spans(ectx *chronoclip.ExtractionContext, anchor chronoclip.Node) []chronoclip.TemporalSpan {
	if ectx.Span != nil {
		return []chronoclip.TemporalSpan{*ectx.Span}
	}
	text := ectx.SelectionText
	if text == "" && anchor != nil {
		text = anchor.Text()
	}
	return detect.DetectSpans(chronoclip.NormalizeText(text), ectx.Ref)
}

// extractPage runs the configured page extractors over raw markup,
// returning the first successful title/content pair.
func (g *GenericStrategy) extractPage(html string) (title, content string) {
	if html == "" {
		return "", ""
	}
	for _, p := range g.pages {
		res, err := p.Extract(html)
		if err != nil || res == nil {
			continue
		}
		return res.Title, res.ContentText
	}
	return "", ""
}
