package mock

import chronoclip "github.com/is0692vs/ChronoClip-sub000"

var _ chronoclip.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of chronoclip.PageExtractor.
type PageExtractor struct {
	ExtractFn func(html string) (*chronoclip.PageExtractResult, error)
}

func (p *PageExtractor) Extract(html string) (*chronoclip.PageExtractResult, error) {
	return p.ExtractFn(html)
}
