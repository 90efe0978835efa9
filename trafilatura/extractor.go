// Package trafilatura provides page-level content extraction using
// go-trafilatura.
package trafilatura

import (
	"strings"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements chronoclip.PageExtractor at compile time.
var _ chronoclip.PageExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main
// content as plain text.
func (e *Extractor) Extract(rawHTML string) (*chronoclip.PageExtractResult, error) {
	if rawHTML == "" {
		return nil, chronoclip.Errorf(chronoclip.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &chronoclip.PageExtractResult{
		Title:       result.Metadata.Title,
		ContentText: result.ContentText,
	}, nil
}
