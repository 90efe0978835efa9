// Package readability provides page-level content extraction using
// go-readability.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

// Ensure Extractor implements chronoclip.PageExtractor at compile time.
var _ chronoclip.PageExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &chronoclip.PageExtractResult{
		Title:       article.Title,
		ContentText: article.TextContent,
	}, nil
}
