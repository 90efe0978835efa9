package chronoclip

import (
	"context"
	"time"
)

// Node is an opaque handle into a caller-supplied content tree. The core
// is a read-only consumer: it never mutates the tree and never caches
// nodes across calls. Only these operations are required of the host
// document; sibling slices are ordered nearest-first.
type Node interface {
	// Text returns the node's rendered text content.
	Text() string

	// Parent returns the parent node, or false at the tree root.
	Parent() (Node, bool)

	// PrevSiblings returns preceding siblings, nearest first.
	PrevSiblings() []Node

	// NextSiblings returns following siblings, nearest first.
	NextSiblings() []Node

	// Find returns descendants matching a CSS-style selector.
	Find(selector string) []Node

	// Is reports whether the node itself matches the selector.
	Is(selector string) bool

	// Attr returns a declared attribute value.
	Attr(name string) (string, bool)
}

// SiteKind identifies a specialized extraction strategy family.
type SiteKind string

// Known site kinds.
const (
	SiteUnknown    SiteKind = ""
	SiteGeneric    SiteKind = "generic"
	SiteSelector   SiteKind = "selector"
	SiteSchemaOrg  SiteKind = "schemaorg"
	SiteConnpass   SiteKind = "connpass"
	SiteEventbrite SiteKind = "eventbrite"
)

// ExtractionContext carries everything one extraction call needs. It is
// built by the facade per call and is immutable from the strategies'
// point of view.
type ExtractionContext struct {
	// Domain is the host identifier used for registry lookup.
	Domain string

	// URL is the page address, when known. Informational only.
	URL string

	// Anchor is the node the detected span was found in; the starting
	// point for context search.
	Anchor Node

	// Root is the document root, used for page-level fallbacks and
	// site detection. May equal Anchor.
	Root Node

	// HTML is the raw document markup when available. Page-level
	// extractors consume it; tree-walking strategies ignore it.
	HTML string

	// SelectionText is caller-selected text anchoring the extraction,
	// when the call site is a text selection rather than a node.
	SelectionText string

	// Span is the temporal span of interest, when the caller already
	// detected one. Strategies re-detect from the anchor text when nil.
	Span *TemporalSpan

	// Ref is the reference instant for relative and year-less
	// resolution. Never read from the ambient clock inside the core.
	Ref time.Time

	// TimeZone is the IANA zone for timed results.
	TimeZone string
}

// Strategy is a self-contained extraction algorithm. A strategy returns
// an error only when it genuinely crashed; "found nothing useful" is a
// low-confidence result, not an error.
type Strategy interface {
	// ExtractAll runs the full extraction for one context.
	ExtractAll(ctx context.Context, ectx *ExtractionContext) (*ExtractionResult, error)

	// Name returns the strategy's identifier (e.g., "connpass", "generic").
	Name() string
}

// SiteDetector picks a specialized strategy kind for a page from its
// domain and markup. Returns SiteUnknown when no specialized strategy
// applies.
type SiteDetector interface {
	Detect(domain string, root Node) SiteKind
}

// StrategyRegistry maps site kinds to strategies and dispatches
// extraction calls. A generic strategy is always present as terminal
// fallback; a specialized strategy failure is converted into a degraded
// generic re-run, never propagated.
type StrategyRegistry interface {
	// Get returns the strategy for a specific kind.
	// Returns nil if no strategy is registered for the kind.
	Get(kind SiteKind) Strategy

	// Register adds a strategy for a kind, replacing any existing one.
	Register(kind SiteKind, s Strategy)

	// List returns all registered kinds.
	List() []SiteKind

	// ExtractAll resolves the strategy for the context (settings rule,
	// then site detection, then generic) and runs it. The returned
	// result is never nil.
	ExtractAll(ctx context.Context, ectx *ExtractionContext) *ExtractionResult
}

// ContextExtractor is the unified extraction facade callers use. It
// never returns an error: total failure degrades to a minimal result
// with near-zero confidence.
type ContextExtractor interface {
	Extract(ctx context.Context, ectx *ExtractionContext) *ExtractionResult
}

// PageExtractResult holds page-level content extracted from raw markup.
type PageExtractResult struct {
	// Title is the page title from metadata.
	Title string

	// ContentText is the main content as plain text, boilerplate
	// removed.
	ContentText string
}

// PageExtractor extracts page-level main content from raw HTML. Used as
// the last-resort candidate source when structural context yields
// nothing.
type PageExtractor interface {
	Extract(html string) (*PageExtractResult, error)
}

// Fetcher retrieves page markup for the CLI call sites. The extraction
// core itself performs no I/O.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	Close() error
}

// Converter transforms HTML content into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
