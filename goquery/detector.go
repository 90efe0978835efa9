package goquery

import (
	"strings"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

// Ensure Detector implements chronoclip.SiteDetector at compile time.
var _ chronoclip.SiteDetector = (*Detector)(nil)

// Detector picks a specialized strategy kind for a page. It checks
// domain substrings first (most reliable when present), then markup
// markers: schema.org Event JSON-LD works on any site that publishes it.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes the domain and document root and returns the
// identified site kind. Returns SiteUnknown when no specialized
// strategy applies.
func (d *Detector) Detect(domain string, root chronoclip.Node) chronoclip.SiteKind {
	host := strings.ToLower(domain)

	switch {
	case strings.Contains(host, "connpass"):
		return chronoclip.SiteConnpass
	case strings.Contains(host, "eventbrite"):
		return chronoclip.SiteEventbrite
	}

	if hasSchemaOrgEvent(root) {
		return chronoclip.SiteSchemaOrg
	}

	return chronoclip.SiteUnknown
}

// hasSchemaOrgEvent reports whether the document carries JSON-LD Event
// markup. A substring probe is enough here; the schema.org strategy does
// the real parsing.
func hasSchemaOrgEvent(root chronoclip.Node) bool {
	if root == nil {
		return false
	}
	for _, script := range root.Find(`script[type="application/ld+json"]`) {
		text := script.Text()
		if strings.Contains(text, `"@type"`) && strings.Contains(text, "Event") {
			return true
		}
	}
	return false
}
