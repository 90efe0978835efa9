package goquery

import chronoclip "github.com/is0692vs/ChronoClip-sub000"

// connpassRule holds the fixed selectors for connpass.com event pages.
// The schedule block carries machine-readable dtstart/dtend text, so the
// date selector points there first.
var connpassRule = &chronoclip.ExtractorRule{
	Domain:              "connpass.com",
	TitleSelector:       "h1.event-title, .event_title, h1[itemprop=name]",
	DateSelector:        ".dtstart, .event-day, .event_schedule_area, [class*=schedule]",
	DescriptionSelector: ".event-description, #editor_area, .description",
	LocationSelector:    ".event-place, .place, [itemprop=location]",
	IgnoreSelector:      ".event-share, .social, nav",
}

// NewConnpassStrategy creates the connpass.com extraction strategy.
func NewConnpassStrategy(scanner *Scanner) *SelectorStrategy {
	s := NewSelectorStrategy(connpassRule, scanner)
	s.name = string(chronoclip.SiteConnpass)
	return s
}
