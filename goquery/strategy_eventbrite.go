package goquery

import chronoclip "github.com/is0692vs/ChronoClip-sub000"

// eventbriteRule holds the fixed selectors for eventbrite.com listing
// pages.
var eventbriteRule = &chronoclip.ExtractorRule{
	Domain:              "eventbrite.com",
	TitleSelector:       "h1.event-title, h1[class*=event-title], .listing-hero h1",
	DateSelector:        ".date-info, time[datetime], [class*=date-and-time]",
	DescriptionSelector: ".event-description, [class*=structured-content], .summary",
	LocationSelector:    ".location-info, [class*=venue], .address",
	IgnoreSelector:      ".eds-share, nav, footer",
}

// NewEventbriteStrategy creates the eventbrite.com extraction strategy.
func NewEventbriteStrategy(scanner *Scanner) *SelectorStrategy {
	s := NewSelectorStrategy(eventbriteRule, scanner)
	s.name = string(chronoclip.SiteEventbrite)
	return s
}
