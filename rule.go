package chronoclip

import "context"

// ExtractorRule is a per-domain override descriptor supplied through
// settings. A rule either names an explicit strategy or carries fixed
// CSS selectors for the event fields. Rules are immutable during a
// single extraction call; the core only ever reads them.
type ExtractorRule struct {
	Domain              string `yaml:"domain" json:"domain"`
	Strategy            string `yaml:"strategy,omitempty" json:"strategy,omitempty"`
	TitleSelector       string `yaml:"titleSelector,omitempty" json:"titleSelector,omitempty"`
	DateSelector        string `yaml:"dateSelector,omitempty" json:"dateSelector,omitempty"`
	DescriptionSelector string `yaml:"descriptionSelector,omitempty" json:"descriptionSelector,omitempty"`
	LocationSelector    string `yaml:"locationSelector,omitempty" json:"locationSelector,omitempty"`
	PriceSelector       string `yaml:"priceSelector,omitempty" json:"priceSelector,omitempty"`
	IgnoreSelector      string `yaml:"ignoreSelector,omitempty" json:"ignoreSelector,omitempty"`
	Priority            int    `yaml:"priority,omitempty" json:"priority,omitempty"`
}

// Validate returns an error if the rule contains invalid fields.
func (r *ExtractorRule) Validate() error {
	if r.Domain == "" {
		return Errorf(EINVALID, "rule domain required")
	}
	if r.Strategy == "" && r.TitleSelector == "" && r.DateSelector == "" {
		return Errorf(EINVALID, "rule for %q names neither a strategy nor selectors", r.Domain)
	}
	return nil
}

// HasSelectors reports whether the rule carries any fixed selectors.
func (r *ExtractorRule) HasSelectors() bool {
	return r.TitleSelector != "" || r.DateSelector != "" ||
		r.DescriptionSelector != "" || r.LocationSelector != "" ||
		r.PriceSelector != ""
}

// Settings is the effective configuration for one host, as seen by the
// strategy registry. The core treats it as opaque read-only input.
type Settings struct {
	RulesEnabled bool           `json:"rulesEnabled"`
	Rule         *ExtractorRule `json:"siteRule,omitempty"`
}

// SettingsSource supplies effective settings for a host. Implementations
// may await externally stored configuration; the detection and scoring
// core never calls this directly, only the registry does.
type SettingsSource interface {
	// EffectiveSettings returns the settings that apply to the host.
	// A host with no override returns Settings with a nil Rule, not an
	// error.
	EffectiveSettings(ctx context.Context, host string) (*Settings, error)
}
