package goquery

import (
	"context"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

// Ensure Registry implements chronoclip.StrategyRegistry at compile time.
var _ chronoclip.StrategyRegistry = (*Registry)(nil)

// Registry manages site-specific extraction strategies and dispatches
// extraction calls. Resolution order per call: an explicit strategy
// named by the host's settings rule, then a selector strategy built from
// the rule, then site detection, then the generic fallback. A
// specialized strategy failure triggers a degraded re-run with the
// generic strategy; the failure never propagates.
type Registry struct {
	detector   chronoclip.SiteDetector
	fallback   chronoclip.Strategy
	settings   chronoclip.SettingsSource
	scanner    *Scanner
	strategies map[chronoclip.SiteKind]chronoclip.Strategy
}

// NewRegistry creates a Registry with the given detector and generic
// fallback strategy. The settings source is optional: without one, only
// detection and fallback apply.
func NewRegistry(detector chronoclip.SiteDetector, fallback chronoclip.Strategy, settings chronoclip.SettingsSource, scanner *Scanner) *Registry {
	if scanner == nil {
		scanner = NewScanner()
	}
	return &Registry{
		detector:   detector,
		fallback:   fallback,
		settings:   settings,
		scanner:    scanner,
		strategies: make(map[chronoclip.SiteKind]chronoclip.Strategy),
	}
}

// NewDefaultRegistry creates a Registry with every built-in specialized
// strategy registered.
func NewDefaultRegistry(settings chronoclip.SettingsSource, pages ...chronoclip.PageExtractor) *Registry {
	scanner := NewScanner()
	r := NewRegistry(NewDetector(), NewGenericStrategy(scanner, pages...), settings, scanner)
	r.Register(chronoclip.SiteConnpass, NewConnpassStrategy(scanner))
	r.Register(chronoclip.SiteEventbrite, NewEventbriteStrategy(scanner))
	r.Register(chronoclip.SiteSchemaOrg, NewSchemaOrgStrategy())
	return r
}

// Get returns the strategy for a specific kind.
// Returns nil if no strategy is registered for the kind.
func (r *Registry) Get(kind chronoclip.SiteKind) chronoclip.Strategy {
	return r.strategies[kind]
}

// Register adds a strategy for a kind.
// If a strategy is already registered for the kind, it is replaced.
func (r *Registry) Register(kind chronoclip.SiteKind, s chronoclip.Strategy) {
	r.strategies[kind] = s
}

// List returns all registered kinds.
func (r *Registry) List() []chronoclip.SiteKind {
	kinds := make([]chronoclip.SiteKind, 0, len(r.strategies))
	for k := range r.strategies {
		kinds = append(kinds, k)
	}
	return kinds
}

// ExtractAll resolves the strategy for the context and runs it. The
// returned result is never nil: a specialized failure degrades to a
// generic re-run tagged with the original error, and a generic failure
// degrades to a minimal near-zero-confidence result.
func (r *Registry) ExtractAll(ctx context.Context, ectx *chronoclip.ExtractionContext) *chronoclip.ExtractionResult {
	strategy := r.resolve(ctx, ectx)

	result, err := strategy.ExtractAll(ctx, ectx)
	if err == nil && result != nil {
		return result
	}

	errMessage := "strategy returned no result"
	if err != nil {
		errMessage = err.Error()
	}

	if strategy != r.fallback && r.fallback != nil {
		result, ferr := r.fallback.ExtractAll(ctx, ectx)
		if ferr == nil && result != nil {
			result.Fallback = true
			result.FallbackError = errMessage
			return result
		}
	}

	return &chronoclip.ExtractionResult{
		Strategy:      strategy.Name(),
		Confidence:    0,
		Fallback:      true,
		FallbackError: errMessage,
	}
}

// resolve picks the strategy for one extraction call.
func (r *Registry) resolve(ctx context.Context, ectx *chronoclip.ExtractionContext) chronoclip.Strategy {
	if rule := r.effectiveRule(ctx, ectx.Domain); rule != nil {
		if rule.Strategy != "" {
			if s := r.Get(chronoclip.SiteKind(rule.Strategy)); s != nil {
				return s
			}
		}
		if rule.HasSelectors() {
			return NewSelectorStrategy(rule, r.scanner)
		}
	}

	if r.detector != nil {
		if s, ok := r.strategies[r.detector.Detect(ectx.Domain, ectx.Root)]; ok {
			return s
		}
	}

	return r.fallback
}

// effectiveRule fetches the host's settings rule. Settings failures are
// treated as "no override": configuration must never break extraction.
func (r *Registry) effectiveRule(ctx context.Context, domain string) *chronoclip.ExtractorRule {
	if r.settings == nil || domain == "" {
		return nil
	}
	settings, err := r.settings.EffectiveSettings(ctx, domain)
	if err != nil || settings == nil || !settings.RulesEnabled {
		return nil
	}
	return settings.Rule
}
