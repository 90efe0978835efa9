package goquery_test

import (
	"context"
	"testing"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"github.com/is0692vs/ChronoClip-sub000/goquery"
	"github.com/is0692vs/ChronoClip-sub000/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticStrategy(name string, result *chronoclip.ExtractionResult, err error) *mock.Strategy {
	return &mock.Strategy{
		NameFn: func() string { return name },
		ExtractAllFn: func(context.Context, *chronoclip.ExtractionContext) (*chronoclip.ExtractionResult, error) {
			return result, err
		},
	}
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns registered strategy for kind", func(t *testing.T) {
		t.Parallel()

		detector := &mock.SiteDetector{}
		fallback := staticStrategy("generic", &chronoclip.ExtractionResult{Strategy: "generic"}, nil)
		connpass := staticStrategy("connpass", nil, nil)

		registry := goquery.NewRegistry(detector, fallback, nil, nil)
		registry.Register(chronoclip.SiteConnpass, connpass)

		got := registry.Get(chronoclip.SiteConnpass)
		require.NotNil(t, got)
		assert.Equal(t, "connpass", got.Name())
	})

	t.Run("returns nil for unregistered kind", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry(&mock.SiteDetector{}, staticStrategy("generic", nil, nil), nil, nil)

		assert.Nil(t, registry.Get(chronoclip.SiteEventbrite))
	})
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	registry := goquery.NewRegistry(&mock.SiteDetector{}, staticStrategy("generic", nil, nil), nil, nil)
	registry.Register(chronoclip.SiteConnpass, staticStrategy("connpass", nil, nil))
	registry.Register(chronoclip.SiteSchemaOrg, staticStrategy("schemaorg", nil, nil))

	kinds := registry.List()
	assert.ElementsMatch(t, []chronoclip.SiteKind{chronoclip.SiteConnpass, chronoclip.SiteSchemaOrg}, kinds)
}

func TestRegistry_ExtractAll(t *testing.T) {
	t.Parallel()

	t.Run("dispatches to the detected strategy", func(t *testing.T) {
		t.Parallel()

		detector := &mock.SiteDetector{
			DetectFn: func(domain string, root chronoclip.Node) chronoclip.SiteKind {
				return chronoclip.SiteConnpass
			},
		}
		fallback := staticStrategy("generic", &chronoclip.ExtractionResult{Strategy: "generic"}, nil)
		connpass := staticStrategy("connpass", &chronoclip.ExtractionResult{Strategy: "connpass", Confidence: 0.9}, nil)

		registry := goquery.NewRegistry(detector, fallback, nil, nil)
		registry.Register(chronoclip.SiteConnpass, connpass)

		result := registry.ExtractAll(context.Background(), &chronoclip.ExtractionContext{Domain: "connpass.com"})
		require.NotNil(t, result)
		assert.Equal(t, "connpass", result.Strategy)
		assert.False(t, result.Fallback)
	})

	t.Run("uses the fallback when detection finds nothing", func(t *testing.T) {
		t.Parallel()

		detector := &mock.SiteDetector{
			DetectFn: func(domain string, root chronoclip.Node) chronoclip.SiteKind {
				return chronoclip.SiteUnknown
			},
		}
		fallback := staticStrategy("generic", &chronoclip.ExtractionResult{Strategy: "generic", Confidence: 0.4}, nil)

		registry := goquery.NewRegistry(detector, fallback, nil, nil)

		result := registry.ExtractAll(context.Background(), &chronoclip.ExtractionContext{Domain: "example.com"})
		require.NotNil(t, result)
		assert.Equal(t, "generic", result.Strategy)
		assert.False(t, result.Fallback)
	})

	t.Run("specialized failure degrades to a tagged fallback run", func(t *testing.T) {
		t.Parallel()

		detector := &mock.SiteDetector{
			DetectFn: func(domain string, root chronoclip.Node) chronoclip.SiteKind {
				return chronoclip.SiteSchemaOrg
			},
		}
		fallback := staticStrategy("generic", &chronoclip.ExtractionResult{Strategy: "generic", Confidence: 0.3}, nil)
		failing := staticStrategy("schemaorg", nil, chronoclip.Errorf(chronoclip.ENOTFOUND, "no schema.org event markup found"))

		registry := goquery.NewRegistry(detector, fallback, nil, nil)
		registry.Register(chronoclip.SiteSchemaOrg, failing)

		result := registry.ExtractAll(context.Background(), &chronoclip.ExtractionContext{Domain: "example.com"})
		require.NotNil(t, result)
		assert.Equal(t, "generic", result.Strategy)
		assert.True(t, result.Fallback)
		assert.Contains(t, result.FallbackError, "no schema.org event markup found")
	})

	t.Run("fallback failure still yields a result", func(t *testing.T) {
		t.Parallel()

		detector := &mock.SiteDetector{
			DetectFn: func(domain string, root chronoclip.Node) chronoclip.SiteKind {
				return chronoclip.SiteUnknown
			},
		}
		fallback := staticStrategy("generic", nil, chronoclip.Errorf(chronoclip.EINTERNAL, "scan crashed"))

		registry := goquery.NewRegistry(detector, fallback, nil, nil)

		result := registry.ExtractAll(context.Background(), &chronoclip.ExtractionContext{Domain: "example.com"})
		require.NotNil(t, result)
		assert.True(t, result.Fallback)
		assert.Zero(t, result.Confidence)
		assert.Contains(t, result.FallbackError, "scan crashed")
	})

	t.Run("settings rule names an explicit strategy", func(t *testing.T) {
		t.Parallel()

		settings := &mock.SettingsSource{
			EffectiveSettingsFn: func(ctx context.Context, host string) (*chronoclip.Settings, error) {
				return &chronoclip.Settings{
					RulesEnabled: true,
					Rule:         &chronoclip.ExtractorRule{Domain: host, Strategy: string(chronoclip.SiteConnpass)},
				}, nil
			},
		}
		fallback := staticStrategy("generic", &chronoclip.ExtractionResult{Strategy: "generic"}, nil)
		connpass := staticStrategy("connpass", &chronoclip.ExtractionResult{Strategy: "connpass"}, nil)

		registry := goquery.NewRegistry(&mock.SiteDetector{}, fallback, settings, nil)
		registry.Register(chronoclip.SiteConnpass, connpass)

		result := registry.ExtractAll(context.Background(), &chronoclip.ExtractionContext{Domain: "mirror.example.com"})
		assert.Equal(t, "connpass", result.Strategy)
	})

	t.Run("settings rule with selectors builds a selector strategy", func(t *testing.T) {
		t.Parallel()

		settings := &mock.SettingsSource{
			EffectiveSettingsFn: func(ctx context.Context, host string) (*chronoclip.Settings, error) {
				return &chronoclip.Settings{
					RulesEnabled: true,
					Rule: &chronoclip.ExtractorRule{
						Domain:        host,
						TitleSelector: ".headline",
						DateSelector:  ".when",
					},
				}, nil
			},
		}
		fallback := staticStrategy("generic", &chronoclip.ExtractionResult{Strategy: "generic"}, nil)

		doc, err := goquery.NewDocument(`<html><body>
			<h1 class="headline">Winter Illumination</h1>
			<div class="when">2025-12-01</div>
		</body></html>`)
		require.NoError(t, err)

		registry := goquery.NewRegistry(&mock.SiteDetector{}, fallback, settings, nil)

		result := registry.ExtractAll(context.Background(), &chronoclip.ExtractionContext{
			Domain: "lights.example.com",
			Root:   doc,
			Ref:    referenceInstant,
		})
		assert.Equal(t, "selector", result.Strategy)
		assert.Equal(t, "Winter Illumination", result.Title)
		require.NotNil(t, result.DateInfo)
		assert.Equal(t, "2025-12-01", result.DateInfo.Start.Date)
	})

	t.Run("settings failures never break extraction", func(t *testing.T) {
		t.Parallel()

		settings := &mock.SettingsSource{
			EffectiveSettingsFn: func(ctx context.Context, host string) (*chronoclip.Settings, error) {
				return nil, chronoclip.Errorf(chronoclip.EUNAVAILABLE, "settings store offline")
			},
		}
		detector := &mock.SiteDetector{
			DetectFn: func(domain string, root chronoclip.Node) chronoclip.SiteKind {
				return chronoclip.SiteUnknown
			},
		}
		fallback := staticStrategy("generic", &chronoclip.ExtractionResult{Strategy: "generic"}, nil)

		registry := goquery.NewRegistry(detector, fallback, settings, nil)

		result := registry.ExtractAll(context.Background(), &chronoclip.ExtractionContext{Domain: "example.com"})
		require.NotNil(t, result)
		assert.Equal(t, "generic", result.Strategy)
	})
}

func TestNewDefaultRegistry(t *testing.T) {
	t.Parallel()

	registry := goquery.NewDefaultRegistry(nil)

	assert.ElementsMatch(t, []chronoclip.SiteKind{
		chronoclip.SiteConnpass,
		chronoclip.SiteEventbrite,
		chronoclip.SiteSchemaOrg,
	}, registry.List())
}
