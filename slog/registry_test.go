package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"github.com/is0692vs/ChronoClip-sub000/mock"
	chronoslog "github.com/is0692vs/ChronoClip-sub000/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRegistry_ExtractAll(t *testing.T) {
	t.Parallel()

	t.Run("logs a degraded dispatch as a warning", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.StrategyRegistry{
			ExtractAllFn: func(ctx context.Context, ectx *chronoclip.ExtractionContext) *chronoclip.ExtractionResult {
				return &chronoclip.ExtractionResult{
					Strategy:      "generic",
					Fallback:      true,
					FallbackError: "no schema.org event markup found",
				}
			},
		}

		registry := chronoslog.NewLoggingRegistry(inner, logger)
		result := registry.ExtractAll(context.Background(), &chronoclip.ExtractionContext{Domain: "example.com"})

		require.NotNil(t, result)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "strategy dispatch degraded")
		assert.Contains(t, output, "no schema.org event markup found")
	})

	t.Run("delegates lookups without logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.StrategyRegistry{
			GetFn: func(kind chronoclip.SiteKind) chronoclip.Strategy { return nil },
			ListFn: func() []chronoclip.SiteKind {
				return []chronoclip.SiteKind{chronoclip.SiteConnpass}
			},
		}

		registry := chronoslog.NewLoggingRegistry(inner, logger)

		assert.Nil(t, registry.Get(chronoclip.SiteConnpass))
		assert.Len(t, registry.List(), 1)
		assert.Empty(t, buf.String())
	})
}
