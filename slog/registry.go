package slog

import (
	"context"
	"log/slog"
	"time"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

// Ensure LoggingRegistry implements chronoclip.StrategyRegistry.
var _ chronoclip.StrategyRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a StrategyRegistry with debug logging for
// strategy dispatch.
type LoggingRegistry struct {
	next   chronoclip.StrategyRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next chronoclip.StrategyRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(kind chronoclip.SiteKind) chronoclip.Strategy {
	return r.next.Get(kind)
}

// Register delegates to the wrapped registry and logs the registration.
func (r *LoggingRegistry) Register(kind chronoclip.SiteKind, s chronoclip.Strategy) {
	r.logger.Debug("strategy registered", "kind", string(kind), "strategy", s.Name())
	r.next.Register(kind, s)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []chronoclip.SiteKind {
	return r.next.List()
}

// ExtractAll delegates to the wrapped registry and logs the dispatch
// outcome, including degraded fallback runs.
func (r *LoggingRegistry) ExtractAll(ctx context.Context, ectx *chronoclip.ExtractionContext) *chronoclip.ExtractionResult {
	begin := time.Now()
	result := r.next.ExtractAll(ctx, ectx)

	attrs := []any{
		"domain", ectx.Domain,
		"strategy", result.Strategy,
		"confidence", result.Confidence,
		"duration", time.Since(begin),
	}
	if result.Fallback {
		attrs = append(attrs, "fallback", true, "cause", result.FallbackError)
		r.logger.Warn("strategy dispatch degraded", attrs...)
		return result
	}
	r.logger.Debug("strategy dispatch", attrs...)
	return result
}
