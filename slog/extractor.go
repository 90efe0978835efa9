// Package slog provides logging decorators for the extraction
// interfaces using the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

// Ensure LoggingExtractor implements chronoclip.ContextExtractor.
var _ chronoclip.ContextExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ContextExtractor with per-call logging.
type LoggingExtractor struct {
	next   chronoclip.ContextExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next chronoclip.ContextExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, ectx *chronoclip.ExtractionContext) *chronoclip.ExtractionResult {
	begin := time.Now()
	result := e.next.Extract(ctx, ectx)

	domain := ""
	if ectx != nil {
		domain = ectx.Domain
	}
	e.logger.Info("extract",
		"domain", domain,
		"strategy", result.Strategy,
		"confidence", result.Confidence,
		"fallback", result.Fallback,
		"duration", time.Since(begin),
	)
	return result
}
