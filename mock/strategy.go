package mock

import (
	"context"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

var _ chronoclip.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of chronoclip.Strategy.
type Strategy struct {
	ExtractAllFn func(ctx context.Context, ectx *chronoclip.ExtractionContext) (*chronoclip.ExtractionResult, error)
	NameFn       func() string
}

func (s *Strategy) ExtractAll(ctx context.Context, ectx *chronoclip.ExtractionContext) (*chronoclip.ExtractionResult, error) {
	return s.ExtractAllFn(ctx, ectx)
}

func (s *Strategy) Name() string {
	return s.NameFn()
}

var _ chronoclip.SiteDetector = (*SiteDetector)(nil)

// SiteDetector is a mock implementation of chronoclip.SiteDetector.
type SiteDetector struct {
	DetectFn func(domain string, root chronoclip.Node) chronoclip.SiteKind
}

func (d *SiteDetector) Detect(domain string, root chronoclip.Node) chronoclip.SiteKind {
	return d.DetectFn(domain, root)
}

var _ chronoclip.StrategyRegistry = (*StrategyRegistry)(nil)

// StrategyRegistry is a mock implementation of chronoclip.StrategyRegistry.
type StrategyRegistry struct {
	GetFn        func(kind chronoclip.SiteKind) chronoclip.Strategy
	RegisterFn   func(kind chronoclip.SiteKind, s chronoclip.Strategy)
	ListFn       func() []chronoclip.SiteKind
	ExtractAllFn func(ctx context.Context, ectx *chronoclip.ExtractionContext) *chronoclip.ExtractionResult
}

func (r *StrategyRegistry) Get(kind chronoclip.SiteKind) chronoclip.Strategy {
	return r.GetFn(kind)
}

func (r *StrategyRegistry) Register(kind chronoclip.SiteKind, s chronoclip.Strategy) {
	r.RegisterFn(kind, s)
}

func (r *StrategyRegistry) List() []chronoclip.SiteKind {
	return r.ListFn()
}

func (r *StrategyRegistry) ExtractAll(ctx context.Context, ectx *chronoclip.ExtractionContext) *chronoclip.ExtractionResult {
	return r.ExtractAllFn(ctx, ectx)
}

var _ chronoclip.ContextExtractor = (*ContextExtractor)(nil)

// ContextExtractor is a mock implementation of chronoclip.ContextExtractor.
type ContextExtractor struct {
	ExtractFn func(ctx context.Context, ectx *chronoclip.ExtractionContext) *chronoclip.ExtractionResult
}

func (e *ContextExtractor) Extract(ctx context.Context, ectx *chronoclip.ExtractionContext) *chronoclip.ExtractionResult {
	return e.ExtractFn(ctx, ectx)
}
