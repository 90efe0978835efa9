// Package scan provides document-wide temporal scanning orchestration.
// It coordinates block enumeration, deduplication, span detection, and
// event context extraction over a whole page.
package scan

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"github.com/is0692vs/ChronoClip-sub000/bloom"
	"github.com/is0692vs/ChronoClip-sub000/detect"
	"golang.org/x/sync/errgroup"
)

// Scanner orchestrates the scanning of a full document.
type Scanner struct {
	Extractor   chronoclip.ContextExtractor
	Concurrency int

	// MinBlockLen skips blocks too short to carry a date. Zero means
	// the default.
	MinBlockLen int

	// DedupeCapacity sizes the per-scan Bloom filter. Zero means the
	// default.
	DedupeCapacity uint
}

// Default scan bounds.
const (
	DefaultConcurrency    = 8
	DefaultMinBlockLen    = 4
	DefaultDedupeCapacity = 4096
	dedupeFalsePositive   = 0.01
)

// Request describes one document scan.
type Request struct {
	Domain   string
	URL      string
	Ref      time.Time
	TimeZone string

	// Progress, if provided, receives events as scanning proceeds.
	Progress ProgressFunc
}

// Event is one detected temporal expression with its inferred context.
type Event struct {
	// Position is the block's index in scan order, after
	// deduplication.
	Position int

	// BlockText is the normalized text of the block the span was
	// found in.
	BlockText string

	Span   chronoclip.TemporalSpan
	Result *chronoclip.ExtractionResult
}

// Result holds the outcome of a document scan.
type Result struct {
	// Events are the detected spans with context, in document order.
	Events []Event

	// Blocks is the number of text blocks examined.
	Blocks int

	// Deduplicated is the number of blocks skipped as repeats.
	Deduplicated int
}

// ProgressEvent reports progress during a scan.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Spans     int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFinished
)

// ProgressFunc is a callback for reporting scan progress.
type ProgressFunc func(event ProgressEvent)

// blockResult holds the outcome of processing a single block.
type blockResult struct {
	position int
	events   []Event
}

// ScanDocument enumerates the document's text blocks, detects temporal
// spans in each, and extracts the surrounding event context for every
// span found. Repeated blocks (shared navigation, footers) are skipped
// after their first occurrence.
func (s *Scanner) ScanDocument(ctx context.Context, root chronoclip.Node, req Request) (*Result, error) {
	if root == nil {
		return nil, chronoclip.Errorf(chronoclip.EINVALID, "document scan requires a root node")
	}
	if s.Extractor == nil {
		return nil, chronoclip.Errorf(chronoclip.EINVALID, "document scan requires an extractor")
	}

	ref := req.Ref
	if ref.IsZero() {
		ref = time.Now()
	}

	minLen := s.MinBlockLen
	if minLen <= 0 {
		minLen = DefaultMinBlockLen
	}
	capacity := s.DedupeCapacity
	if capacity == 0 {
		capacity = DefaultDedupeCapacity
	}

	blocks := enumerateBlocks(root, minLen)

	// Dedupe before fan-out so repeated boilerplate costs one pass.
	seen := bloom.NewFilter(capacity, dedupeFalsePositive)
	var unique []block
	for _, b := range blocks {
		if seen.TestAndAdd(fingerprint(b.text)) {
			continue
		}
		unique = append(unique, b)
	}
	deduplicated := len(blocks) - len(unique)

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(unique)
	if req.Progress != nil {
		req.Progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan blockResult, total)

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, b := range unique {
			i, b := i, b
			g.Go(func() error {
				resultCh <- s.processBlock(gctx, i, b, root, ref, req)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]blockResult, total)
	for r := range resultCh {
		completed.Add(1)
		results[r.position] = r
		if req.Progress != nil {
			req.Progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				Spans:     len(r.events),
			})
		}
	}

	out := &Result{
		Blocks:       len(blocks),
		Deduplicated: deduplicated,
	}
	for _, r := range results {
		out.Events = append(out.Events, r.events...)
	}
	sort.SliceStable(out.Events, func(i, j int) bool {
		if out.Events[i].Position != out.Events[j].Position {
			return out.Events[i].Position < out.Events[j].Position
		}
		return out.Events[i].Span.Start < out.Events[j].Span.Start
	})

	if req.Progress != nil {
		req.Progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return out, ctx.Err()
}

// processBlock detects spans in one block and extracts context for each.
func (s *Scanner) processBlock(ctx context.Context, position int, b block, root chronoclip.Node, ref time.Time, req Request) blockResult {
	out := blockResult{position: position}

	spans := detect.DetectSpans(b.text, ref)
	if len(spans) == 0 {
		return out
	}

	for i := range spans {
		span := spans[i]
		result := s.Extractor.Extract(ctx, &chronoclip.ExtractionContext{
			Domain:   req.Domain,
			URL:      req.URL,
			Anchor:   b.node,
			Root:     root,
			Span:     &span,
			Ref:      ref,
			TimeZone: req.TimeZone,
		})
		out.events = append(out.events, Event{
			Position:  position,
			BlockText: b.text,
			Span:      span,
			Result:    result,
		})
	}

	return out
}
