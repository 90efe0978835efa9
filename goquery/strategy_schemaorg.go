package goquery

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"github.com/is0692vs/ChronoClip-sub000/detect"
)

// Ensure SchemaOrgStrategy implements chronoclip.Strategy at compile time.
var _ chronoclip.Strategy = (*SchemaOrgStrategy)(nil)

// Structured markup published by the site itself is the most trustworthy
// source available.
const schemaOrgConfidence = 0.95

// SchemaOrgStrategy extracts events from schema.org JSON-LD markup. Any
// site that publishes an Event object gets precise fields without
// heuristic guessing.
type SchemaOrgStrategy struct{}

// NewSchemaOrgStrategy creates a new SchemaOrgStrategy.
func NewSchemaOrgStrategy() *SchemaOrgStrategy {
	return &SchemaOrgStrategy{}
}

// Name returns the strategy's identifier.
func (s *SchemaOrgStrategy) Name() string {
	return string(chronoclip.SiteSchemaOrg)
}

// ldEvent is the subset of a schema.org Event object this strategy
// consumes. Location and offers appear both as plain strings and as
// nested objects in the wild, so they decode leniently.
type ldEvent struct {
	Type        any        `json:"@type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Location    ldLocation `json:"location"`
	Offers      ldOffers   `json:"offers"`
}

type ldLocation struct {
	Name    string
	Address string
}

func (l *ldLocation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.Name = s
		return nil
	}
	var obj struct {
		Name    string `json:"name"`
		Address any    `json:"address"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil // lenient: malformed location is just absent
	}
	l.Name = obj.Name
	if addr, ok := obj.Address.(string); ok {
		l.Address = addr
	} else if m, ok := obj.Address.(map[string]any); ok {
		var parts []string
		for _, key := range []string{"addressRegion", "addressLocality", "streetAddress"} {
			if v, ok := m[key].(string); ok && v != "" {
				parts = append(parts, v)
			}
		}
		l.Address = strings.Join(parts, "")
	}
	return nil
}

type ldOffers struct {
	Price string
}

func (o *ldOffers) UnmarshalJSON(data []byte) error {
	var obj struct {
		Price any `json:"price"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		o.Price = priceString(obj.Price)
		return nil
	}
	var list []struct {
		Price any `json:"price"`
	}
	if err := json.Unmarshal(data, &list); err == nil && len(list) > 0 {
		o.Price = priceString(list[0].Price)
	}
	return nil
}

func priceString(v any) string {
	switch p := v.(type) {
	case string:
		return p
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64)
	}
	return ""
}

// ExtractAll parses JSON-LD blocks in the document and builds a result
// from the first Event object found. It returns ENOTFOUND when the page
// carries no event markup, which the registry converts to a generic
// fallback run.
func (s *SchemaOrgStrategy) ExtractAll(_ context.Context, ectx *chronoclip.ExtractionContext) (*chronoclip.ExtractionResult, error) {
	if ectx == nil || ectx.Root == nil {
		return nil, chronoclip.Errorf(chronoclip.EINVALID, "schema.org strategy requires a document root")
	}

	for _, script := range ectx.Root.Find(`script[type="application/ld+json"]`) {
		event, ok := decodeEvent(script.Text())
		if !ok {
			continue
		}
		return s.buildResult(event, ectx), nil
	}

	return nil, chronoclip.Errorf(chronoclip.ENOTFOUND, "no schema.org event markup found")
}

// decodeEvent tries to decode one JSON-LD block into an Event, looking
// through top-level arrays and @graph containers.
func decodeEvent(raw string) (*ldEvent, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	var single ldEvent
	if err := json.Unmarshal([]byte(raw), &single); err == nil && isEventType(single.Type) {
		return &single, true
	}

	var list []ldEvent
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		for i := range list {
			if isEventType(list[i].Type) {
				return &list[i], true
			}
		}
	}

	var graph struct {
		Graph []ldEvent `json:"@graph"`
	}
	if err := json.Unmarshal([]byte(raw), &graph); err == nil {
		for i := range graph.Graph {
			if isEventType(graph.Graph[i].Type) {
				return &graph.Graph[i], true
			}
		}
	}

	return nil, false
}

// isEventType accepts "Event" and its subtypes (MusicEvent,
// TheaterEvent, ...), in both string and list form.
func isEventType(t any) bool {
	switch v := t.(type) {
	case string:
		return strings.HasSuffix(v, "Event")
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.HasSuffix(s, "Event") {
				return true
			}
		}
	}
	return false
}

func (s *SchemaOrgStrategy) buildResult(event *ldEvent, ectx *chronoclip.ExtractionContext) *chronoclip.ExtractionResult {
	result := &chronoclip.ExtractionResult{
		Title:       chronoclip.NormalizeText(event.Name),
		Description: chronoclip.NormalizeText(event.Description),
		Price:       event.Offers.Price,
		Strategy:    s.Name(),
		Sources:     []string{"json-ld"},
	}

	location := event.Location.Name
	if location == "" {
		location = event.Location.Address
	} else if event.Location.Address != "" {
		location += " " + event.Location.Address
	}
	result.Location = chronoclip.NormalizeText(location)

	result.DateInfo = schemaDateInfo(event.StartDate, event.EndDate, ectx.TimeZone)

	confidence := schemaOrgConfidence
	if result.Title == "" || result.DateInfo == nil {
		confidence = 0.6
	}
	result.Confidence = confidence
	return result
}

// schemaDateInfo converts schema.org startDate/endDate strings into a
// resolved pair. startDate may be a bare date or a full timestamp.
func schemaDateInfo(start, end, timeZone string) *chronoclip.ResolvedDateInfo {
	if start == "" {
		return nil
	}

	if t, ok := parseSchemaTime(start); ok {
		endT := t.Add(time.Hour)
		if e, ok := parseSchemaTime(end); ok && !e.Before(t) {
			endT = e
		}
		return &chronoclip.ResolvedDateInfo{
			Start: chronoclip.EventDateTime{DateTime: t.Format("2006-01-02T15:04:05"), TimeZone: timeZone},
			End:   chronoclip.EventDateTime{DateTime: endT.Format("2006-01-02T15:04:05"), TimeZone: timeZone},
		}
	}

	if day, err := time.Parse("2006-01-02", start); err == nil {
		endDay := day.AddDate(0, 0, 1)
		if e, err := time.Parse("2006-01-02", end); err == nil && e.After(day) {
			endDay = e.AddDate(0, 0, 1)
		}
		return &chronoclip.ResolvedDateInfo{
			Start: chronoclip.EventDateTime{Date: day.Format("2006-01-02")},
			End:   chronoclip.EventDateTime{Date: endDay.Format("2006-01-02")},
		}
	}

	// Unparseable timestamps fall back to span detection over the raw
	// value.
	spans := detect.DetectSpans(start, time.Time{})
	if len(spans) == 0 {
		return nil
	}
	return detect.BuildDateInfo(spans, time.Time{}, timeZone)
}

// parseSchemaTime accepts the timestamp layouts JSON-LD publishers
// actually emit.
func parseSchemaTime(v string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
