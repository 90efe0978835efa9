// Package ics renders extracted events as iCalendar data.
package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// Writer converts extraction results into a serialized VCALENDAR.
type Writer struct {
	// Now supplies DTSTAMP values. Defaults to time.Now.
	Now func() time.Time

	// NewUID supplies event UIDs. Defaults to random UUIDs.
	NewUID func() string
}

// NewWriter creates a Writer with default clock and UID generation.
func NewWriter() *Writer {
	return &Writer{
		Now:    time.Now,
		NewUID: func() string { return uuid.NewString() + "@chronoclip" },
	}
}

// Calendar serializes the dated results as one VCALENDAR. Results
// without resolved date information are skipped; at least one dated
// result is required.
func (w *Writer) Calendar(results []*chronoclip.ExtractionResult) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//chronoclip//event export//EN")

	var added int
	for _, r := range results {
		if r == nil || r.DateInfo == nil {
			continue
		}
		event, err := w.buildEvent(cal, r)
		if err != nil {
			return "", err
		}
		if event {
			added++
		}
	}

	if added == 0 {
		return "", chronoclip.Errorf(chronoclip.EINVALID, "no dated events to export")
	}

	return cal.Serialize(), nil
}

// buildEvent adds one VEVENT to the calendar. Returns false when the
// result's date information cannot be parsed.
func (w *Writer) buildEvent(cal *ical.Calendar, r *chronoclip.ExtractionResult) (bool, error) {
	info := r.DateInfo

	event := cal.AddEvent(w.NewUID())
	event.SetDtStampTime(w.Now())

	if info.AllDay() {
		start, err := time.Parse(dateLayout, info.Start.Date)
		if err != nil {
			return false, chronoclip.Errorf(chronoclip.EINVALID, "invalid all-day start %q", info.Start.Date)
		}
		end, err := time.Parse(dateLayout, info.End.Date)
		if err != nil {
			return false, chronoclip.Errorf(chronoclip.EINVALID, "invalid all-day end %q", info.End.Date)
		}
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(end)
	} else {
		loc := loadLocation(info.Start.TimeZone)
		start, err := time.ParseInLocation(dateTimeLayout, info.Start.DateTime, loc)
		if err != nil {
			return false, chronoclip.Errorf(chronoclip.EINVALID, "invalid start time %q", info.Start.DateTime)
		}
		end, err := time.ParseInLocation(dateTimeLayout, info.End.DateTime, loadLocation(info.End.TimeZone))
		if err != nil {
			return false, chronoclip.Errorf(chronoclip.EINVALID, "invalid end time %q", info.End.DateTime)
		}
		event.SetStartAt(start)
		event.SetEndAt(end)
	}

	summary := r.Title
	if summary == "" {
		summary = "Event"
	}
	event.SetSummary(summary)

	description := r.Description
	if r.Price != "" {
		if description != "" {
			description += "\n"
		}
		description += "Price: " + r.Price
	}
	if description != "" {
		event.SetDescription(description)
	}
	if r.Location != "" {
		event.SetLocation(r.Location)
	}
	if r.Strategy != "" {
		event.SetProperty(ical.ComponentProperty("X-CHRONOCLIP-STRATEGY"), r.Strategy)
	}

	return true, nil
}

// loadLocation resolves an IANA zone name, falling back to UTC.
func loadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
