package detect

import (
	"time"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

const dateTimeLayout = "2006-01-02T15:04:05"

// BuildDateInfo combines resolved spans into a start/end pair. The first
// dated span supplies the day and the first timed span supplies the
// clock time (a single span may supply both):
//
//   - date + time: a timed event; a range end earlier than its start
//     rolls over to the next day, a missing range end defaults to one
//     hour.
//   - date only: a single all-day event (exclusive end, one day later).
//   - time only: a timed event on the reference day.
//
// Returns nil when the spans carry neither a date nor a time.
func BuildDateInfo(spans []chronoclip.TemporalSpan, ref time.Time, timeZone string) *chronoclip.ResolvedDateInfo {
	var dateSpan, timeSpan *chronoclip.TemporalSpan
	for i := range spans {
		s := &spans[i]
		if dateSpan == nil && s.Date != "" {
			dateSpan = s
		}
		if timeSpan == nil && s.Time != "" {
			timeSpan = s
		}
	}

	switch {
	case dateSpan == nil && timeSpan == nil:
		return nil

	case timeSpan == nil:
		day, err := time.Parse("2006-01-02", dateSpan.Date)
		if err != nil {
			return nil
		}
		return &chronoclip.ResolvedDateInfo{
			Start: chronoclip.EventDateTime{Date: dateSpan.Date},
			End:   chronoclip.EventDateTime{Date: day.AddDate(0, 0, 1).Format("2006-01-02")},
		}

	default:
		date := ref.Format("2006-01-02")
		if dateSpan != nil {
			date = dateSpan.Date
		}
		start, err := time.Parse(dateTimeLayout, date+"T"+timeSpan.Time+":00")
		if err != nil {
			return nil
		}
		end := start.Add(time.Hour)
		if timeSpan.EndTime != "" {
			e, err := time.Parse(dateTimeLayout, date+"T"+timeSpan.EndTime+":00")
			if err == nil {
				if e.Before(start) {
					e = e.AddDate(0, 0, 1)
				}
				end = e
			}
		}
		return &chronoclip.ResolvedDateInfo{
			Start: chronoclip.EventDateTime{DateTime: start.Format(dateTimeLayout), TimeZone: timeZone},
			End:   chronoclip.EventDateTime{DateTime: end.Format(dateTimeLayout), TimeZone: timeZone},
		}
	}
}
