// Package daterange builds half-open [start, end) time windows for listing
// advance bookings and cash logs. Presets are pure functions of a supplied
// reference time so handlers stay testable; the reference time is expected
// to be in the venue timezone (see shared/timezone).
package daterange

import (
	"time"

	"arcade/shared/failure"
	"arcade/shared/timezone"
)

const (
	PresetToday     = "today"
	PresetYesterday = "yesterday"
	PresetThisWeek  = "this_week"
	PresetThisMonth = "this_month"
	PresetThisYear  = "this_year"
	PresetCustom    = "custom"
)

type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the half-open window.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func Today(now time.Time) Range {
	start := midnight(now)

	return Range{Start: start, End: start.AddDate(0, 0, 1)}
}

func Yesterday(now time.Time) Range {
	end := midnight(now)

	return Range{Start: end.AddDate(0, 0, -1), End: end}
}

// ThisWeek starts on Monday of the current week.
func ThisWeek(now time.Time) Range {
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	start := midnight(now).AddDate(0, 0, -daysSinceMonday)

	return Range{Start: start, End: start.AddDate(0, 0, 7)}
}

func ThisMonth(now time.Time) Range {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	return Range{Start: start, End: start.AddDate(0, 1, 0)}
}

func ThisYear(now time.Time) Range {
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	return Range{Start: start, End: start.AddDate(1, 0, 0)}
}

// FromPreset resolves a named preset against the given reference time.
// Custom ranges are parsed as venue-local dates and normalized to a
// half-open window, so start=end lists a single day.
func FromPreset(preset string, now time.Time, customStart, customEnd string) (Range, error) {
	switch preset {
	case PresetToday, "":
		return Today(now), nil
	case PresetYesterday:
		return Yesterday(now), nil
	case PresetThisWeek:
		return ThisWeek(now), nil
	case PresetThisMonth:
		return ThisMonth(now), nil
	case PresetThisYear:
		return ThisYear(now), nil
	case PresetCustom:
		return custom(customStart, customEnd)
	default:
		return Range{}, failure.BadRequestFromString("unknown date range preset: " + preset)
	}
}

func custom(startStr, endStr string) (Range, error) {
	start, err := timezone.Parse("2006-01-02", startStr)
	if err != nil {
		return Range{}, failure.BadRequestFromString("invalid start date, expected YYYY-MM-DD")
	}

	end, err := timezone.Parse("2006-01-02", endStr)
	if err != nil {
		return Range{}, failure.BadRequestFromString("invalid end date, expected YYYY-MM-DD")
	}

	if end.Before(start) {
		return Range{}, failure.BadRequestFromString("end date is before start date")
	}

	return Range{Start: midnight(start), End: midnight(end).AddDate(0, 0, 1)}, nil
}
