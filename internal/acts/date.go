package acts

import (
	"strings"
	"time"
)

var fullLayouts = []string{
	"2.1.2006",
	"2.1.06",
	"2006-01-02",
	"2/1/2006",
	"2-1-2006",
}

var yearlessLayouts = []string{
	"2.1",
	"2/1",
}

// ParseDate interprets free-form date text as a calendar day in now's
// location. Day comes before month. A date without a year takes now's year,
// or the previous one if that day would still be ahead of now.
func ParseDate(raw string, now time.Time) (time.Time, bool) {
	return parseDate(raw, now, true)
}

// listingDay is ParseDate without the rollback: a year-less date always
// takes now's year, so its place in a listing does not move with the clock.
func listingDay(raw string, now time.Time) (time.Time, bool) {
	return parseDate(raw, now, false)
}

func parseDate(raw string, now time.Time, rollback bool) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return time.Time{}, false
	}
	loc := now.Location()
	for _, layout := range fullLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	for _, layout := range yearlessLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		day, ok := withYear(t, now.Year(), loc)
		if ok && rollback && day.After(StartOfDay(now)) {
			day, ok = withYear(t, now.Year()-1, loc)
		}
		if !ok {
			return time.Time{}, false
		}
		return day, true
	}
	return time.Time{}, false
}

// withYear rejects combinations like 29.02 in a non-leap year instead of
// letting time.Date roll them into March.
func withYear(t time.Time, year int, loc *time.Location) (time.Time, bool) {
	d := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, loc)
	if d.Month() != t.Month() || d.Day() != t.Day() {
		return time.Time{}, false
	}
	return d, true
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
