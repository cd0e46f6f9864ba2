package timezone

import "time"

// All instants are stored and compared in UTC.
var Canonical = time.UTC

func Now() time.Time {
	return time.Now().In(Canonical)
}

// DayRange returns [00:00:00.000, 23:59:59.999] of the calendar day of t in
// the canonical location.
func DayRange(t time.Time) (time.Time, time.Time) {
	t = t.In(Canonical)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Canonical)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// DayKey identifies the calendar day of t, e.g. "2025-12-18".
func DayKey(t time.Time) string {
	return t.In(Canonical).Format("2006-01-02")
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Canonical)
}
