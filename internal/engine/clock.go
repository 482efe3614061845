package engine

import "time"

// dayLayout is the canonical day key format used everywhere a date is
// stored or compared.
const dayLayout = "2006-01-02"

// DayKey formats a time as its local calendar day.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// MonthKey formats a time as its local calendar month.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

func parseDay(day string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, day, time.Local)
}

// startOfDay truncates a time to local midnight.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weekStart returns the most recent Sunday at or before t.
func weekStart(t time.Time) time.Time {
	d := startOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// biweekEpoch anchors the fixed 14-day biweekly grid.
var biweekEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

// biweekStart returns the start of the 14-day period containing t.
func biweekStart(t time.Time) time.Time {
	d := startOfDay(t)
	days := int(d.Sub(biweekEpoch).Hours() / 24)
	period := days / 14
	return biweekEpoch.AddDate(0, 0, period*14)
}
