package models

import "time"

// Event is a calendar event as this service sees it. The calendar backend
// owns these records; we only create and read them.
type Event struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	ColorID     string
	Link        string
}

// Overlaps reports whether the half-open interval [start, end) intersects
// the event's own [Start, End) interval.
func (e Event) Overlaps(start, end time.Time) bool {
	return start.Before(e.End) && e.Start.Before(end)
}
