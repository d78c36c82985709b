package models

// DayAvailability lists the hour-of-day values (operating timezone) that
// already have at least one event starting within them on a given date.
type DayAvailability struct {
	OccupiedHours []int `json:"occupiedHours"`
}
