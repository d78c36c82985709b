package calendar

import (
	"context"
	"time"

	"agendate/models"
)

// EventStore is the capability this service needs from a calendar backend:
// list the events in a time window and insert a new one. The backend is the
// source of truth; nothing is cached on our side.
type EventStore interface {
	// ListEvents returns the events whose start falls within [from, to),
	// with recurring events expanded to single occurrences, ordered by
	// start time.
	ListEvents(ctx context.Context, from, to time.Time) ([]models.Event, error)

	// InsertEvent writes a new event and returns its public link.
	InsertEvent(ctx context.Context, event models.Event) (string, error)

	// Ping verifies the backend is reachable with the configured credentials.
	Ping(ctx context.Context) error
}
