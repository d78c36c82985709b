package calendar

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"agendate/models"
)

// MemoryStore is an in-memory EventStore used by tests and local runs
// without calendar credentials.
type MemoryStore struct {
	mu     sync.Mutex
	events []models.Event
	nextID int

	// FailList and FailInsert force the corresponding call to error,
	// simulating an unreachable backend.
	FailList   bool
	FailInsert bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) ListEvents(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailList {
		return nil, fmt.Errorf("memory store: list unavailable")
	}

	// Google's Events.List returns every event overlapping [from, to), not
	// just the ones starting inside it; match that here.
	var result []models.Event
	for _, e := range m.events {
		if e.Overlaps(from, to) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Start.Before(result[j].Start) })
	return result, nil
}

func (m *MemoryStore) InsertEvent(ctx context.Context, event models.Event) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailInsert {
		return "", fmt.Errorf("memory store: insert unavailable")
	}

	m.nextID++
	event.ID = fmt.Sprintf("mem-%d", m.nextID)
	event.Link = fmt.Sprintf("https://calendar.local/event/%s", event.ID)
	m.events = append(m.events, event)
	return event.Link, nil
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailList {
		return fmt.Errorf("memory store: unavailable")
	}
	return nil
}
