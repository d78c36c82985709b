package agenda

import (
	"context"
	"time"

	"agendate/calendar"
	"agendate/config"
	"agendate/models"
)

// AgendaService exposes the two booking operations: availability for a day
// and creation of a new appointment.
type AgendaService interface {
	GetOccupiedHours(ctx context.Context, date string) ([]int, error)
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.BookingConfirmation, error)
}

// DefaultAgendaService implements AgendaService against an EventStore.
type DefaultAgendaService struct {
	Store calendar.EventStore
	Cfg   *config.Config
	Loc   *time.Location

	// Now is the clock used for past-date and past-time checks.
	Now func() time.Time
}

// NewAgendaService wires the service with its calendar store and booking
// rules. It fails if the configured timezone cannot be resolved.
func NewAgendaService(store calendar.EventStore, cfg *config.Config) (*DefaultAgendaService, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &DefaultAgendaService{
		Store: store,
		Cfg:   cfg,
		Loc:   loc,
		Now:   time.Now,
	}, nil
}

func (s *DefaultAgendaService) now() time.Time {
	if s.Now != nil {
		return s.Now().In(s.Loc)
	}
	return time.Now().In(s.Loc)
}
