package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"agendate/config"
	"agendate/models"
)

// GoogleCalendarStore implements EventStore on top of the Google Calendar v3
// API, authenticated as a service account.
type GoogleCalendarStore struct {
	service    *calendarapi.Service
	calendarID string
	timeZone   string
}

// NewGoogleCalendarStore builds the Calendar API client from the
// service-account credentials in cfg.
func NewGoogleCalendarStore(ctx context.Context, cfg *config.Config) (*GoogleCalendarStore, error) {
	auth := &jwt.Config{
		Email:      cfg.GoogleServiceAccountEmail,
		PrivateKey: []byte(cfg.GooglePrivateKey),
		Scopes:     []string{calendarapi.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}

	service, err := calendarapi.NewService(ctx, option.WithHTTPClient(auth.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &GoogleCalendarStore{
		service:    service,
		calendarID: cfg.GoogleCalendarID,
		timeZone:   cfg.TimeZone,
	}, nil
}

func (g *GoogleCalendarStore) ListEvents(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	events, err := g.service.Events.List(g.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var result []models.Event
	for _, item := range events.Items {
		start, err := parseEventTime(item.Start)
		if err != nil {
			continue // all-day or malformed entry, nothing to slot against
		}
		end, err := parseEventTime(item.End)
		if err != nil {
			end = start
		}

		result = append(result, models.Event{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			Start:       start,
			End:         end,
			ColorID:     item.ColorId,
			Link:        item.HtmlLink,
		})
	}

	return result, nil
}

func (g *GoogleCalendarStore) InsertEvent(ctx context.Context, event models.Event) (string, error) {
	googleEvent := &calendarapi.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &calendarapi.EventDateTime{
			DateTime: event.Start.Format(time.RFC3339),
			TimeZone: g.timeZone,
		},
		End: &calendarapi.EventDateTime{
			DateTime: event.End.Format(time.RFC3339),
			TimeZone: g.timeZone,
		},
		ColorId: event.ColorID,
	}

	createdEvent, err := g.service.Events.Insert(g.calendarID, googleEvent).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}

	return createdEvent.HtmlLink, nil
}

// Ping checks that the configured calendar is reachable and readable.
func (g *GoogleCalendarStore) Ping(ctx context.Context) error {
	_, err := g.service.CalendarList.Get(g.calendarID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get calendar: %w", err)
	}
	return nil
}

func parseEventTime(edt *calendarapi.EventDateTime) (time.Time, error) {
	if edt == nil || edt.DateTime == "" {
		return time.Time{}, fmt.Errorf("event has no dateTime")
	}
	return time.Parse(time.RFC3339, edt.DateTime)
}
