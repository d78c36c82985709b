package agenda

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"agendate/calendar"
	"agendate/models"
)

func seedEvent(t *testing.T, store *calendar.MemoryStore, svc *DefaultAgendaService, date string, hour, minute int) {
	t.Helper()
	start := atHour(t, svc, date, hour).Add(time.Duration(minute) * time.Minute)
	_, err := store.InsertEvent(context.Background(), models.Event{
		Summary: "Cita",
		Start:   start,
		End:     start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}
}

func TestGetOccupiedHours_Basic(t *testing.T) {
	store := calendar.NewMemoryStore()
	svc := newTestService(t, store, time.Now())

	seedEvent(t, store, svc, "2099-06-01", 14, 30)
	seedEvent(t, store, svc, "2099-06-01", 12, 0)
	seedEvent(t, store, svc, "2099-06-01", 12, 15) // same hour twice
	seedEvent(t, store, svc, "2099-06-02", 13, 0)  // different day

	hours, err := svc.GetOccupiedHours(context.Background(), "2099-06-01")
	if err != nil {
		t.Fatalf("GetOccupiedHours: %v", err)
	}
	if want := []int{12, 14}; !reflect.DeepEqual(hours, want) {
		t.Fatalf("expected %v, got %v", want, hours)
	}
}

func TestGetOccupiedHours_EmptyDay(t *testing.T) {
	store := calendar.NewMemoryStore()
	svc := newTestService(t, store, time.Now())

	hours, err := svc.GetOccupiedHours(context.Background(), "2099-06-01")
	if err != nil {
		t.Fatalf("GetOccupiedHours: %v", err)
	}
	if len(hours) != 0 {
		t.Fatalf("expected no occupied hours, got %v", hours)
	}
}

func TestGetOccupiedHours_Idempotent(t *testing.T) {
	store := calendar.NewMemoryStore()
	svc := newTestService(t, store, time.Now())
	seedEvent(t, store, svc, "2099-06-01", 11, 0)
	seedEvent(t, store, svc, "2099-06-01", 17, 0)

	first, err := svc.GetOccupiedHours(context.Background(), "2099-06-01")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.GetOccupiedHours(context.Background(), "2099-06-01")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v then %v", first, second)
	}
}

func TestGetOccupiedHours_InvalidDate(t *testing.T) {
	store := calendar.NewMemoryStore()
	svc := newTestService(t, store, time.Now())

	_, err := svc.GetOccupiedHours(context.Background(), "01/06/2099")
	if got := validationCode(t, err); got != CodeInvalidInput {
		t.Fatalf("expected code %s, got %s", CodeInvalidInput, got)
	}
}

func TestGetOccupiedHours_RetrievalFailure(t *testing.T) {
	store := calendar.NewMemoryStore()
	store.FailList = true
	svc := newTestService(t, store, time.Now())

	_, err := svc.GetOccupiedHours(context.Background(), "2099-06-01")
	var rerr *RetrievalError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected RetrievalError, got %v", err)
	}
}

// A long event spilling into the window surfaces its out-of-window start
// hour; the query tolerates it instead of crashing.
func TestGetOccupiedHours_EventSpillingIntoWindow(t *testing.T) {
	store := calendar.NewMemoryStore()
	svc := newTestService(t, store, time.Now())

	start := atHour(t, svc, "2099-06-01", 9)
	if _, err := store.InsertEvent(context.Background(), models.Event{
		Summary: "Mantenimiento",
		Start:   start,
		End:     start.Add(4 * time.Hour), // 09:00-13:00, overlaps window
	}); err != nil {
		t.Fatalf("seed event: %v", err)
	}

	hours, err := svc.GetOccupiedHours(context.Background(), "2099-06-01")
	if err != nil {
		t.Fatalf("GetOccupiedHours: %v", err)
	}
	if want := []int{9}; !reflect.DeepEqual(hours, want) {
		t.Fatalf("expected %v, got %v", want, hours)
	}
}

func TestOccupiedHourIsNotBookable(t *testing.T) {
	store := calendar.NewMemoryStore()
	svc := newTestService(t, store, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	seedEvent(t, store, svc, "2099-06-01", 15, 0)

	hours, err := svc.GetOccupiedHours(context.Background(), "2099-06-01")
	if err != nil {
		t.Fatalf("GetOccupiedHours: %v", err)
	}
	if len(hours) != 1 || hours[0] != 15 {
		t.Fatalf("expected hour 15 occupied, got %v", hours)
	}

	_, err = svc.CreateBooking(context.Background(),
		models.BookingInput{ClientName: "Ana", AppointmentDateTime: "2099-06-01T15:00:00"})
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError for occupied hour, got %v", err)
	}
}
