package agenda

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"agendate/utils"
)

const dateLayout = "2006-01-02"

// GetOccupiedHours returns the distinct hour-of-day values (operating
// timezone) that already have an event starting within them on the given
// date. The date must be an ISO calendar date ("2006-01-02").
func (s *DefaultAgendaService) GetOccupiedHours(ctx context.Context, date string) ([]int, error) {
	logger := utils.GetLogger()

	day, err := time.ParseInLocation(dateLayout, date, s.Loc)
	if err != nil {
		return nil, NewValidationError(CodeInvalidInput, "Fecha inválida, se espera el formato AAAA-MM-DD")
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), s.Cfg.OpenHour, 0, 0, 0, s.Loc)
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), s.Cfg.CloseHour, 0, 0, 0, s.Loc)

	events, err := s.Store.ListEvents(ctx, dayStart, dayEnd)
	if err != nil {
		logger.Error("GetOccupiedHours: failed to list events",
			zap.String("date", date), zap.Error(err))
		return nil, &RetrievalError{Err: err}
	}

	seen := make(map[int]bool)
	for _, e := range events {
		seen[e.Start.In(s.Loc).Hour()] = true
	}

	hours := make([]int, 0, len(seen))
	for h := range seen {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours, nil
}
