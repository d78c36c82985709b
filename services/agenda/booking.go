package agenda

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"agendate/models"
	"agendate/utils"
)

const (
	dateTimeLayout = "2006-01-02T15:04:05"

	defaultServiceLabel = "Cita de Manicura"
	provenanceNote      = "Reserva generada automáticamente desde la web."
)

// CreateBooking validates the requested slot and, if it is free, writes the
// appointment to the calendar. The conflict check and the write are not
// atomic: two concurrent requests for the same slot can both pass the check.
// The calendar backend offers no conditional insert, so this stays
// best-effort and the second booking has to be resolved by hand.
func (s *DefaultAgendaService) CreateBooking(ctx context.Context, input models.BookingInput) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	req, err := s.parseInput(input)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.validateTime(req.Start, now); err != nil {
		return nil, err
	}

	// Re-query the exact window rather than trusting a prior availability
	// response; the calendar may have changed since the form was rendered.
	conflicts, err := s.Store.ListEvents(ctx, req.Start, req.End)
	if err != nil {
		logger.Error("CreateBooking: conflict check failed",
			zap.Time("start", req.Start), zap.Error(err))
		return nil, &RetrievalError{Err: err}
	}
	for _, e := range conflicts {
		if e.Overlaps(req.Start, req.End) {
			return nil, &ConflictError{Message: "Ese horario ya está reservado, por favor elegí otro."}
		}
	}

	link, err := s.Store.InsertEvent(ctx, s.buildEvent(req))
	if err != nil {
		logger.Error("CreateBooking: failed to insert event",
			zap.String("client", req.ClientName), zap.Time("start", req.Start), zap.Error(err))
		return nil, &WriteError{Err: err}
	}

	logger.Info("CreateBooking: appointment created",
		zap.String("client", req.ClientName),
		zap.Time("start", req.Start),
		zap.String("link", link))

	return &models.BookingConfirmation{
		Message:   "Cita agendada con éxito",
		EventLink: link,
	}, nil
}

func (s *DefaultAgendaService) parseInput(input models.BookingInput) (*models.BookingRequest, error) {
	if input.ClientName == "" {
		return nil, NewValidationError(CodeInvalidInput, "El nombre del cliente es obligatorio")
	}

	start, err := time.ParseInLocation(dateTimeLayout, input.AppointmentDateTime, s.Loc)
	if err != nil {
		return nil, NewValidationError(CodeInvalidInput,
			"Fecha y hora inválidas, se espera el formato AAAA-MM-DDTHH:MM:SS")
	}

	return &models.BookingRequest{
		ClientName:  input.ClientName,
		ClientPhone: input.ClientPhone,
		ServiceType: input.ServiceType,
		Start:       start,
		End:         start.Add(s.Cfg.AppointmentDuration()),
	}, nil
}

// validateTime applies the time-based rules in user-facing order: past date,
// past time, business hours. "Today" is the calendar day in the operating
// timezone; comparing UTC days instead would mis-reject late-evening local
// bookings near midnight.
func (s *DefaultAgendaService) validateTime(start, now time.Time) error {
	reqDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, s.Loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.Loc)

	if reqDay.Before(today) {
		return NewValidationError(CodePastDate, "No se pueden agendar citas en fechas pasadas")
	}
	if reqDay.Equal(today) && start.Before(now) {
		return NewValidationError(CodePastTime, "Esa hora ya pasó, por favor elegí una hora futura")
	}
	if h := start.Hour(); h < s.Cfg.OpenHour || h >= s.Cfg.CloseHour {
		return NewValidationError(CodeOutOfHours,
			fmt.Sprintf("El horario de atención es de %d:00 a %d:00", s.Cfg.OpenHour, s.Cfg.CloseHour))
	}
	return nil
}

func (s *DefaultAgendaService) buildEvent(req *models.BookingRequest) models.Event {
	service := req.ServiceType
	if service == "" {
		service = defaultServiceLabel
	}
	phone := req.ClientPhone
	if phone == "" {
		phone = "No proporcionado"
	}
	serviceLine := req.ServiceType
	if serviceLine == "" {
		serviceLine = "No especificado"
	}

	return models.Event{
		Summary: fmt.Sprintf("%s - %s", service, req.ClientName),
		Description: fmt.Sprintf("Cliente: %s\nTeléfono: %s\nServicio: %s\n%s",
			req.ClientName, phone, serviceLine, provenanceNote),
		Start:   req.Start,
		End:     req.End,
		ColorID: s.Cfg.EventColorID,
	}
}
