package models

import "time"

// BookingInput is the payload posted by the appointment form.
// AppointmentDateTime is an ISO local date-time without offset
// (e.g. "2025-11-20T15:00:00"); it is interpreted in the operating timezone.
type BookingInput struct {
	ClientName          string `json:"clientName" binding:"required"`
	ClientPhone         string `json:"clientPhone"`
	ServiceType         string `json:"serviceType"`
	AppointmentDateTime string `json:"appointmentDateTime" binding:"required"`
}

// BookingConfirmation is returned once the event has been written to the
// calendar. EventLink is the calendar's public link for the created event.
type BookingConfirmation struct {
	Message   string `json:"message"`
	EventLink string `json:"eventLink"`
}

// BookingRequest is a parsed, timezone-qualified booking derived from
// BookingInput before validation. End is always Start plus the fixed
// appointment duration.
type BookingRequest struct {
	ClientName  string
	ClientPhone string
	ServiceType string
	Start       time.Time
	End         time.Time
}
