package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agendate/models"
	"agendate/services/agenda"
	"agendate/utils"
)

// AgendaHandler exposes the availability and booking endpoints.
type AgendaHandler struct {
	Service agenda.AgendaService
}

func NewAgendaHandler(svc agenda.AgendaService) *AgendaHandler {
	return &AgendaHandler{Service: svc}
}

// GetAvailabilityHandler handles GET /api/appointments/availability?date=YYYY-MM-DD.
func (h *AgendaHandler) GetAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Falta el parámetro 'date'", "")
		return
	}

	hours, err := h.Service.GetOccupiedHours(c.Request.Context(), date)
	if err != nil {
		var verr *agenda.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, verr.Message, "")
			return
		}
		// Unknown availability must be reported, never shown as all-free.
		utils.JSONError(c, http.StatusInternalServerError,
			"No se pudo consultar la disponibilidad", err.Error())
		return
	}

	if hours == nil {
		hours = []int{}
	}
	c.JSON(http.StatusOK, models.DayAvailability{OccupiedHours: hours})
}

// CreateBookingHandler handles POST /api/appointments.
func (h *AgendaHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Datos de la cita inválidos", err.Error())
		return
	}

	confirmation, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		var verr *agenda.ValidationError
		var cerr *agenda.ConflictError
		switch {
		case errors.As(err, &verr):
			utils.JSONError(c, http.StatusBadRequest, verr.Message, "")
		case errors.As(err, &cerr):
			utils.JSONError(c, http.StatusConflict, cerr.Message, "")
		default:
			utils.JSONError(c, http.StatusInternalServerError,
				"Error al agendar la cita. Por favor, intentá de nuevo.", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, confirmation)
}
