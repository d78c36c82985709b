package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"agendate/handlers"
)

// RegisterAppointmentRoutes registers the availability and booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, ah *handlers.AgendaHandler) {
	api := r.Group("/api/appointments")
	{
		api.GET("/availability", ah.GetAvailabilityHandler)
		api.POST("", ah.CreateBookingHandler)
	}
}

// RegisterHealthRoute registers the calendar-backend health endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.HealthHandler)
}

// RegisterRoutes sets up CORS for the static-site frontend and mounts all
// endpoints. Anything hitting a known path with the wrong method gets a 405.
func RegisterRoutes(r *gin.Engine, ah *handlers.AgendaHandler, corsOrigins string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  splitOrigins(corsOrigins),
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Método no permitido"})
	})

	RegisterAppointmentRoutes(r, ah)
	RegisterHealthRoute(r)
}

func splitOrigins(origins string) []string {
	if origins == "" || origins == "*" {
		return []string{"*"}
	}
	parts := strings.Split(origins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
