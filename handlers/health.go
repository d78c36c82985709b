package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agendate/utils"
)

// HealthHandler reports the latest calendar-backend health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Calendar {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
