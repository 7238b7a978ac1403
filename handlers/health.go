package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skymate/utils"
)

// Health handles GET /healthz with the latest dependency snapshot.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"dependencies": utils.GetHealthStatus(),
	})
}
