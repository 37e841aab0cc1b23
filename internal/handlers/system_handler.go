package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the liveness probe for the desktop shell / reverse proxy.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "online"})
}
