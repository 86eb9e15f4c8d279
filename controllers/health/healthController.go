package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handle Health Check
func HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
