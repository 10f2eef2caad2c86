package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// All responses except the games listing use the uniform envelope:
// {"status": "success"|"error", "message"?: string, "data"?: any}.

func respondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}
