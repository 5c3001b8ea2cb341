package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/secrets"
)

func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if key := secrets.Get(c.Request.Context(), "ADMIN_API_KEY"); key == "" || apiKey != key {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}
