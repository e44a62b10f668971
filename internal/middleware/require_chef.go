package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzamia_back_end/internal/models"
)

// RequireChef verifica che l'utente autenticato abbia il ruolo "chef".
func RequireChef(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != models.RoleChef {
		c.JSON(http.StatusForbidden, gin.H{"error": "Solo gli Chef possono accedere a questa risorsa"})
		c.Abort()
		return
	}
	c.Next()
}
