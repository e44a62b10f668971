package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"pizzamia_back_end/internal/cache"
	"pizzamia_back_end/internal/database"
)

// Me restituisce il profilo dell'utente autenticato.
func Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	user, err := cache.GetUserFromCache(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utente non trovato"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile aggiorna nome, cognome e indirizzo.
func UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	var input struct {
		Name    string `json:"name"`
		Surname string `json:"surname"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dati non validi"})
		return
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID utente non valido"})
		return
	}

	ctx := c.Request.Context()
	err = database.Scylla.Query(`UPDATE users SET name = ?, surname = ?, address = ? WHERE user_id = ?`,
		input.Name, input.Surname, input.Address, gocql.UUID(uid)).WithContext(ctx).Exec()
	if err != nil {
		log.Println("❌ Errore aggiornamento profilo:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Errore aggiornamento profilo"})
		return
	}

	cache.InvalidateUser(ctx, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Profilo aggiornato"})
}

// DeleteAccount elimina l'account e tutti i record ordini dell'utente
// (carrello, storico, riscatti, cooldown).
func DeleteAccount(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID utente non valido"})
		return
	}

	ctx := c.Request.Context()
	if err := database.Scylla.Query(`DELETE FROM users WHERE user_id = ?`, gocql.UUID(uid)).
		WithContext(ctx).Exec(); err != nil {
		log.Println("❌ Errore eliminazione account:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Errore eliminazione account"})
		return
	}

	Orders.ClearState(ctx, userID)
	cache.InvalidateUser(ctx, userID)

	c.JSON(http.StatusOK, gin.H{"message": "Account eliminato"})
}
