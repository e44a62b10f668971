package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzamia_back_end/internal/models"
	"pizzamia_back_end/internal/orders"
	"pizzamia_back_end/internal/utils"
)

//
// ✅ POST /api/orders/confirm
//
func ConfirmOrder(c *gin.Context) {
	userID := c.GetString("user_id")
	email := c.GetString("email")
	if userID == "" || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	snap, err := Orders.ConfirmOrder(c.Request.Context(), userID, email)
	if err != nil {
		if errors.Is(err, orders.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Carrello vuoto"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	// Ricevuta via email con QR di ritiro: best-effort, non blocca la risposta.
	go func(to string, snap models.OrderSnapshot) {
		if err := utils.SendOrderConfirmationEmail(to, snap); err != nil {
			log.Printf("⚠️ Email di conferma non inviata a %s: %v", to, err)
		}
	}(email, snap)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Ordine confermato",
		"order_id": snap.OrderID,
		"items":    snap.Items,
		"total":    models.Total(snap.Items),
	})
}

//
// ✅ POST /api/orders/guest — conferma ospite, senza autenticazione
//
func ConfirmGuestOrder(c *gin.Context) {
	var input struct {
		Items []models.OrderItem `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dati non validi"})
		return
	}

	snap, err := Orders.ConfirmOrderAsGuest(c.Request.Context(), input.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Carrello vuoto"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Ordine confermato",
		"order_id": snap.OrderID,
		"items":    snap.Items,
		"total":    models.Total(snap.Items),
	})
}

//
// 📜 GET /api/orders/history — storico privato dell'utente
//
func GetOrderHistory(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	history := Orders.History(c.Request.Context(), userID)
	if history == nil {
		history = [][]models.OrderItem{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": history})
}
