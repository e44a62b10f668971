package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"pizzamia_back_end/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Tutte le origini ammesse (da restringere in produzione)
		return true
	},
}

//
// 🔄 GET /api/cart/live — sincronizzazione carrello in tempo reale
//
func CartLive(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}
	if Feed == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Sincronizzazione non disponibile"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Errore upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	events, cancel := Feed.Subscribe(ctx, userID)
	defer cancel()

	conn.WriteJSON(gin.H{
		"type":    "connected",
		"message": "Sincronizzazione carrello attiva",
	})

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			// A ogni notifica si rilegge il carrello: il payload dell'evento
			// dice solo che qualcosa è cambiato.
			cart := Orders.Cart(ctx, userID)
			if cart == nil {
				cart = []models.OrderItem{}
			}
			msg := gin.H{
				"type":  "cart_updated",
				"event": event,
				"items": cart,
				"total": models.Total(cart),
				"count": len(cart),
			}
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("❌ Errore invio WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping per tenere viva la connessione
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
