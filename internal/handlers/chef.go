package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pizzamia_back_end/internal/models"
	"pizzamia_back_end/internal/orders"
	"pizzamia_back_end/internal/utils"
)

//
// 👨‍🍳 GET /api/chef/orders — registro globale, tutti gli utenti
//
func GetAllOrders(c *gin.Context) {
	snaps, err := Orders.AllOrders(c.Request.Context())
	if err != nil {
		log.Println("❌ Errore lettura registro globale:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Errore recupero ordini"})
		return
	}

	if snaps == nil {
		snaps = []models.OrderSnapshot{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": snaps})
}

//
// 👨‍🍳 PUT /api/chef/orders/:orderId/items/:seq/status
//
func UpdateOrderItemStatus(c *gin.Context) {
	orderID := c.Param("orderId")
	seq, err := strconv.Atoi(c.Param("seq"))
	if err != nil || seq < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Indice riga non valido"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dati non validi"})
		return
	}
	if input.Status != models.StatusPending && input.Status != models.StatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stato non valido"})
		return
	}

	if err := Orders.UpdateItemStatus(c.Request.Context(), orderID, seq, input.Status); err != nil {
		if errors.Is(err, orders.ErrOrderItemNotFound) {
			utils.LogFailedAction(c, "update_status", "order_item", orderID, "riga non trovata")
			c.JSON(http.StatusNotFound, gin.H{"error": "Riga ordine non trovata"})
			return
		}
		log.Println("❌ Errore aggiornamento stato ordine:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Errore aggiornamento stato"})
		return
	}

	utils.LogAction(c, "update_status", "order_item", orderID, nil, gin.H{"seq": seq, "status": input.Status})
	c.JSON(http.StatusOK, gin.H{"message": "Stato aggiornato"})
}
