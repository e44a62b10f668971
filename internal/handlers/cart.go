package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzamia_back_end/internal/catalog"
	"pizzamia_back_end/internal/models"
	"pizzamia_back_end/internal/orders"
)

//
// 🛒 GET /api/cart
//
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	cart := Orders.Cart(c.Request.Context(), userID)
	if cart == nil {
		cart = []models.OrderItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":             cart,
		"total":             models.Total(cart),
		"has_offer_in_cart": orders.HasOfferInCart(cart),
	})
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	var input struct {
		ID       string `json:"id" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dati non validi"})
		return
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	// Dal menu si aggiunge sempre la versione base: nome e prezzo arrivano
	// dal catalogo, mai dal client.
	item, ok := lookupCatalogItem(input.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Articolo non trovato nel catalogo"})
		return
	}
	item.Quantity = input.Quantity

	cart := Orders.AddToCart(c.Request.Context(), userID, item)
	c.JSON(http.StatusOK, gin.H{
		"message": "Articolo aggiunto al carrello",
		"items":   cart,
	})
}

//
// 🟢 POST /api/cart/custom — pizza personalizzata, sempre riga nuova
//
func AddCustomItem(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	var input struct {
		PizzaID          string   `json:"pizzaId" binding:"required"`
		CustomizationIDs []string `json:"customizations"`
		Notes            string   `json:"notes"`
		Quantity         int      `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dati non validi"})
		return
	}

	base, ok := catalog.PizzaByID(input.PizzaID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pizza non trovata"})
		return
	}

	cart := Orders.AddCustomizedItem(c.Request.Context(), userID, base, input.CustomizationIDs, input.Notes, input.Quantity)
	c.JSON(http.StatusOK, gin.H{
		"message": "Pizza personalizzata aggiunta al carrello",
		"items":   cart,
	})
}

//
// 🔁 PUT /api/cart/quantity
//
func UpdateQuantity(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	var input struct {
		ID       string `json:"id" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dati non validi"})
		return
	}

	// Quantità <= 0 equivale alla rimozione della riga.
	cart := Orders.UpdateQuantity(c.Request.Context(), userID, input.ID, input.Quantity)
	c.JSON(http.StatusOK, gin.H{"items": cart})
}

//
// ❌ DELETE /api/cart/:itemId
//
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	cart := Orders.RemoveFromCart(c.Request.Context(), userID, c.Param("itemId"))
	c.JSON(http.StatusOK, gin.H{
		"message": "Articolo rimosso dal carrello",
		"items":   cart,
	})
}

//
// 🧹 DELETE /api/cart
//
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	Orders.ClearCart(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"message": "Carrello svuotato"})
}

// lookupCatalogItem risolve un id del catalogo (pizza o offerta) in una riga
// carrello base.
func lookupCatalogItem(id string) (orders.NewItem, bool) {
	if pizza, ok := catalog.PizzaByID(id); ok {
		return orders.NewItem{ID: pizza.ID, Name: pizza.Name, Price: pizza.Price}, true
	}
	if offer, ok := catalog.OfferByID(id); ok {
		return orders.NewItem{ID: offer.ID, Name: offer.Name, Price: offer.Price}, true
	}
	return orders.NewItem{}, false
}
