package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzamia_back_end/internal/catalog"
	"pizzamia_back_end/internal/database"
	"pizzamia_back_end/internal/services"
	"pizzamia_back_end/internal/utils"
)

//
// 🍕 GET /api/menu?category=rosse|bianche|speciali
//
func GetMenu(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, gin.H{"pizzas": catalog.PizzasByCategory(category)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pizzas": catalog.AllPizzas()})
}

//
// 🍕 GET /api/menu/:id
//
func GetPizza(c *gin.Context) {
	pizza, ok := catalog.PizzaByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pizza non trovata"})
		return
	}
	c.JSON(http.StatusOK, pizza)
}

//
// 🔍 GET /api/menu/search?q=
//
func SearchMenu(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parametro q mancante"})
		return
	}

	results, err := services.SearchMenu(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ricerca non disponibile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

//
// 🧀 GET /api/menu/customizations
//
func GetCustomizations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"customizations": catalog.AllCustomizations()})
}

//
// 🖼️ GET /api/menu/:id/image — URL firmata a scadenza
//
func GetMenuImage(c *gin.Context) {
	pizza, ok := catalog.PizzaByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pizza non trovata"})
		return
	}
	if pizza.ImageKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nessuna immagine per questa pizza"})
		return
	}

	url, err := services.GenerateSignedURL(c.Request.Context(), pizza.ImageKey)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Immagini non disponibili"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "expires_in": int(services.SignedURLDuration.Seconds())})
}

//
// 🖼️ POST /api/menu/:id/image — upload riservato agli chef
//
func UploadMenuImage(c *gin.Context) {
	pizza, ok := catalog.PizzaByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pizza non trovata"})
		return
	}
	if database.MinIO == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Immagini non disponibili"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File immagine mancante"})
		return
	}

	objectKey := pizza.ImageKey
	if objectKey == "" {
		objectKey = fmt.Sprintf("pizzas/%s.jpg", pizza.ID)
	}

	if err := services.UploadMenuImage(c.Request.Context(), objectKey, file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Errore caricamento immagine"})
		return
	}

	utils.LogAction(c, "upload_image", "menu_item", pizza.ID, nil, gin.H{"object_key": objectKey})
	c.JSON(http.StatusOK, gin.H{"message": "Immagine caricata", "object_key": objectKey})
}
