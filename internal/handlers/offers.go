package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzamia_back_end/internal/catalog"
)

//
// 🏷️ GET /api/offers — sezioni per il carousel
//
func GetOfferSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": catalog.OfferSections()})
}

//
// 🏷️ GET /api/offers/all — lista piatta (ruota della fortuna)
//
func GetAllOffers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"offers": catalog.AllOffers()})
}
