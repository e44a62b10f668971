package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pizzamia_back_end/internal/catalog"
	"pizzamia_back_end/internal/orders"
	"pizzamia_back_end/internal/wheel"
)

//
// 🎡 GET /api/wheel/status
//
func WheelStatus(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	state := Orders.State(c.Request.Context(), userID)
	now := time.Now()
	remaining := wheel.Remaining(now, state.LastSpin)

	c.JSON(http.StatusOK, gin.H{
		"can_spin":          wheel.CanSpin(now, state.LastSpin, len(state.Redeemed), orders.HasOfferInCart(state.Cart)),
		"on_cooldown":       remaining > 0,
		"remaining_ms":      remaining.Milliseconds(),
		"remaining":         wheel.FormatRemaining(remaining),
		"has_offer_in_cart": orders.HasOfferInCart(state.Cart),
	})
}

//
// 🎡 POST /api/wheel/spin — tenta un giro; se permesso aggiunge al carrello
// l'offerta vinta. Il cooldown NON parte qui: parte alla conferma dell'ordine.
//
func SpinWheel(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	ctx := c.Request.Context()
	state := Orders.State(ctx, userID)
	now := time.Now()

	if !wheel.CanSpin(now, state.LastSpin, len(state.Redeemed), orders.HasOfferInCart(state.Cart)) {
		remaining := wheel.Remaining(now, state.LastSpin)
		c.JSON(http.StatusForbidden, gin.H{
			"error":             "Non puoi ancora girare la ruota",
			"remaining":         wheel.FormatRemaining(remaining),
			"remaining_ms":      remaining.Milliseconds(),
			"has_offer_in_cart": orders.HasOfferInCart(state.Cart),
		})
		return
	}

	// Stessa cinematica della ruota dell'app: 5-8 giri completi più un angolo
	// terminale casuale, mappato sullo spicchio di arrivo.
	offers := catalog.AllOffers()
	spins := 5 + rand.Float64()*3
	angle := rand.Float64() * 360
	totalRotation := spins*360 + angle
	normalized := wheel.LandingAngle(totalRotation)
	won := offers[wheel.PickOffer(normalized, len(offers))]

	cart := Orders.AddToCart(ctx, userID, orders.NewItem{
		ID:       won.ID,
		Name:     won.Name,
		Price:    won.Price,
		Quantity: 1,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":  "Hai vinto un'offerta!",
		"offer":    won,
		"rotation": totalRotation,
		"items":    cart,
	})
}
