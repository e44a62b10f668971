package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
	"github.com/stripe/stripe-go/v83/promotioncode"

	"pizzamia_back_end/internal/models"
)

//
// 💳 POST /api/checkout — crea il PaymentIntent sul carrello corrente
//
func Checkout(c *gin.Context) {
	userID := c.GetString("user_id")
	email := c.GetString("email")
	if userID == "" || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	if stripe.Key == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Pagamenti non disponibili"})
		return
	}

	cart := Orders.Cart(c.Request.Context(), userID)
	if len(cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Carrello vuoto"})
		return
	}

	total := models.Total(cart)

	cartJSON, err := json.Marshal(cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Errore serializzazione carrello"})
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(total * 100)),
		Currency: stripe.String("eur"),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"user_id": userID,
			"email":   email,
			"cart":    string(cartJSON),
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		log.Printf("❌ Errore Stripe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Errore creazione pagamento"})
		return
	}

	log.Printf("💳 Checkout creato: %s (%.2f€) per %s", intent.ID, total, email)

	c.JSON(http.StatusOK, gin.H{
		"client_secret": intent.ClientSecret,
		"payment_id":    intent.ID,
		"amount":        total,
		"currency":      "eur",
		"items_count":   len(cart),
	})
}

//
// 🎟️ GET /api/checkout/coupon?code=
//
func ValidateCoupon(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Codice richiesto"})
		return
	}

	if stripe.Key == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Pagamenti non disponibili"})
		return
	}

	params := &stripe.PromotionCodeListParams{}
	params.Filters.AddFilter("code", "", code)
	params.Filters.AddFilter("active", "", "true")

	iter := promotioncode.List(params)
	if !iter.Next() {
		c.JSON(http.StatusNotFound, gin.H{
			"valid": false,
			"error": "Codice non valido o scaduto",
		})
		return
	}

	promo := iter.PromotionCode()
	response := gin.H{
		"valid":  true,
		"code":   code,
		"active": promo.Active,
		"id":     promo.ID,
	}
	if promo.ExpiresAt > 0 {
		response["expires_at"] = promo.ExpiresAt
	}
	if promo.MaxRedemptions > 0 {
		response["max_redemptions"] = promo.MaxRedemptions
		response["times_redeemed"] = promo.TimesRedeemed
	}

	c.JSON(http.StatusOK, response)
}
