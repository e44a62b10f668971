package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pizzamia_back_end/internal/database"
)

const (
	LoginMaxAttempts    = 5
	RegisterMaxAttempts = 3

	LoginCooldown    = 15 * time.Minute
	RegisterCooldown = 30 * time.Minute
)

// LoginRateLimit limita i tentativi di accesso per email: al superamento
// della soglia l'email va in cooldown su Redis.
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.Redis == nil {
			c.Next()
			return
		}

		// Legge il body senza consumarlo per i handler successivi.
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		attemptsKey := "login_attempts:" + input.Email
		cooldownKey := "login_cooldown:" + input.Email

		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Troppi tentativi falliti. Riprova tra %d minuti", int(ttl.Minutes())+1),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := database.Redis.Get(ctx, attemptsKey).Int()
		if attempts >= LoginMaxAttempts {
			database.Redis.Set(ctx, cooldownKey, "1", LoginCooldown)
			database.Redis.Del(ctx, attemptsKey)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Troppi tentativi falliti. Account temporaneamente bloccato",
			})
			c.Abort()
			return
		}

		c.Next()

		// Traccia solo i tentativi falliti; il successo azzera il contatore.
		if c.Writer.Status() == http.StatusUnauthorized {
			database.Redis.Incr(ctx, attemptsKey)
			database.Redis.Expire(ctx, attemptsKey, LoginCooldown)
		} else if c.Writer.Status() == http.StatusOK {
			database.Redis.Del(ctx, attemptsKey)
		}
	}
}
