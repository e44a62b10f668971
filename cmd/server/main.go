package main

import (
	"context"
	"log"
	"os"
	"time"

	"pizzamia_back_end/internal/cache"
	"pizzamia_back_end/internal/config"
	"pizzamia_back_end/internal/database"
	"pizzamia_back_end/internal/handlers"
	"pizzamia_back_end/internal/kvstore"
	"pizzamia_back_end/internal/orders"
	"pizzamia_back_end/internal/routes"
	"pizzamia_back_end/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	config.Load()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("⚠️ STRIPE_SECRET_KEY mancante: checkout disabilitato")
	} else {
		log.Println("✅ Stripe inizializzato")
	}

	database.ConnectDatabases()

	// Preriscaldamento della connessione Redis
	warmupRedisCache()

	// Stato ordini su Redis, registro globale su ScyllaDB
	store := kvstore.NewRedisStore(database.Redis)
	globalLog := orders.NewScyllaGlobalLog(database.Scylla)

	feed := orders.NewRedisCartFeed(database.Redis)
	handlers.Orders = orders.NewService(store, globalLog).WithFeed(feed)
	handlers.Feed = feed
	handlers.Sessions = orders.NewSessionEvents()
	handlers.Orders.Subscribe(handlers.Sessions)

	// Al logout il profilo in cache non è più affidabile
	handlers.Sessions.OnLogout(func(ctx context.Context, userID string) {
		cache.InvalidateUser(ctx, userID)
	})

	// Indicizza il menu su Elasticsearch per la ricerca
	services.IndexMenu()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Server PizzaMia avviato sulla porta", port)
	r.Run(":" + port)
}

func corsOrigins() []string {
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		return []string{origin}
	}
	return []string{"http://localhost:3000"}
}

// warmupRedisCache preriscalda la connessione Redis per evitare la latenza della prima chiamata
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Cache Redis preriscaldata")
	}
}
