package routes

import (
	"github.com/gin-gonic/gin"

	"pizzamia_back_end/internal/handlers"
	"pizzamia_back_end/internal/middleware"
)

// RegisterRoutes registra tutte le rotte dell'API.
func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Autenticazione
	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", middleware.LoginRateLimit(), handlers.Login)
		auth.POST("/chef/login", middleware.LoginRateLimit(), handlers.ChefLogin)
		auth.POST("/logout", middleware.AuthRequired(), handlers.Logout)
		auth.GET("/me", middleware.AuthRequired(), handlers.Me)
		auth.PUT("/me", middleware.AuthRequired(), handlers.UpdateProfile)
		auth.DELETE("/account", middleware.AuthRequired(), handlers.DeleteAccount)
	}

	// Menu e offerte (pubblici)
	menu := api.Group("/menu")
	{
		menu.GET("", handlers.GetMenu)
		menu.GET("/search", handlers.SearchMenu)
		menu.GET("/customizations", handlers.GetCustomizations)
		menu.GET("/:id", handlers.GetPizza)
		menu.GET("/:id/image", handlers.GetMenuImage)
		menu.POST("/:id/image", middleware.AuthRequired(), middleware.RequireChef, handlers.UploadMenuImage)
	}

	offers := api.Group("/offers")
	{
		offers.GET("", handlers.GetOfferSections)
		offers.GET("/all", handlers.GetAllOffers)
	}

	// Carrello (autenticato)
	cart := api.Group("/cart", middleware.AuthRequired())
	{
		cart.GET("", handlers.GetCart)
		cart.GET("/live", handlers.CartLive)
		cart.POST("/add", handlers.AddToCart)
		cart.POST("/custom", handlers.AddCustomItem)
		cart.PUT("/quantity", handlers.UpdateQuantity)
		cart.DELETE("/:itemId", handlers.RemoveFromCart)
		cart.DELETE("", handlers.ClearCart)
	}

	// Ordini
	ordersGroup := api.Group("/orders")
	{
		ordersGroup.POST("/confirm", middleware.AuthRequired(), handlers.ConfirmOrder)
		ordersGroup.POST("/guest", handlers.ConfirmGuestOrder)
		ordersGroup.GET("/history", middleware.AuthRequired(), handlers.GetOrderHistory)
	}

	// Ruota della fortuna (autenticata)
	wheelGroup := api.Group("/wheel", middleware.AuthRequired())
	{
		wheelGroup.GET("/status", handlers.WheelStatus)
		wheelGroup.POST("/spin", handlers.SpinWheel)
	}

	// Checkout (autenticato)
	api.POST("/checkout", middleware.AuthRequired(), handlers.Checkout)
	api.GET("/checkout/coupon", middleware.AuthRequired(), handlers.ValidateCoupon)

	// Vista chef
	chef := api.Group("/chef", middleware.AuthRequired(), middleware.RequireChef)
	{
		chef.GET("/orders", handlers.GetAllOrders)
		chef.PUT("/orders/:orderId/items/:seq/status", handlers.UpdateOrderItemStatus)
	}
}
