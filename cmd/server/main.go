package main

import (
	"log"
	"time"

	"food_ordering/internal/config"
	"food_ordering/internal/database"
	"food_ordering/internal/handlers"
	"food_ordering/internal/middleware"
	"food_ordering/internal/repository"
	"food_ordering/internal/services"
	"food_ordering/internal/session"
	"food_ordering/pkg/notify"
	"food_ordering/pkg/token"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize cart session store
	carts, err := session.Initialize(cfg.RedisURL, time.Duration(cfg.CartTTL)*time.Second)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Token manager and optional order webhook
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTL)*time.Second)

	var notifier services.OrderNotifier
	if cfg.OrderWebhookURL != "" {
		notifier = notify.NewClient(cfg.OrderWebhookURL, cfg.OrderWebhookUsername, cfg.OrderWebhookPassword)
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Initialize services
	authService := services.NewAuthService(customerRepo, restaurantRepo, tokens)
	cartService := services.NewCartService(menuRepo, carts)
	orderService := services.NewOrderService(orderRepo, menuRepo, customerRepo, carts, notifier)
	reviewService := services.NewReviewService(reviewRepo, orderRepo)
	menuService := services.NewMenuService(menuRepo)
	restaurantService := services.NewRestaurantService(restaurantRepo, reviewRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	menuHandler := handlers.NewMenuHandler(menuService)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService)

	// Setup routes
	router := gin.Default()

	router.POST("/api/auth/signup", authHandler.SignUp)
	router.POST("/api/auth/login", authHandler.Login)

	api := router.Group("/api", middleware.Authenticate(tokens))
	{
		api.POST("/membership", authHandler.ActivateMembership)

		// Browsing
		api.GET("/restaurants", restaurantHandler.Browse)
		api.GET("/restaurants/:restaurant_id", restaurantHandler.GetRestaurant)
		api.GET("/restaurants/:restaurant_id/menu", menuHandler.GetMenu)
		api.GET("/restaurants/:restaurant_id/reviews", reviewHandler.ListRestaurantReviews)

		// Cart and checkout
		api.POST("/cart/items/:item_id", cartHandler.AddItem)
		api.DELETE("/cart/items/:item_id", cartHandler.RemoveItem)
		api.GET("/cart", cartHandler.ViewCart)
		api.DELETE("/cart", cartHandler.ClearCart)
		api.POST("/checkout", orderHandler.Checkout)

		// Customer orders and reviews
		api.GET("/orders", orderHandler.ListCustomerOrders)
		api.GET("/orders/:order_id", orderHandler.GetOrder)
		api.POST("/orders/:order_id/review", reviewHandler.SubmitReview)

		// Restaurant side
		api.PUT("/restaurant/profile", restaurantHandler.UpdateProfile)
		api.POST("/restaurant/menu", menuHandler.AddItem)
		api.PUT("/restaurant/menu/:item_id", menuHandler.UpdateItem)
		api.DELETE("/restaurant/menu/:item_id", menuHandler.DeleteItem)
		api.GET("/restaurant/orders", orderHandler.ListRestaurantOrders)
		api.GET("/restaurant/orders/pending", orderHandler.ListPendingOrders)
		api.POST("/restaurant/orders/:order_id/accept", orderHandler.AcceptOrder)
		api.POST("/restaurant/orders/:order_id/reject", orderHandler.RejectOrder)
		api.PUT("/restaurant/orders/:order_id/status", orderHandler.UpdateStatus)
		api.GET("/restaurant/reports", orderHandler.RevenueReport)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
