package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/anurag-b72/ecommerce-shopping-backend/config"
	"github.com/anurag-b72/ecommerce-shopping-backend/engine/cart"
	"github.com/anurag-b72/ecommerce-shopping-backend/engine/order"
	"github.com/anurag-b72/ecommerce-shopping-backend/middleware"
	"github.com/anurag-b72/ecommerce-shopping-backend/routes"
	"github.com/anurag-b72/ecommerce-shopping-backend/store/mongodb"
	"github.com/anurag-b72/ecommerce-shopping-backend/upload"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Get()

	// Init DB
	client, stores, err := mongodb.Connect(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("❌ DB disconnect failed: %v", err)
		}
	}()

	// Engines hold their stores explicitly; no ambient globals.
	carts := cart.NewEngine(stores.Users, stores.Products)
	orders := order.NewEngine(stores.Users, stores.Products, stores.Admins, stores.Orders)

	var uploader upload.Uploader
	if cfg.CloudinaryURL != "" {
		cld, err := upload.NewCloudinary(cfg.CloudinaryURL)
		if err != nil {
			log.Fatalf("❌ Cloudinary setup failed: %v", err)
		}
		uploader = cld
	} else {
		log.Println("⚠️ CLOUDINARY_URL not set, image uploads disabled")
	}

	// Gin setup
	r := gin.Default()
	r.Use(middleware.RequestID())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Stores:   stores,
		Carts:    carts,
		Orders:   orders,
		Uploader: uploader,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
