package main

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/config"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/middleware"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/models"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/routes"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/sessioncart"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/storage"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Init Redis (anonymous session carts)
	sessions := sessioncart.NewStore(initRedis(cfg))

	// Product image storage, served statically below
	images := storage.NewImageStore(filepath.Join(cfg.UploadDir, "products"))

	// Gin setup
	r := gin.Default()

	// Multipart uploads stay small; images are capped at 4 MB anyway
	r.MaxMultipartMemory = 8 << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Every visitor gets a cart session id before any handler runs
	r.Use(middleware.CartSession)

	// Serve uploaded images
	r.Static("/uploads", cfg.UploadDir)

	// Setup routes
	routes.SetupRoutes(r, db, sessions, images)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection. TranslateError maps
// constraint violations to gorm.ErrDuplicatedKey, which the slug assigner
// and signup flow rely on.
func initDatabase(cfg config.App) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return db
}

// initRedis connects the client backing anonymous session carts.
func initRedis(cfg config.App) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	return client
}
