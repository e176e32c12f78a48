package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"restoran/internal/config"
	"restoran/internal/handlers"
	"restoran/internal/models"
	"restoran/internal/repositories"
	"restoran/internal/seed"
	"restoran/internal/services"
	"restoran/pkg/rabbitmq"
	"restoran/pkg/telegram"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := openDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)

	// --- Seed the catalog on first boot ---
	// Seeding failure is non-fatal: the process serves whatever is in
	// the store, even if that is nothing.
	if err := seed.NewLoader(productRepo).EnsureSeeded(); err != nil {
		log.Printf("Warning: catalog seeding failed: %v", err)
	}

	// --- Notification capability ---
	notifier := telegram.NewClient(telegram.Config{
		BaseURL: cfg.TelegramAPIURL,
		Token:   cfg.TelegramBotToken,
		ChatID:  cfg.TelegramChatID,
	})

	// --- Optional order event stream ---
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			// The event stream is best-effort; run without it.
			log.Printf("Warning: RabbitMQ unavailable, order events disabled: %v", err)
		} else {
			defer mqClient.Close()
			publisher = mqClient
		}
	}

	// --- Services ---
	catalogService := services.NewCatalogService(productRepo)
	orderService := services.NewOrderService(notifier, publisher)

	// --- Handlers ---
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- API Routes ---
	// Literal routes first: the category routes are wildcards and would
	// shadow anything registered after them.
	orderHandler.RegisterRoutes(app)
	catalogHandler.RegisterRoutes(app)

	// --- Start HTTP Server ---
	log.Printf("Starting server on %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server gracefully stopped")
}

// openDatabase opens the catalog store. A postgres:// locator selects
// the Postgres driver; anything else is treated as a SQLite path.
func openDatabase(url string) (*gorm.DB, error) {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return gorm.Open(postgres.Open(url), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(url), &gorm.Config{})
}
