package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tomato/internal/handlers"
	"tomato/internal/middleware"
	"tomato/internal/models"
	"tomato/internal/repositories"
	"tomato/internal/services"
	"tomato/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("TOKEN_SECRET", "")
	viper.SetDefault("DB_USER", "tomato")
	viper.SetDefault("DB_PASS", "tomato")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "tomato")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("COOKIE_SECURE", false)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	tokenSecret := viper.GetString("TOKEN_SECRET")
	if tokenSecret == "" {
		log.Fatal("TOKEN_SECRET must be set")
	}

	// --- Database ---
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		viper.GetString("DB_HOST"), viper.GetString("DB_USER"), viper.GetString("DB_PASS"),
		viper.GetString("DB_NAME"), viper.GetString("DB_PORT"))
	// TranslateError maps driver duplicate-key failures to gorm.ErrDuplicatedKey,
	// which the repositories rely on for the conflict signal.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Dish{}, &models.CartItem{}, &models.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, activity events disabled")
	}

	// --- Initialize Repositories ---
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	dishRepo := repositories.NewGORMDishRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	seedCategories(categoryRepo)

	// --- Initialize Services ---
	categoryService := services.NewCategoryService(categoryRepo)
	dishService := services.NewDishService(dishRepo)
	cartService := services.NewCartService(cartRepo, mqClient)
	userService := services.NewUserService(userRepo, mqClient)
	authService := services.NewAuthService(userRepo, tokenSecret)

	// --- Initialize Handlers ---
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	dishHandler := handlers.NewDishHandler(dishService)
	cartHandler := handlers.NewCartHandler(cartService)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService, viper.GetBool("COOKIE_SECURE"))

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     viper.GetString("CORS_ORIGINS"),
		AllowCredentials: true,
	}))

	// --- Routes ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Tomato server is running...")
	})

	authRequired := middleware.AuthRequired(authService)
	adminRequired := middleware.AdminRequired(authService)

	authHandler.RegisterRoutes(app)
	categoryHandler.RegisterRoutes(app)
	dishHandler.RegisterRoutes(app, authRequired, adminRequired)
	cartHandler.RegisterRoutes(app)
	userHandler.RegisterRoutes(app, authRequired, adminRequired)

	// --- Start Event Consumer ---
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for activity events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received activity event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP Server ---
	appPort := viper.GetString("APP_PORT")
	log.Printf("Tomato server is running with the port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// seedCategories populates the categories table with the menu list when it
// is empty. Categories have no write API; this is how they get created.
func seedCategories(repo repositories.CategoryRepository) {
	count, err := repo.Count()
	if err != nil {
		log.Printf("Error counting categories: %v", err)
		return
	}
	if count > 0 {
		return
	}

	names := []string{"Salad", "Rolls", "Deserts", "Sandwich", "Cake", "Pure Veg", "Pasta", "Noodles"}
	for _, name := range names {
		category := models.Category{Name: name}
		if err := repo.Create(&category); err != nil {
			log.Printf("Error seeding category %s: %v", name, err)
		} else {
			log.Printf("Seeded category: %s (ID: %s)", name, category.ID)
		}
	}
}
