package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cookbook/internal/handlers"
	"cookbook/internal/importer"
	"cookbook/internal/middleware"
	"cookbook/internal/models"
	"cookbook/internal/repositories"
	"cookbook/internal/services"
	"cookbook/pkg/imagestore"
	"cookbook/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "cookbook.db")
	viper.SetDefault("JWT_SECRET", "change_me_in_production")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("MEDIA_DIR", "media")
	viper.SetDefault("MEDIA_URL", "/media")
	viper.SetDefault("PAGE_SIZE", 6)
	viper.SetDefault("PAGE_SIZE_MAX", 100)
	viper.SetDefault("DATA_DIR", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Subscribe{},
		&models.AuthToken{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Favorite{},
		&models.ShoppingCart{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Media storage ---
	images, err := imagestore.New(viper.GetString("MEDIA_DIR"), viper.GetString("MEDIA_URL"))
	if err != nil {
		log.Fatalf("Failed to initialize image store: %v", err)
	}

	// --- RabbitMQ (optional: events are skipped without a broker) ---
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	subRepo := repositories.NewGORMSubscriptionRepository(db)
	tokenRepo := repositories.NewGORMTokenRepository(db)
	tagRepo := repositories.NewGORMTagRepository(db)
	ingredientRepo := repositories.NewGORMIngredientRepository(db)
	recipeRepo := repositories.NewGORMRecipeRepository(db)
	relationRepo := repositories.NewGORMRelationRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, tokenRepo, viper.GetString("JWT_SECRET"))
	userService := services.NewUserService(userRepo, subRepo, recipeRepo)
	catalogService := services.NewCatalogService(tagRepo, ingredientRepo)
	recipeService := services.NewRecipeService(
		recipeRepo, tagRepo, ingredientRepo, relationRepo, subRepo, images, events,
	)

	// --- Catalog bulk import (one-time operational tool) ---
	if dataDir := viper.GetString("DATA_DIR"); dataDir != "" {
		if err := importer.New(ingredientRepo, tagRepo).Run(dataDir); err != nil {
			log.Printf("Catalog import failed: %v", err)
		}
	}

	// --- Admin bootstrap ---
	bootstrapAdmin(userRepo, authService)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())
	app.Static(viper.GetString("MEDIA_URL"), images.Dir())

	authRequired := middleware.AuthRequired(authService)
	authOptional := middleware.AuthOptional(authService)

	api := app.Group("/api")
	authHandler.RegisterRoutes(api, authRequired)
	userHandler.RegisterRoutes(api, authRequired, authOptional)
	catalogHandler.RegisterRoutes(api)
	recipeHandler.RegisterRoutes(api, authRequired, authOptional)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
		})
	})

	// --- Recipe event consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for recipe events...")
			handler := func(msg amqp.Delivery) error {
				log.Printf("Received recipe event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeRecipeEvents(handler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

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

// openDatabase connects to PostgreSQL when the DSN looks like a connection
// string, and falls back to an SQLite file otherwise. Error translation is
// enabled so unique-constraint violations surface uniformly.
func openDatabase(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "host=") {
		return gorm.Open(postgres.Open(dsn), cfg)
	}
	return gorm.Open(sqlite.Open(dsn), cfg)
}

// bootstrapAdmin creates the administrative account from ADMIN_* settings
// when it does not exist yet.
func bootstrapAdmin(userRepo repositories.UserRepository, authService *services.AuthService) {
	email := viper.GetString("ADMIN_EMAIL")
	password := viper.GetString("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}
	if _, err := userRepo.GetByEmail(email); err == nil {
		return
	}

	admin := models.User{
		Email:     email,
		Username:  viper.GetString("ADMIN_USERNAME"),
		FirstName: "Admin",
		LastName:  "Admin",
		Password:  password,
		Role:      models.RoleAdmin,
	}
	if admin.Username == "" {
		admin.Username = "admin"
	}
	if err := authService.Register(&admin); err != nil {
		log.Printf("Failed to bootstrap admin account: %v", err)
		return
	}
	log.Printf("Admin account %s created", email)
}
