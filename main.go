package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Mercurial-spe/shop/middleware"
	"github.com/Mercurial-spe/shop/models"
	"github.com/Mercurial-spe/shop/notify"
	"github.com/Mercurial-spe/shop/routes"
	"github.com/Mercurial-spe/shop/sweeper"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger.Info().Msg("starting shop backend")

	db := initDatabase(logger)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate failed")
	}

	seedUsers(db, logger)

	notifier := buildNotifier(logger)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, db, notifier)

	sw := sweeper.New(db, logger)
	sw.Start()
	defer sw.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info().Str("port", port).Msg("server listening")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

// initDatabase opens the GORM connection from DATABASE_URL or discrete vars.
func initDatabase(logger zerolog.Logger) *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			logger.Fatal().Err(err).Msg("db connection failed")
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("db connection failed")
	}
	return db
}

// seedUsers creates the default seller and buyer accounts if absent.
func seedUsers(db *gorm.DB, logger zerolog.Logger) {
	defaults := []models.User{
		{Username: "admin", Password: "123456", Email: strPtr("admin@example.com"), Role: models.RoleSeller},
		{Username: "buyer", Password: "123456", Email: strPtr("buyer@example.com"), Role: models.RoleCustomer},
	}
	for _, u := range defaults {
		var existing models.User
		if err := db.Where("username = ?", u.Username).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&u).Error; err != nil {
			logger.Error().Err(err).Str("username", u.Username).Msg("seed user failed")
			continue
		}
		logger.Info().Str("username", u.Username).Msg("default user created")
	}
}

// buildNotifier returns the SMTP notifier when configured, else a log sink.
func buildNotifier(logger zerolog.Logger) notify.Notifier {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return notify.NewLogNotifier(logger)
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return notify.NewEmailNotifier(
		host,
		port,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASSWORD"),
		os.Getenv("SMTP_FROM"),
	)
}

func strPtr(s string) *string { return &s }
