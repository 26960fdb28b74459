package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dogwalking_backend/internal/config"
	"dogwalking_backend/internal/handlers"
	"dogwalking_backend/internal/logger"
	"dogwalking_backend/internal/middleware"
	"dogwalking_backend/internal/models"
	"dogwalking_backend/internal/repositories"
	"dogwalking_backend/internal/routes"
	"dogwalking_backend/internal/services"
	"dogwalking_backend/internal/storage"
	"dogwalking_backend/internal/validator"
)

// Run boots the whole application: config, logger, database, router.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := gormDB.AutoMigrate(
		&models.Member{},
		&models.Dog{},
		&models.Notification{},
		&models.Application{},
		&models.Match{},
	); err != nil {
		logger.Fatal("auto-migration failed", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter builds the gin engine with all middleware, services and
// routes. Exposed separately so tests can run against httptest.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}

	// Repositories
	memberRepo := repositories.NewMemberRepository(gormDB)
	dogRepo := repositories.NewDogRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	matchStore := repositories.NewMatchRepository(gormDB)

	// Services
	imageService := services.NewImageService(storageInstance, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes)
	authService := services.NewAuthService(memberRepo, cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)
	memberService := services.NewMemberService(memberRepo, dogRepo, imageService)
	dogService := services.NewDogService(dogRepo, imageService)
	notificationService := services.NewNotificationService(notificationRepo, dogRepo, applicationRepo)
	applicationService := services.NewApplicationService(applicationRepo, notificationRepo)
	matchService := services.NewMatchService(matchStore)
	seedService := services.NewSeedService(memberRepo, dogRepo, notificationRepo)

	// Handlers
	baseHandler := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		MemberHandler:       handlers.NewMemberHandler(baseHandler, authService, memberService),
		DogHandler:          handlers.NewDogHandler(baseHandler, dogService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, notificationService, applicationService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, applicationService),
		MatchHandler:        handlers.NewMatchHandler(baseHandler, matchService),
		HomeHandler:         handlers.NewHomeHandler(baseHandler, notificationService, seedService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, appHandlers, authService)
	return router
}
