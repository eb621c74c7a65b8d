package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"siteops/internal/catalog"
	"siteops/internal/config"
	"siteops/internal/handler"
	"siteops/internal/middleware"
	"siteops/internal/migrations"
	"siteops/internal/redis"
	"siteops/internal/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	var db *gorm.DB
	var err error
	switch cfg.DBDriver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	default:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := migrations.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
	}
	log.Println("✅ Migrations applied")

	// Load phase/component catalog
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("❌ failed to load catalog: %w", err)
		}
	}
	log.Printf("✅ Catalog loaded (%d phases, %d components)", len(cat.Phases()), len(cat.Components()))

	// Redis is optional: without it the API runs without rate limiting
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.Initialize(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable, rate limiting disabled: %v", err)
			redisClient = nil
		} else {
			log.Println("✅ Connected to Redis")
		}
	}

	// Setup Gin
	r := gin.Default()

	if redisClient != nil {
		window := time.Duration(cfg.RateLimitWindow) * time.Second
		r.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimit, window))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	depRepo := repository.NewDependencyRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	laborTypeRepo := repository.NewLaborTypeRepository(db)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo)
	projectHandler := handler.NewProjectHandler(projectRepo, taskRepo, cat)
	taskHandler := handler.NewTaskHandler(taskRepo, projectRepo, depRepo)
	planningHandler := handler.NewPlanningHandler(projectRepo, taskRepo, depRepo)
	materialHandler := handler.NewMaterialHandler(materialRepo)
	supplierHandler := handler.NewSupplierHandler(supplierRepo, materialRepo)
	laborTypeHandler := handler.NewLaborTypeHandler(laborTypeRepo)
	catalogHandler := handler.NewCatalogHandler(cat)

	// Public routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Project routes
		authorized.POST("/projects", projectHandler.Create)
		authorized.GET("/projects", projectHandler.GetAll)
		authorized.GET("/projects/:id", projectHandler.GetByID)
		authorized.PUT("/projects/:id", projectHandler.Update)
		authorized.DELETE("/projects/:id", projectHandler.Delete)

		// Planning routes
		authorized.GET("/projects/:id/planning", planningHandler.GetSummary)
		authorized.GET("/projects/:id/schedule", planningHandler.GetSchedule)
		authorized.GET("/projects/:id/alerts", planningHandler.GetAlerts)
		authorized.GET("/projects/:id/costs", planningHandler.GetCosts)
		authorized.GET("/projects/:id/dependencies", taskHandler.GetProjectDependencies)

		// Task routes
		authorized.POST("/tasks", taskHandler.Create)
		authorized.GET("/tasks/:id", taskHandler.GetByID)
		authorized.GET("/projects/:id/tasks", taskHandler.GetByProjectID)
		authorized.PUT("/tasks/:id", taskHandler.Update)
		authorized.DELETE("/tasks/:id", taskHandler.Delete)
		authorized.POST("/tasks/:id/dependencies", taskHandler.AddDependency)
		authorized.DELETE("/tasks/:id/dependencies/:predecessor_id", taskHandler.RemoveDependency)

		// Material routes
		authorized.POST("/materials", materialHandler.Create)
		authorized.GET("/materials", materialHandler.GetAll)
		authorized.GET("/materials/categories", materialHandler.GetCategories)
		authorized.GET("/materials/:id", materialHandler.GetByID)
		authorized.PUT("/materials/:id", materialHandler.Update)
		authorized.DELETE("/materials/:id", materialHandler.Delete)
		authorized.GET("/materials/:id/prices", supplierHandler.GetMaterialPrices)

		// Supplier routes
		authorized.POST("/suppliers", supplierHandler.Create)
		authorized.GET("/suppliers", supplierHandler.GetAll)
		authorized.GET("/suppliers/:id", supplierHandler.GetByID)
		authorized.PUT("/suppliers/:id", supplierHandler.Update)
		authorized.DELETE("/suppliers/:id", supplierHandler.Delete)
		authorized.POST("/suppliers/:id/prices", supplierHandler.AddPrice)

		// Labor type routes
		authorized.POST("/labor-types", laborTypeHandler.Create)
		authorized.GET("/labor-types", laborTypeHandler.GetAll)
		authorized.GET("/labor-types/:id", laborTypeHandler.GetByID)
		authorized.PUT("/labor-types/:id", laborTypeHandler.Update)
		authorized.DELETE("/labor-types/:id", laborTypeHandler.Delete)

		// Catalog routes
		authorized.GET("/catalog/phases", catalogHandler.GetPhases)
		authorized.GET("/catalog/components", catalogHandler.GetComponents)
	}
	return &Server{
		Engine: r,
		DB:     db,
		Redis:  redisClient,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis connection: %v", err)
		}
	}

	log.Println("✅ Server exited properly")
}
