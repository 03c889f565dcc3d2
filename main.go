package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifehub/backend/internal/cache"
	"lifehub/backend/internal/config"
	"lifehub/backend/internal/handlers"
	"lifehub/backend/internal/middleware"
	"lifehub/backend/internal/monitoring"
	"lifehub/backend/internal/repositories"
	"lifehub/backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Application holds all application dependencies and state
type Application struct {
	Config *config.Config
	DB     *gorm.DB
	Cache  cache.Cache
	Redis  *redis.Client
	Router *gin.Engine
	Server *http.Server

	// Services
	AreaService    services.AreaService
	ProjectService services.ProjectService
	TaskService    services.TaskService
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app.setupRoutes()
	app.startServer()
}

func initializeApplication(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config: cfg,
	}

	log.Println("Initializing LifeHub backend...")
	log.Printf("Environment: %s", cfg.Server.Environment)

	db, err := repositories.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	app.DB = db

	if err := repositories.Migrate(db); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}
	log.Println("Database migrated")

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable: %v (continuing with memory cache only)", err)
		redisClient = nil
	} else {
		app.Redis = redisClient
		log.Println("Redis connected")
	}

	if redisClient != nil {
		redisCache := cache.NewRedisCache(&cache.CacheConfig{
			Addr:         cfg.GetRedisAddr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			MaxRetries:   cfg.Redis.MaxRetries,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		app.Cache = cache.NewMultiLevelCache(redisCache)
		log.Println("Multi-level cache initialized (memory L1 + redis L2)")
	} else {
		app.Cache = cache.NewMultiLevelCache(nil)
		log.Println("Memory cache initialized (redis fallback mode)")
	}

	app.AreaService = services.NewAreaService()
	app.ProjectService = services.NewProjectService()
	app.TaskService = services.NewCachedTaskService(services.NewTaskService(), app.Cache)

	log.Println("All services initialized")

	return app, nil
}

func (app *Application) setupRoutes() {
	r := gin.New()

	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(monitoring.MetricsMiddleware())
	r.Use(middleware.RecoveryWithLog())

	if app.Config.RateLimit.Enabled {
		rateLimit := rate.Limit(float64(app.Config.RateLimit.RequestsPerMin) / 60.0)
		r.Use(middleware.RateLimiter(rateLimit, app.Config.RateLimit.BurstSize))
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.LoadHTMLGlob("web/templates/*.html")

	r.GET("/health", app.healthHandler())
	r.GET("/metrics", monitoring.MetricsHandler())

	pageHandler := handlers.NewPageHandler(app.DB, app.AreaService, app.ProjectService, app.TaskService)
	areaHandler := handlers.NewAreaHandler(app.DB, app.AreaService, app.ProjectService, app.TaskService)
	projectHandler := handlers.NewProjectHandler(app.DB, app.ProjectService, app.AreaService, app.TaskService)
	taskHandler := handlers.NewTaskHandler(app.DB, app.TaskService, app.AreaService, app.ProjectService)

	r.GET("/", pageHandler.Index)
	r.GET("/archive", pageHandler.ArchiveView)

	r.GET("/tasks", taskHandler.ListTasks)
	r.POST("/tasks", taskHandler.CreateTask)
	r.GET("/tasks/edit/:id", taskHandler.EditTaskForm)
	r.POST("/tasks/edit/:id", taskHandler.EditTask)
	r.POST("/delete_task/:id", taskHandler.DeleteTask)
	r.POST("/unarchive_task/:id", taskHandler.UnarchiveTask)

	r.GET("/areas", areaHandler.ListAreas)
	r.POST("/areas", areaHandler.CreateArea)
	r.GET("/areas/edit/:id", areaHandler.EditAreaForm)
	r.POST("/areas/edit/:id", areaHandler.EditArea)
	r.POST("/delete_area/:id", areaHandler.DeleteArea)
	r.POST("/unarchive_area/:id", areaHandler.UnarchiveArea)

	r.GET("/projects", projectHandler.ListProjects)
	r.POST("/projects", projectHandler.CreateProject)
	r.GET("/projects/edit/:id", projectHandler.EditProjectForm)
	r.POST("/projects/edit/:id", projectHandler.EditProject)
	r.POST("/delete_project/:id", projectHandler.DeleteProject)
	r.POST("/unarchive_project/:id", projectHandler.UnarchiveProject)

	app.Router = r
}

func (app *Application) startServer() {
	addr := app.Config.GetServerAddr()

	app.Server = &http.Server{
		Addr:         addr,
		Handler:      app.Router,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
		IdleTimeout:  app.Config.Server.IdleTimeout,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := app.Server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}

		app.cleanup()
		log.Println("Server stopped gracefully")
	}()

	log.Printf("Server starting on %s", addr)

	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func (app *Application) cleanup() {
	if app.Cache != nil {
		if err := app.Cache.Close(); err != nil {
			log.Printf("Error closing cache: %v", err)
		}
	}

	if app.Redis != nil {
		if err := app.Redis.Close(); err != nil {
			log.Printf("Error closing redis: %v", err)
		}
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("Error closing database: %v", err)
			}
		}
	}
}

func (app *Application) healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		health := map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "lifehub-backend",
		}

		sqlDB, err := app.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			health["status"] = "unhealthy"
			health["database"] = "down"
			c.JSON(http.StatusServiceUnavailable, health)
			return
		}
		health["database"] = "up"

		if app.Redis != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := app.Redis.Ping(ctx).Err(); err != nil {
				health["redis"] = "down"
			} else {
				health["redis"] = "up"
			}
		}

		c.JSON(http.StatusOK, health)
	}
}
