package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"karttem-admin/internal/handlers"
	"karttem-admin/internal/middleware"
	"karttem-admin/internal/repositories"
	"karttem-admin/internal/services"
	"karttem-admin/internal/transformers"
	"karttem-admin/internal/validators"
	"karttem-admin/pkg/cache"
	"karttem-admin/pkg/config"
	"karttem-admin/pkg/database"
	"karttem-admin/pkg/imageproc"
	"karttem-admin/pkg/inmobiliaria"
	"karttem-admin/pkg/logger"
	"karttem-admin/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config *config.Config
	Router *gin.Engine
	Server *http.Server

	AuthService *services.AuthService

	AuthHandler         *handlers.AuthHandler
	DashboardHandler    *handlers.DashboardHandler
	PropertyHandler     *handlers.PropertyHandler
	OwnerHandler        *handlers.OwnerHandler
	UserHandler         *handlers.UserHandler
	PropertyTypeHandler *handlers.PropertyTypeHandler

	RateLimiter      *middleware.RateLimiter
	LoginRateLimiter *middleware.RateLimiter

	activityRepo repositories.ActivityRepository
	listCache    *cache.Tiered
	ctx          context.Context
	cancel       context.CancelFunc
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{Config: cfg, ctx: ctx, cancel: cancel}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// connect the activity log; without a URI the panel runs without one
func (a *App) initializeDatabase() {
	if a.Config.Database.URI == "" {
		logger.GlobalLogger.Warnf("database.uri is empty, admin activity will not be recorded")
		a.activityRepo = repositories.NewNoopActivityRepository()
		return
	}

	if err := database.InitDB(a.Config.Database.URI, a.Config.Database.DBName); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database, continuing without activity log: %v", err)
		a.activityRepo = repositories.NewNoopActivityRepository()
		return
	}

	db := database.NewMongoDatabase(database.DB)
	ctx, cancel := context.WithTimeout(a.ctx, 10*time.Second)
	defer cancel()
	if err := db.CreateIndexes(ctx); err != nil {
		logger.GlobalLogger.Warnf("Failed to create activity indexes: %v", err)
	}
	a.activityRepo = repositories.NewActivityRepository(db)
}

// initialize the Redis cache
func (a *App) initializeCache() {
	redisCfg, err := cache.RedisConfigFrom(a.Config)
	if err != nil {
		logger.GlobalLogger.Errorf("Invalid Redis configuration: %v", err)
		os.Exit(1)
	}
	if err := cache.InitRedis(redisCfg); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiters; sign-in gets a stricter one
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 20)
	a.LoginRateLimiter = middleware.NewRateLimiter(rate.Every(12*time.Second), 5)
	go a.RateLimiter.Cleanup(a.ctx, time.Minute)
	go a.LoginRateLimiter.Cleanup(a.ctx, time.Minute)
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	cfg := a.Config

	// backend client
	client := inmobiliaria.NewClient(cfg.Backend.BaseURL, inmobiliaria.ClientOptions{Timeout: cfg.Backend.Timeout})

	// repositories
	store := cache.NewStore(cache.RedisClient)
	a.listCache = cache.NewTiered(store, cache.PropertyListIndexKey(), cfg.Cache.LocalTTL)
	sessionRepo := repositories.NewSessionRepository(store)
	listingCache := repositories.NewListingCache(a.listCache, cfg.Cache.ListTTL)

	// transformers
	propTrans := transformers.NewPropertyTransformer()

	// validators
	propertyValidator := validators.NewPropertyValidator()
	ownerValidator := validators.NewOwnerValidator()
	userValidator := validators.NewUserValidator()
	propertyTypeValidator := validators.NewPropertyTypeValidator()

	compressor := imageproc.NewCompressor(imageproc.Options{
		MaxDimension: cfg.Images.MaxDimension,
		MaxBytes:     cfg.Images.MaxBytes,
		Quality:      cfg.Images.Quality,
	})

	// services
	activity := services.NewActivityRecorder(a.activityRepo)
	a.AuthService = services.NewAuthService(client.Auth, sessionRepo, userValidator, activity, cfg.JWT.Secret, cfg.Session.TTL)
	propertyService := services.NewPropertyService(
		client.Properties, client.Owners, listingCache, propTrans,
		propertyValidator, compressor, activity, cfg.Agency.Name,
	)
	dashboardService := services.NewDashboardService(propertyService, propTrans, activity)
	ownerService := services.NewOwnerService(client.Owners, ownerValidator, activity)
	userService := services.NewUserService(client.Users, userValidator, activity)
	propertyTypeService := services.NewPropertyTypeService(client.PropertyTypes, propertyTypeValidator, activity)

	// handlers
	a.AuthHandler = handlers.NewAuthHandler(a.AuthService, a.cookieConfig())
	a.DashboardHandler = handlers.NewDashboardHandler(dashboardService)
	a.PropertyHandler = handlers.NewPropertyHandler(propertyService)
	a.OwnerHandler = handlers.NewOwnerHandler(ownerService)
	a.UserHandler = handlers.NewUserHandler(userService)
	a.PropertyTypeHandler = handlers.NewPropertyTypeHandler(propertyTypeService)
}

func (a *App) cookieConfig() middleware.CookieConfig {
	return middleware.CookieConfig{
		Name:   a.Config.Session.CookieName,
		Secure: a.Config.Session.SecureCookie,
	}
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	if a.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.New()
	a.Router.MaxMultipartMemory = 32 << 20
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	a.cancel()
	if a.listCache != nil {
		a.listCache.Stop()
	}
	database.CloseDB()
	cache.CloseRedis()
}
