package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/FanSt3/naturale-api/internal/cache"
	"github.com/FanSt3/naturale-api/internal/config"
	"github.com/FanSt3/naturale-api/internal/database"
	"github.com/FanSt3/naturale-api/internal/handler"
	"github.com/FanSt3/naturale-api/internal/mailer"
	"github.com/FanSt3/naturale-api/internal/markdown"
	"github.com/FanSt3/naturale-api/internal/middleware"
	"github.com/FanSt3/naturale-api/internal/repository"
	"github.com/FanSt3/naturale-api/internal/service"
	"github.com/FanSt3/naturale-api/internal/utils"
)

// main is the application entrypoint for the Naturale API server.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting naturale api")
	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Warn().Msg("JWT_SECRET not set, using development fallback secret")
	}

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis (optional, public content list cache)
	var contentCache *cache.ContentCache
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis connection failed, content cache disabled")
		} else {
			defer redisClient.Close()
			contentCache = cache.NewContentCache(redisClient)
			log.Info().Msg("redis connected successfully")
		}
	}

	// 4. Ensure the upload directory exists
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", cfg.UploadDir).Msg("could not create upload directory")
		os.Exit(1)
	}

	// 5. Initialize repositories
	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	teamRepo := repository.NewTeamMemberRepository(db)

	// 6. Initialize services
	tokens := utils.NewTokenManager(cfg.JWTSecret)
	welcomeMailer := mailer.New(cfg.SMTP, cfg.BaseURL)
	renderer := markdown.NewRenderer()

	authSvc := service.NewAuthService(userRepo, tokens)
	adminSvc := service.NewAdministratorService(userRepo, welcomeMailer)
	blogSvc := service.NewBlogService(blogRepo, renderer)
	activitySvc := service.NewActivityService(activityRepo, renderer)
	teamSvc := service.NewTeamService(teamRepo)
	uploadSvc := service.NewUploadService(cfg.UploadDir)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:        handler.NewHealthHandler(db, cfg.Env, userRepo, blogRepo, activityRepo, teamRepo),
		Auth:          handler.NewAuthHandler(authSvc, adminSvc, cfg.IsProduction()),
		Administrator: handler.NewAdministratorHandler(adminSvc),
		Blog:          handler.NewBlogHandler(blogSvc, contentCache),
		Activity:      handler.NewActivityHandler(activitySvc, contentCache),
		Team:          handler.NewTeamHandler(teamSvc, contentCache),
		Upload:        handler.NewUploadHandler(uploadSvc),
		Seed:          handler.NewSeedHandler(userRepo, blogRepo, activityRepo, teamRepo),
	}

	// 8. Initialize middleware
	authMw := middleware.NewAuthMiddleware(tokens)

	// 9. Setup router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, authMw, cfg)

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	Administrator *handler.AdministratorHandler
	Blog          *handler.BlogHandler
	Activity      *handler.ActivityHandler
	Team          *handler.TeamHandler
	Upload        *handler.UploadHandler
	Seed          *handler.SeedHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, authMw *middleware.AuthMiddleware, cfg *config.Config) {
	router.GET("/health", handlers.Health.GetHealth)

	api := router.Group("/api")

	// Auth routes. Session resolution happens inside the handlers so that
	// /me can answer {user: null} instead of the generic 401 body.
	auth := api.Group("/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.GET("/me", handlers.Auth.Me)
		auth.GET("/session", handlers.Auth.Session)
		auth.GET("/refresh", handlers.Auth.Refresh)
		auth.POST("/change-password", handlers.Auth.ChangePassword)
	}

	// Public content routes
	api.GET("/blogs", handlers.Blog.List)
	api.GET("/blogs/:id", handlers.Blog.Get)
	api.GET("/activities", handlers.Activity.List)
	api.GET("/activities/:id", handlers.Activity.Get)
	api.GET("/team", handlers.Team.List)
	api.GET("/team/:id", handlers.Team.Get)

	// Protected routes
	protected := api.Group("")
	protected.Use(authMw.Handle())
	{
		protected.GET("/administrators", handlers.Administrator.List)
		protected.POST("/administrators", handlers.Administrator.Create)
		protected.GET("/administrators/:id", handlers.Administrator.Get)
		protected.DELETE("/administrators/:id", handlers.Administrator.Delete)
		protected.GET("/users/first", handlers.Administrator.First)

		protected.POST("/blogs", handlers.Blog.Create)
		protected.PUT("/blogs/:id", handlers.Blog.Update)
		protected.DELETE("/blogs/:id", handlers.Blog.Delete)

		protected.POST("/activities", handlers.Activity.Create)
		protected.PUT("/activities/:id", handlers.Activity.Update)
		protected.DELETE("/activities/:id", handlers.Activity.Delete)

		protected.POST("/team", handlers.Team.Create)
		protected.PUT("/team/:id", handlers.Team.Update)
		protected.DELETE("/team/:id", handlers.Team.Delete)

		protected.POST("/upload", handlers.Upload.Upload)
	}

	// Development-only routes
	if !cfg.IsProduction() {
		api.GET("/debug", handlers.Health.GetDebug)
		api.POST("/seed", handlers.Seed.Seed)
	}

	// Uploaded files
	router.Static("/uploads", cfg.UploadDir)

	// Admin panel pages. Everything except the login page requires a valid
	// session cookie; unauthenticated requests are redirected to login.
	admin := router.Group("/admin")
	admin.Use(authMw.PageGate("/admin/login"))
	admin.StaticFS("/", gin.Dir("./public/admin", false))
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
