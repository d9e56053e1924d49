package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/antoniolaudieri/rimborsami/internal/config"
	"github.com/antoniolaudieri/rimborsami/internal/handler"
	"github.com/antoniolaudieri/rimborsami/internal/infrastructure/broker"
	"github.com/antoniolaudieri/rimborsami/internal/infrastructure/database"
	"github.com/antoniolaudieri/rimborsami/internal/infrastructure/payments"
	"github.com/antoniolaudieri/rimborsami/internal/logger"
	"github.com/antoniolaudieri/rimborsami/internal/metrics"
	"github.com/antoniolaudieri/rimborsami/internal/middleware"
	"github.com/antoniolaudieri/rimborsami/internal/repository"
	"github.com/antoniolaudieri/rimborsami/internal/service"
	"github.com/antoniolaudieri/rimborsami/internal/validator"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is fine outside local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to load .env file",
			slog.String("error", err.Error()))
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	// Connect to database
	poolCfg := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}
	pool, err := database.NewPostgres(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	if cfg.DBAutoMigrate {
		if err := database.Migrate(cfg.MigrationsDir, poolCfg.URL()); err != nil {
			logger.Fatal("Failed to apply migrations",
				slog.String("error", err.Error()))
		}
		logger.Info("Migrations applied", slog.String("dir", cfg.MigrationsDir))
	}

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	articleRepo := repository.NewPostgresNewsArticleRepository(pool)
	authorRepo := repository.NewPostgresNewsAuthorRepository(pool)
	opportunityRepo := repository.NewPostgresOpportunityRepository(pool)
	subscriptionRepo := repository.NewPostgresSubscriptionRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	contentService := service.NewContentService(articleRepo, authorRepo, opportunityRepo)
	sitemapService := service.NewSitemapService(articleRepo, opportunityRepo, service.SitemapConfig{
		BaseURL:            cfg.SiteBaseURL,
		SiteName:           cfg.SiteName,
		Language:           cfg.SiteLanguage,
		NewsLimit:          cfg.SitemapNewsLimit,
		OpportunitiesLimit: cfg.SitemapOpportunitiesLimit,
	})

	paymentsClient := payments.NewClient(cfg.PaymentsSyncURL, cfg.PaymentsTimeout)
	sessionManager := service.NewSessionManager(subscriptionRepo, paymentsClient, cfg.SubscriptionPollInterval)

	var clickPublisher service.ClickPublisher
	if cfg.AMQPURL != "" {
		publisher, err := broker.NewPublisher(cfg.AMQPURL, cfg.AffiliateQueue)
		if err != nil {
			logger.Fatal("Failed to connect to message broker",
				slog.String("error", err.Error()))
		}
		defer publisher.Close()
		clickPublisher = publisher
	} else {
		logger.Warn("AMQP_URL not set, affiliate clicks will only be logged")
	}
	affiliateTracker := service.NewAffiliateTracker(clickPublisher, cfg.AffiliateBufferSize)
	partnerLinks := service.NewPartnerLinks(cfg.AffiliatePartners, cfg.AffiliateDefaultLink)

	// Initialize handlers
	sitemapHandler := handler.NewSitemapHandler(sitemapService)
	newsHandler := handler.NewNewsHandler(contentService, v)
	opportunityHandler := handler.NewOpportunityHandler(contentService, v)
	subscriptionHandler := handler.NewSubscriptionHandler(sessionManager)
	affiliateHandler := handler.NewAffiliateHandler(affiliateTracker, partnerLinks, v)
	healthHandler := handler.NewHealthHandler(pool, version)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigin))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Sitemaps, served at the public paths and the legacy function paths
	for path, serve := range map[string]gin.HandlerFunc{
		"/sitemap-news.xml":                   sitemapHandler.News,
		"/sitemap-opportunities.xml":          sitemapHandler.Opportunities,
		"/functions/v1/sitemap-news":          sitemapHandler.News,
		"/functions/v1/sitemap-opportunities": sitemapHandler.Opportunities,
	} {
		router.GET(path, serve)
		router.OPTIONS(path, sitemapHandler.Options)
	}

	// Affiliate redirect
	router.GET("/go/:partner", affiliateHandler.Redirect)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		news := v1.Group("/news")
		{
			news.GET("", newsHandler.ListNews)
			news.GET("/:slug", newsHandler.GetArticle)
			news.GET("/:slug/related", newsHandler.RelatedArticles)
		}

		authors := v1.Group("/authors")
		{
			authors.GET("", newsHandler.ListAuthors)
			authors.GET("/:slug", newsHandler.GetAuthor)
		}

		v1.GET("/opportunities", opportunityHandler.ListOpportunities)
		v1.GET("/categories", opportunityHandler.ListCategories)
		v1.GET("/categories/:code", opportunityHandler.GetCategory)
		v1.GET("/urgency", opportunityHandler.ClassifyUrgency)

		v1.POST("/affiliate/clicks", affiliateHandler.TrackClick)

		if cfg.AuthJWTSecret != "" {
			authed := v1.Group("", middleware.Auth([]byte(cfg.AuthJWTSecret)))
			{
				authed.GET("/subscription", subscriptionHandler.GetSubscription)
				authed.POST("/subscription/refresh", subscriptionHandler.Refresh)
				authed.POST("/subscription/sync", subscriptionHandler.Sync)
				authed.DELETE("/session", subscriptionHandler.Logout)
			}
		} else {
			logger.Warn("AUTH_JWT_SECRET not set, subscription routes disabled")
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop background work first so no poll or publish outlives the server
	logger.Info("Stopping subscription sessions")
	sessionManager.Shutdown()
	logger.Info("Draining affiliate clicks")
	affiliateTracker.Close()

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
