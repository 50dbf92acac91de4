package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/pixelforge/imgtier/internal/adapter/handler"
	"github.com/pixelforge/imgtier/internal/adapter/repository/postgres"
	"github.com/pixelforge/imgtier/internal/infrastructure/auth"
	"github.com/pixelforge/imgtier/internal/infrastructure/cache"
	"github.com/pixelforge/imgtier/internal/infrastructure/config"
	"github.com/pixelforge/imgtier/internal/infrastructure/database"
	"github.com/pixelforge/imgtier/internal/infrastructure/middleware"
	"github.com/pixelforge/imgtier/internal/infrastructure/observability"
	"github.com/pixelforge/imgtier/internal/infrastructure/server"
	"github.com/pixelforge/imgtier/internal/infrastructure/storage"
	"github.com/pixelforge/imgtier/internal/infrastructure/token"
	authUC "github.com/pixelforge/imgtier/internal/usecase/auth"
	"github.com/pixelforge/imgtier/internal/usecase/thumbnail"
	"github.com/pixelforge/imgtier/internal/usecase/tier"
	"github.com/pixelforge/imgtier/internal/usecase/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, "migrations"); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Repositories
	userRepo := postgres.NewUserRepo(pool)
	tierRepo := postgres.NewTierRepo(pool)
	imageRepo := postgres.NewImageRepo(pool)
	thumbnailRepo := postgres.NewThumbnailRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	passwordHasher := auth.NewPasswordHasher(12)
	linkSigner := token.NewSigner(cfg.Link.SecretKey)

	s3Storage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}
	normalizer := storage.NewNormalizer()
	thumbnailer := storage.NewThumbnailer()

	// Use cases
	authSvc := authUC.NewService(userRepo, tierRepo, jwtSvc, passwordHasher, cfg.Upload.DefaultTier)
	tierSvc := tier.NewService(tierRepo, userRepo)
	uploadSvc := upload.NewService(userRepo, tierRepo, imageRepo, thumbnailRepo, s3Storage, normalizer, thumbnailer, linkSigner)
	thumbnailSvc := thumbnail.NewService(thumbnailRepo, s3Storage, linkSigner)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	tierHandler := handler.NewTierHandler(tierSvc)
	uploadHandler := handler.NewUploadHandler(uploadSvc)
	thumbnailHandler := handler.NewThumbnailHandler(thumbnailSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit)
		}
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:      authHandler,
		TierHandler:      tierHandler,
		UploadHandler:    uploadHandler,
		ThumbnailHandler: thumbnailHandler,
		AuthMiddleware:   authMiddleware,
		RateLimiter:      rateLimiter,
		Logger:           logger,
		Environment:      cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
