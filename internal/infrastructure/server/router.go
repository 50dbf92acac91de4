package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/pixelforge/imgtier/internal/adapter/handler"
	"github.com/pixelforge/imgtier/internal/infrastructure/middleware"
)

type Router struct {
	engine           *gin.Engine
	authHandler      *handler.AuthHandler
	tierHandler      *handler.TierHandler
	uploadHandler    *handler.UploadHandler
	thumbnailHandler *handler.ThumbnailHandler
	authMiddleware   *middleware.AuthMiddleware
	rateLimiter      *middleware.RateLimiter
	logger           *zap.Logger
}

type RouterConfig struct {
	AuthHandler      *handler.AuthHandler
	TierHandler      *handler.TierHandler
	UploadHandler    *handler.UploadHandler
	ThumbnailHandler *handler.ThumbnailHandler
	AuthMiddleware   *middleware.AuthMiddleware
	RateLimiter      *middleware.RateLimiter
	Logger           *zap.Logger
	Environment      string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine:           gin.New(),
		authHandler:      cfg.AuthHandler,
		tierHandler:      cfg.TierHandler,
		uploadHandler:    cfg.UploadHandler,
		thumbnailHandler: cfg.ThumbnailHandler,
		authMiddleware:   cfg.AuthMiddleware,
		rateLimiter:      cfg.RateLimiter,
		logger:           cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Limit())
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
		}

		images := api.Group("/images")
		images.Use(r.authMiddleware.RequireAuth())
		{
			images.POST("", r.uploadHandler.Upload)
			images.GET("", r.uploadHandler.ListImages)
			images.GET("/:id", r.uploadHandler.GetImage)
			images.DELETE("/:id", r.uploadHandler.DeleteImage)
		}

		tiers := api.Group("/tiers")
		tiers.Use(r.authMiddleware.RequireAuth())
		{
			tiers.POST("", r.tierHandler.Create)
			tiers.GET("", r.tierHandler.List)
			tiers.GET("/:id", r.tierHandler.Get)
			tiers.PUT("/:id", r.tierHandler.Update)
			tiers.DELETE("/:id", r.tierHandler.Delete)
		}

		thumbnails := api.Group("/thumbnails")
		thumbnails.Use(r.authMiddleware.RequireAuth())
		{
			thumbnails.GET("", r.thumbnailHandler.List)
			thumbnails.GET("/:id", r.thumbnailHandler.Get)
			thumbnails.DELETE("/:id", r.thumbnailHandler.Delete)
		}

		// Expiring links authenticate by token, not by session.
		api.GET("/links/:token", r.thumbnailHandler.ResolveLink)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
