package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	authorModel "library-api/internal/domains/author/model"
	bookModel "library-api/internal/domains/book/model"
	"library-api/internal/shared/middleware"
	"library-api/internal/shared/validation"
	"library-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupAuthorRoutes(router, c)
	setupBookRoutes(router, c)

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(r gin.IRouter, c *container.Container) {
	chain := validation.Chain(authorModel.Fields()...)

	authors := r.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/search", c.AuthorHandler.Search)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.GET("/:id/books", c.AuthorHandler.ListBooks)
		authors.POST("", chain, c.AuthorHandler.Create)
		authors.PUT("/:id", chain, c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(r gin.IRouter, c *container.Container) {
	chain := validation.Chain(bookModel.Fields(c.AuthorService.Exists)...)

	books := r.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/search", c.BookHandler.Search)
		books.GET("/author/:id", c.BookHandler.ListByAuthor)
		books.GET("/:id", c.BookHandler.GetByID)
		books.POST("", chain, c.BookHandler.Create)
		books.PUT("/:id", chain, c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

// ========================================
// HEALTH
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}
		status := http.StatusOK

		dbStatus := gin.H{"status": "ok"}
		if appCtx.DB == nil {
			dbStatus["status"] = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				log.Warn().Err(err).Str("request_id", c.GetString(middleware.RequestIDKey)).Msg("health check failed")
				dbStatus["status"] = "unavailable"
			} else if stats, err := appCtx.DB.Stats(); err == nil {
				dbStatus["pool"] = stats
			}
		}

		if dbStatus["status"] != "ok" {
			health["status"] = "degraded"
			status = http.StatusServiceUnavailable
		}
		health["database"] = dbStatus

		c.JSON(status, health)
	}
}
