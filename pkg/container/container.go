package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-api/internal/config"
	authorHandler "library-api/internal/domains/author/handler"
	authorRepo "library-api/internal/domains/author/repository"
	authorService "library-api/internal/domains/author/service"
	bookHandler "library-api/internal/domains/book/handler"
	bookRepo "library-api/internal/domains/book/repository"
	bookService "library-api/internal/domains/book/service"
	"library-api/internal/infrastructure/database"
	"library-api/internal/shared/pagination"
)

// Container holds the dependency graph of the application.
//
// Build order matters:
//  1. Config
//  2. Database pool
//  3. Repositories
//  4. Services
//  5. Handlers
type Container struct {
	// ========================================
	// INFRASTRUCTURE
	// ========================================
	Config *config.Config
	DB     *database.PostgresDB

	// ========================================
	// REPOSITORIES
	// ========================================
	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	// ========================================
	// SERVICES
	// ========================================
	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface

	// ========================================
	// HANDLERS
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler

	stopMonitor context.CancelFunc
}

// NewContainer connects to PostgreSQL and wires every layer around cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Info().Msg("initializing container")

	// ========================================
	// STEP 1: CONFIGURATION
	// ========================================
	c := &Container{Config: cfg}
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	// ========================================
	// STEP 2: DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	interval, err := config.MonitorInterval()
	if err != nil {
		db.Close()
		return nil, err
	}
	if interval > 0 {
		monitorCtx, stop := context.WithCancel(context.Background())
		c.stopMonitor = stop
		go db.MonitorPoolHealth(monitorCtx, interval)
	}

	// ========================================
	// STEPS 3-5: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.wire()

	log.Info().Msg("container initialized")
	return c, nil
}

// wire builds repositories, services and handlers on top of c.DB.
func (c *Container) wire() {
	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)

	pcfg := c.PaginationConfig()
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, c.BookService, pcfg)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService, pcfg)
}

func (c *Container) PaginationConfig() pagination.Config {
	return pagination.Config{
		DefaultLimit: c.Config.Pagination.DefaultLimit,
		MaxLimit:     c.Config.Pagination.MaxLimit,
	}
}

// Cleanup stops background work and closes the pool.
func (c *Container) Cleanup() {
	log.Info().Msg("cleaning up container")

	if c.stopMonitor != nil {
		c.stopMonitor()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
