package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"ebook-backend/internal/config"
	infraCache "ebook-backend/internal/infrastructure/cache"
	"ebook-backend/internal/infrastructure/database"
	"ebook-backend/internal/infrastructure/store"
	"ebook-backend/pkg/cache"

	// Content domain imports
	contentHandler "ebook-backend/internal/domains/content/handler"
	contentRepo "ebook-backend/internal/domains/content/repository"
	contentService "ebook-backend/internal/domains/content/service"

	// Testimonial domain imports
	testimonialHandler "ebook-backend/internal/domains/testimonial/handler"
	testimonialRepo "ebook-backend/internal/domains/testimonial/repository"
	testimonialService "ebook-backend/internal/domains/testimonial/service"

	// Tracking domain imports
	trackingHandler "ebook-backend/internal/domains/tracking/handler"
	trackingRepo "ebook-backend/internal/domains/tracking/repository"
	trackingService "ebook-backend/internal/domains/tracking/service"

	// PDF domain imports
	"ebook-backend/internal/domains/pdf/generator"
	pdfHandler "ebook-backend/internal/domains/pdf/handler"
	pdfService "ebook-backend/internal/domains/pdf/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
// Pattern: Service Locator + Dependency Injection
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Shared across all domains
	// Lifecycle: Singleton (1 instance duy nhất trong app lifetime)

	Config    *config.Config       // Application config
	DB        *database.PostgresDB // Database connection pool
	Cache     cache.Cache          // Redis cache (interface)
	Store     store.DocumentStore  // Document store trên Postgres JSONB
	Generator *generator.Generator // PDF artifact generator

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	ContentRepo     contentRepo.Repository
	TestimonialRepo testimonialRepo.Repository
	TrackingRepo    trackingRepo.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	ContentService     contentService.Service
	TestimonialService testimonialService.Service
	TrackingService    trackingService.Service
	PDFService         pdfService.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	// Thin layer delegates to services

	ContentHandler     *contentHandler.ContentHandler
	TestimonialHandler *testimonialHandler.TestimonialHandler
	StatsHandler       *trackingHandler.StatsHandler
	PDFHandler         *pdfHandler.PDFHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph
//
// QUAN TRỌNG: Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (DB, Cache, Store, Generator) - phụ thuộc Config
// 3. Repositories - phụ thuộc Infrastructure
// 4. Services - phụ thuộc Repositories
// 5. Handlers - phụ thuộc Services
//
// Nếu thứ tự sai → panic (nil pointer dereference)
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	// Connect với timeout 30s
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// Document store cần schema trước khi nhận queries
	if err := store.EnsureSchema(context.Background(), db.Pool); err != nil {
		return nil, fmt.Errorf("failed to ensure document store schema: %w", err)
	}
	c.Store = store.NewPostgresDocumentStore(db.Pool)
	log.Println("✅ Document store ready")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Type assertion để gọi Connect method (không có trong interface)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure không critical - log warning và continue
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}

	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE PDF GENERATOR
	// ========================================
	log.Println("📄 Initializing PDF generator...")

	gen, err := generator.New(cfg.PDF.StorageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init pdf generator: %w", err)
	}
	c.Generator = gen
	log.Printf("✅ PDF generator ready (storage: %s)", cfg.PDF.StorageDir)

	// ========================================
	// STEP 5: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 6: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 7: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

// initRepositories khởi tạo tất cả repositories
// Pattern: Constructor Injection
func (c *Container) initRepositories() {
	// Tất cả repositories đọc qua document store chung
	c.ContentRepo = contentRepo.NewStoreRepository(c.Store)
	c.TestimonialRepo = testimonialRepo.NewStoreRepository(c.Store)
	c.TrackingRepo = trackingRepo.NewStoreRepository(c.Store)
}

// initServices khởi tạo tất cả services
func (c *Container) initServices() {
	c.ContentService = contentService.NewContentService(c.ContentRepo, c.Cache)
	c.TestimonialService = testimonialService.NewTestimonialService(c.TestimonialRepo)
	c.TrackingService = trackingService.NewTrackingService(c.TrackingRepo)

	// PDF service aggregate content + tracking + generator
	c.PDFService = pdfService.NewPDFService(
		c.ContentService,
		c.TrackingService,
		c.Generator,
	)
}

// initHandlers khởi tạo tất cả HTTP handlers
func (c *Container) initHandlers() {
	c.ContentHandler = contentHandler.NewContentHandler(c.ContentService)
	c.TestimonialHandler = testimonialHandler.NewTestimonialHandler(c.TestimonialService)
	c.StatsHandler = trackingHandler.NewStatsHandler(c.TrackingService)
	c.PDFHandler = pdfHandler.NewPDFHandler(c.PDFService)
}

// Cleanup dọn dẹp resources khi shutdown
// Gọi trong graceful shutdown của server
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	// Close database connections
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	// Close Redis connections
	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
