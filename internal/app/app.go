package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"contrib.go.opencensus.io/integrations/ocsql"

	"github.com/sagestone/sagestone/config"
	"github.com/sagestone/sagestone/internal/database"
	"github.com/sagestone/sagestone/internal/domain"
	httpHandler "github.com/sagestone/sagestone/internal/http"
	"github.com/sagestone/sagestone/internal/http/middleware"
	"github.com/sagestone/sagestone/internal/repository"
	"github.com/sagestone/sagestone/internal/service"
	"github.com/sagestone/sagestone/pkg/logger"
	"github.com/sagestone/sagestone/pkg/mailer"
	"github.com/sagestone/sagestone/pkg/ratelimiter"
	"github.com/sagestone/sagestone/pkg/tracing"
)

// startupPingTimeout bounds the connectivity check made before schema initialisation
const startupPingTimeout = 5 * time.Second

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	// Getters for app components accessed in tests
	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetMux() *http.ServeMux
	GetDB() *sql.DB
	GetMailer() mailer.Mailer

	// Server status methods
	IsServerCreated() bool
	WaitForServerStart(ctx context.Context) bool

	// Methods for initialization steps
	InitTracing() error
	InitDB() error
	InitMailer() error
	InitRepositories() error
	InitServices() error
	InitHandlers() error

	// Graceful shutdown methods
	SetShutdownTimeout(timeout time.Duration)
	GetActiveRequestCount() int64
	GetShutdownContext() context.Context
}

// App encapsulates the application dependencies and configuration
type App struct {
	config  *config.Config
	logger  logger.Logger
	db      *sql.DB
	mailer  mailer.Mailer
	limiter *ratelimiter.RateLimiter

	// skipSchemaInit is set when the database was injected by an option
	skipSchemaInit bool

	// Repositories
	transactor     domain.Transactor
	userRepo       domain.UserRepository
	workspaceRepo  domain.WorkspaceRepository
	contactRepo    domain.ContactRepository
	tagRepo        domain.TagRepository
	segmentRepo    domain.SegmentRepository
	campaignRepo   domain.CampaignRepository
	pipelineRepo   domain.PipelineRepository
	automationRepo domain.AutomationRepository
	healthRepo     domain.HealthRepository

	// Services
	credentialService *service.CredentialService
	authService       *service.AuthService
	userService       *service.UserService
	workspaceService  *service.WorkspaceService
	contactService    *service.ContactService
	tagService        *service.TagService
	segmentService    *service.SegmentService
	campaignService   *service.CampaignService
	pipelineService   *service.PipelineService
	automationService *service.AutomationService
	adminService      *service.AdminService
	healthService     *service.HealthService

	// HTTP handlers
	mux    *http.ServeMux
	server *http.Server

	// Server synchronization
	serverMu      sync.RWMutex
	serverStarted chan struct{}

	// Graceful shutdown management
	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	activeRequests  int64          // atomic counter for active HTTP requests
	requestWg       sync.WaitGroup // wait group for active requests
	shutdownTimeout time.Duration
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database. Schema initialisation is skipped.
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
		a.skipSchemaInit = true
	}
}

// WithMockMailer configures the app to use a mock mailer
func WithMockMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	level := cfg.LogLevel
	if cfg.IsDevelopment() {
		level = "debug"
	}

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(level),
		mux:             http.NewServeMux(),
		serverStarted:   make(chan struct{}),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitTracing initializes OpenCensus tracing
func (a *App) InitTracing() error {
	tracingConfig := &a.config.Tracing

	if err := tracing.InitTracing(tracingConfig, a.logger); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if tracingConfig.Enabled {
		a.logger.WithField("trace_exporter", tracingConfig.TraceExporter).
			WithField("metrics_exporter", tracingConfig.MetricsExporter).
			WithField("sampling_rate", tracingConfig.SamplingProbability).
			Info("Tracing initialized successfully")
	}

	return nil
}

// InitDB opens the connection handle and creates the schema. A missing
// DATABASE_URL is not an error: the API starts and database routes answer 503.
// An unreachable server at startup is logged and schema creation is skipped.
func (a *App) InitDB() error {
	if a.db != nil {
		return nil
	}

	if !a.config.Database.IsConfigured() {
		a.logger.Warn("DATABASE_URL is not set, database routes will answer 503")
		return nil
	}

	db, err := database.Open(&a.config.Database, &a.config.Tracing)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if a.config.Tracing.Enabled {
		a.logger.Info("Database driver wrapped with OpenCensus tracing")
	}

	ctx := context.Background()
	if err := database.Ping(ctx, db, startupPingTimeout); err != nil {
		a.logger.WithField("error", err.Error()).Warn("Database unreachable at startup, skipping schema initialization")
		a.db = db
		a.skipSchemaInit = true
		return nil
	}

	if err := database.InitializeDatabase(ctx, db, a.config.Database.AdminEmail); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	a.logger.Info("Database schema initialized")
	a.db = db
	return nil
}

// InitMailer selects the notification provider from configuration
func (a *App) InitMailer() error {
	// Skip if mailer already set (e.g., by mock)
	if a.mailer != nil {
		return nil
	}

	httpClient := tracing.WrapHTTPClient(&http.Client{Timeout: 15 * time.Second})
	a.mailer = mailer.NewFromConfig(a.config.Email, httpClient, a.logger)
	a.logger.WithField("provider", a.mailer.Provider()).Info("Mailer initialized")

	return nil
}

// InitRepositories initializes all repositories. They are built even without
// a database; the database guard keeps requests from reaching them.
func (a *App) InitRepositories() error {
	a.transactor = repository.NewTransactor(a.db)
	a.userRepo = repository.NewUserRepository(a.db)
	a.workspaceRepo = repository.NewWorkspaceRepository(a.db)
	a.contactRepo = repository.NewContactRepository(a.db)
	a.tagRepo = repository.NewTagRepository(a.db)
	a.segmentRepo = repository.NewSegmentRepository(a.db)
	a.campaignRepo = repository.NewCampaignRepository(a.db)
	a.pipelineRepo = repository.NewPipelineRepository(a.db)
	a.automationRepo = repository.NewAutomationRepository(a.db)
	if a.db != nil {
		a.healthRepo = repository.NewHealthRepository(a.db)
	}

	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	if a.mailer == nil {
		return fmt.Errorf("mailer must be initialized before services")
	}

	credentialService, err := service.NewCredentialService(service.CredentialServiceConfig{
		JWTSecret:   a.config.Security.JWTSecret,
		TokenExpiry: a.config.Security.JWTExpiry,
	})
	if err != nil {
		return fmt.Errorf("failed to create credential service: %w", err)
	}
	a.credentialService = credentialService

	a.authService = service.NewAuthService(service.AuthServiceConfig{
		UserRepository:      a.userRepo,
		WorkspaceRepository: a.workspaceRepo,
		Logger:              a.logger,
	})

	welcomeNotifier := service.NewWelcomeNotifier(a.mailer, a.config.AppURL, a.config.MarketingURL, a.logger)

	a.userService = service.NewUserService(service.UserServiceConfig{
		Transactor:          a.transactor,
		UserRepository:      a.userRepo,
		WorkspaceRepository: a.workspaceRepo,
		Credentials:         a.credentialService,
		WelcomeNotifier:     welcomeNotifier,
		Logger:              a.logger,
	})

	a.workspaceService = service.NewWorkspaceService(a.workspaceRepo, a.authService, a.logger)

	a.contactService = service.NewContactService(service.ContactServiceConfig{
		Transactor:        a.transactor,
		ContactRepository: a.contactRepo,
		TagRepository:     a.tagRepo,
		AuthService:       a.authService,
		Logger:            a.logger,
	})

	a.tagService = service.NewTagService(a.tagRepo, a.authService, a.logger)
	a.segmentService = service.NewSegmentService(a.segmentRepo, a.authService, a.logger)

	a.campaignService = service.NewCampaignService(service.CampaignServiceConfig{
		Transactor:         a.transactor,
		CampaignRepository: a.campaignRepo,
		SegmentRepository:  a.segmentRepo,
		AuthService:        a.authService,
		Logger:             a.logger,
	})

	a.pipelineService = service.NewPipelineService(a.transactor, a.pipelineRepo, a.authService, a.logger)
	a.automationService = service.NewAutomationService(a.transactor, a.automationRepo, a.authService, a.logger)

	a.adminService = service.NewAdminService(service.AdminServiceConfig{
		Transactor:          a.transactor,
		UserRepository:      a.userRepo,
		WorkspaceRepository: a.workspaceRepo,
		AuthService:         a.authService,
		Credentials:         a.credentialService,
		Logger:              a.logger,
	})

	a.healthService = service.NewHealthService(a.healthRepo, a.db != nil, a.logger)

	if a.limiter == nil {
		a.limiter = ratelimiter.NewRateLimiter()
	}
	a.limiter.SetPolicy(httpHandler.AuthRateLimitNamespace, a.config.RateLimit.AuthPerMinute, time.Minute)

	return nil
}

// InitHandlers registers every route. Routes under /api/ sit behind the
// database guard except the health check, which must report a missing configuration.
func (a *App) InitHandlers() error {
	// Create a new ServeMux to avoid route conflicts on restart
	a.mux = http.NewServeMux()
	api := http.NewServeMux()

	auth := middleware.NewAuthMiddleware(a.credentialService)

	authHandler := httpHandler.NewAuthHandler(a.userService, auth, a.limiter, a.config.RateLimit.TrustProxyHeaders, a.logger)
	workspaceHandler := httpHandler.NewWorkspaceHandler(a.workspaceService, auth, a.logger)
	contactHandler := httpHandler.NewContactHandler(a.contactService, auth, a.logger)
	tagHandler := httpHandler.NewTagHandler(a.tagService, auth, a.logger)
	segmentHandler := httpHandler.NewSegmentHandler(a.segmentService, auth, a.logger)
	campaignHandler := httpHandler.NewCampaignHandler(a.campaignService, auth, a.logger)
	pipelineHandler := httpHandler.NewPipelineHandler(a.pipelineService, auth, a.logger)
	automationHandler := httpHandler.NewAutomationHandler(a.automationService, auth, a.logger)
	adminHandler := httpHandler.NewAdminHandler(a.adminService, auth, a.logger)
	healthHandler := httpHandler.NewHealthHandler(a.healthService)

	authHandler.RegisterRoutes(api)
	workspaceHandler.RegisterRoutes(api)
	contactHandler.RegisterRoutes(api)
	tagHandler.RegisterRoutes(api)
	segmentHandler.RegisterRoutes(api)
	campaignHandler.RegisterRoutes(api)
	pipelineHandler.RegisterRoutes(api)
	automationHandler.RegisterRoutes(api)
	adminHandler.RegisterRoutes(api)

	a.mux.Handle("/api/", middleware.RequireDatabase(a.db != nil)(api))
	healthHandler.RegisterRoutes(a.mux)

	return nil
}

// Handler returns the mux wrapped with the server-wide middleware
func (a *App) Handler() http.Handler {
	var handler http.Handler = a.mux

	// Apply graceful shutdown middleware first (innermost of the wrappers below)
	handler = a.gracefulShutdownMiddleware(handler)

	if a.config.Tracing.Enabled {
		handler = middleware.TracingMiddleware(handler)
	}

	return middleware.CORSMiddleware(a.config.Server.CORSAllowOrigin)(handler)
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).
		WithField("environment", a.config.Environment).
		Info(fmt.Sprintf("Server starting on %s", addr))

	// Create a fresh notification channel and update the server
	a.serverMu.Lock()
	if a.serverStarted != nil {
		select {
		case <-a.serverStarted:
		default:
			close(a.serverStarted)
		}
	}
	a.serverStarted = make(chan struct{})

	a.server = &http.Server{
		Addr:              addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Get a reference to the channel before unlocking
	serverStarted := a.serverStarted
	server := a.server
	a.serverMu.Unlock()

	// Signal that the server has been created and is about to start
	close(serverStarted)

	return server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	// Signal shutdown to all components
	a.shutdownCancel()

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	if server == nil {
		a.logger.Info("No server to shutdown")
		return a.cleanupResources(ctx)
	}

	a.logger.WithField("active_requests", a.getActiveRequestCount()).Info("Active requests at shutdown start")

	shutdownTimeout := a.shutdownTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < shutdownTimeout {
			shutdownTimeout = remaining
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	shutdownErr := server.Shutdown(shutdownCtx)
	if shutdownErr == nil {
		done := make(chan struct{})
		go func() {
			a.requestWg.Wait()
			close(done)
		}()

		select {
		case <-done:
			a.logger.Info("All requests completed")
		case <-shutdownCtx.Done():
			a.logger.WithField("active_requests", a.getActiveRequestCount()).Warn("Shutdown timeout reached, forcing shutdown")
		}
	}

	if cleanupErr := a.cleanupResources(ctx); cleanupErr != nil {
		a.logger.WithField("error", cleanupErr.Error()).Error("Error during resource cleanup")
		if shutdownErr == nil {
			shutdownErr = cleanupErr
		}
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr.Error()).Error("Graceful shutdown completed with errors")
	} else {
		a.logger.Info("Graceful shutdown completed successfully")
	}

	return shutdownErr
}

// cleanupResources waits for detached welcome sends, stops the limiter and closes the database handle
func (a *App) cleanupResources(ctx context.Context) error {
	if a.userService != nil {
		if err := a.userService.WaitForBackground(ctx); err != nil {
			a.logger.WithField("error", err.Error()).Warn("Welcome emails still in flight at shutdown")
		}
	}

	if a.limiter != nil {
		a.limiter.Stop()
	}

	if a.db != nil {
		if a.config.Tracing.Enabled {
			if err := ocsql.RecordStats(a.db, 5*time.Second); err != nil {
				a.logger.WithField("error", err.Error()).Error("Failed to record final database stats for tracing")
			}
		}

		a.logger.Info("Closing database connection")
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}

// IsServerCreated safely checks if the server has been created
func (a *App) IsServerCreated() bool {
	a.serverMu.RLock()
	defer a.serverMu.RUnlock()
	return a.server != nil
}

// WaitForServerStart waits for the server to be created.
// Returns true if the server started, false if the context expired first.
func (a *App) WaitForServerStart(ctx context.Context) bool {
	a.serverMu.RLock()
	started := a.serverStarted
	a.serverMu.RUnlock()

	select {
	case <-started:
		return a.IsServerCreated()
	case <-ctx.Done():
		return false
	}
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting Sagestone API")

	if err := a.InitTracing(); err != nil {
		return err
	}

	if err := a.InitDB(); err != nil {
		return err
	}

	if err := a.InitMailer(); err != nil {
		return err
	}

	if err := a.InitRepositories(); err != nil {
		return err
	}

	if err := a.InitServices(); err != nil {
		return err
	}

	if err := a.InitHandlers(); err != nil {
		return err
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the app's HTTP multiplexer
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the app's database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}

// GetMailer returns the app's mailer
func (a *App) GetMailer() mailer.Mailer {
	return a.mailer
}

func (a *App) incrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, 1)
	a.requestWg.Add(1)
}

func (a *App) decrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, -1)
	a.requestWg.Done()
}

func (a *App) getActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

// GetActiveRequestCount returns the current number of active requests
func (a *App) GetActiveRequestCount() int64 {
	return a.getActiveRequestCount()
}

// SetShutdownTimeout sets the timeout for graceful shutdown
func (a *App) SetShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
}

// GetShutdownContext returns the context cancelled when shutdown starts
func (a *App) GetShutdownContext() context.Context {
	return a.shutdownCtx
}

func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// gracefulShutdownMiddleware tracks active requests and refuses new ones once shutdown starts
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			httpHandler.WriteJSONError(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}

		a.incrementActiveRequests()
		defer a.decrementActiveRequests()

		next.ServeHTTP(w, r)
	})
}

// Ensure App implements AppInterface
var _ AppInterface = (*App)(nil)
