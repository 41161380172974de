package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	appmodules "restable/app"
	coremodules "restable/core/app"
	"restable/core/config"
	"restable/core/database"
	"restable/core/logger"
	"restable/core/module"
	"restable/core/router"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
)

// App represents the application with chained initialization
type App struct {
	config *config.Config
	db     *database.Database
	router *router.Router
	logger logger.Logger

	// State
	running bool
	verbose bool
}

// New creates a new application instance
func New() *App {
	verbose := false
	for _, arg := range os.Args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
			break
		}
	}
	return &App{verbose: verbose}
}

// Start initializes and starts the application
func (app *App) Start() error {
	return app.
		loadEnvironment().
		initConfig().
		initLogger().
		initDatabase().
		initRouter().
		autoDiscoverModules().
		setupRoutes().
		displayServerInfo().
		run()
}

// loadEnvironment loads environment variables
func (app *App) loadEnvironment() *App {
	// a missing .env is fine, the environment may be set already
	_ = godotenv.Load()
	return app
}

func (app *App) initConfig() *App {
	app.config = config.NewConfig()
	return app
}

func (app *App) initLogger() *App {
	log, err := logger.NewLogger(logger.Config{
		Environment: app.config.Env,
		LogPath:     app.config.LogPath,
		Level:       app.config.LogLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	app.logger = log
	return app
}

// initDatabase initializes the database connection
func (app *App) initDatabase() *App {
	db, err := database.InitDB(app.config)
	if err != nil {
		app.logger.Error("Failed to initialize database", logger.String("error", err.Error()))
		panic(fmt.Sprintf("Database initialization failed: %v", err))
	}

	app.db = db

	if app.verbose {
		app.logger.Info("Database connected", logger.String("driver", app.config.DBDriver))
	}

	return app
}

// initRouter initializes the router with middleware
func (app *App) initRouter() *App {
	app.router = router.New()
	app.setupMiddleware()

	if app.verbose {
		app.logger.Info("Router and middleware initialized",
			logger.Bool("cors", app.config.CORSEnabled))
	}

	return app
}

func (app *App) setupMiddleware() {
	app.router.Wrap(handlers.RecoveryHandler(handlers.PrintRecoveryStack(app.verbose)))

	if app.config.CORSEnabled {
		app.router.Wrap(handlers.CORS(
			handlers.AllowedOrigins(app.config.CORSAllowedOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		))
	}

	app.router.Use(func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) error {
			start := time.Now()
			err := next(c)

			app.logger.Info("Request",
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Int("status", c.Writer.Status()),
				logger.Duration("duration", time.Since(start)),
				logger.String("ip", c.ClientIP()),
			)
			return err
		}
	})
}

// autoDiscoverModules registers core modules first, then app modules
func (app *App) autoDiscoverModules() *App {
	app.registerCoreModules()
	app.registerAppModules()

	return app
}

func (app *App) dependencies() module.Dependencies {
	return module.Dependencies{
		DB:     app.db.DB,
		Router: app.router.Group("/api"),
		Logger: app.logger,
		Config: app.config,
	}
}

// registerCoreModules registers the global search with the app's searchable models
func (app *App) registerCoreModules() {
	initializer := module.NewInitializer(app.logger)
	coreProvider := coremodules.NewCoreModules(appmodules.GetSearchRegistry())
	orchestrator := module.NewCoreOrchestrator(initializer, coreProvider)

	initialized, err := orchestrator.InitializeCoreModules(app.dependencies())
	if err != nil {
		app.logger.Error("Failed to initialize core modules", logger.String("error", err.Error()))
	}

	if app.verbose {
		app.logger.Info("Core modules registered", logger.Int("count", len(initialized)))
	}
}

func (app *App) registerAppModules() {
	initializer := module.NewInitializer(app.logger)
	orchestrator := module.NewAppOrchestrator(initializer, appmodules.NewAppModules())

	initialized, err := orchestrator.InitializeAppModules(app.dependencies())
	if err != nil {
		app.logger.Error("Failed to initialize app modules", logger.String("error", err.Error()))
	}

	if app.verbose {
		app.logger.Info("App modules initialized", logger.Int("initialized", len(initialized)))
	}
}

// setupRoutes sets up basic system routes
func (app *App) setupRoutes() *App {
	app.router.GET("/health", func(c *router.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"version": app.config.Version,
		})
	})

	app.router.NotFound(func(c *router.Context) error {
		return c.JSON(http.StatusNotFound, map[string]any{
			"error": "Not found",
		})
	})

	return app
}

// displayServerInfo shows server startup information
func (app *App) displayServerInfo() *App {
	port := app.config.ServerPort

	fmt.Printf("\n\033[1;32mRestable Ready!\033[0m\n\n")
	fmt.Printf("\033[36mServer URLs:\033[0m\n")
	fmt.Printf("  Local:   http://localhost%s\n", port)
	fmt.Printf("  Network: http://%s%s\n\n", app.getLocalIP(), port)

	return app
}

// getLocalIP gets the local network IP address
func (app *App) getLocalIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "localhost"
	}

	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}
	return "localhost"
}

// run starts the HTTP server
func (app *App) run() error {
	app.running = true
	port := app.config.ServerPort
	defer app.logger.Sync()

	if app.verbose {
		app.logger.Info("Server starting", logger.String("port", port))
	}

	err := app.router.Run(port)
	if err != nil {
		if strings.Contains(err.Error(), "bind: address already in use") {
			app.logger.Error("Server failed to start - Port already in use",
				logger.String("port", port),
				logger.String("error", err.Error()))
			return fmt.Errorf("port %s is already in use, change SERVER_PORT in your .env file", port)
		}
		app.logger.Error("Server failed to start",
			logger.String("error", err.Error()))
		return fmt.Errorf("server failed to start: %w", err)
	}
	return nil
}

func main() {
	app := New()

	if err := app.Start(); err != nil {
		fmt.Printf("\n\033[31mApplication failed to start:\033[0m\n%v\n\n", err)
		os.Exit(1)
	}
}
