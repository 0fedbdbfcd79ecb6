package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-book-library/internal/handlers"
	"github.com/sbilibin2017/gw-book-library/internal/jwt"
	"github.com/sbilibin2017/gw-book-library/internal/logger"
	"github.com/sbilibin2017/gw-book-library/internal/middlewares"
	"github.com/sbilibin2017/gw-book-library/internal/policy"
	"github.com/sbilibin2017/gw-book-library/internal/repositories"
	"github.com/sbilibin2017/gw-book-library/internal/services"
	"github.com/sbilibin2017/gw-book-library/internal/sessionstore"
	"github.com/sbilibin2017/gw-book-library/internal/views"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-book-library/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	SessionSecret    string
	SessionExpSecond int
	CookieSecure     bool

	AdminUsername string
	AdminPassword string

	KafkaBrokers []string
	KafkaTopic   string

	MaxImageBytes int64
}

// @title gw-book-library API
// @version 1.0.0
// @description Server-rendered book library with session login, per-user books and an admin role
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name library-session
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, session, admin and Kafka configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Session config
	cfg.SessionSecret = getEnv("SESSION_SECRET_KEY", "my_super_secret_key")
	if cfg.SessionExpSecond, err = getInt("SESSION_EXP_SECOND", "432000"); err != nil {
		return
	}
	if cfg.CookieSecure, err = strconv.ParseBool(getEnv("COOKIE_SECURE", "false")); err != nil {
		err = fmt.Errorf("COOKIE_SECURE: %w", err)
		return
	}

	// Admin bootstrap
	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "admin")

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "library-events")

	// Uploads
	if cfg.MaxImageBytes, err = strconv.ParseInt(getEnv("MAX_IMAGE_BYTES", "5242880"), 10, 64); err != nil {
		err = fmt.Errorf("MAX_IMAGE_BYTES: %w", err)
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}
	if err := repositories.Migrate(ctx, db); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Audit events are optional
	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			Async:                  true,
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		events = kw
		logger.Log.Infof("Publishing events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	lifetime := time.Duration(cfg.SessionExpSecond) * time.Second

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.SessionSecret), jwt.WithExpiration(lifetime))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	bookReadRepo := repositories.NewBookReadRepository(db, middlewares.GetTxFromContext)
	bookWriteRepo := repositories.NewBookWriteRepository(db, middlewares.GetTxFromContext)
	sessionRepo := repositories.NewSessionRepository(rdb)

	// Initialize services
	sessionService := services.NewSessionService(tokens, sessionRepo, lifetime)
	userService := services.NewUserService(userReadRepo, userWriteRepo, sessionService, events)
	authService := services.NewAuthService(userService, sessionService, events)
	profileService := services.NewProfileService(userService)
	bookService := services.NewBookService(bookReadRepo, bookWriteRepo, events)
	adminService := services.NewAdminService(userService, bookService)

	created, err := userService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("admin bootstrap failed: %w", err)
	}
	if created {
		logger.Log.Infow("admin account created", "username", cfg.AdminUsername)
	}

	// Browser session and pages
	store := sessionstore.New(cfg.SessionSecret, cfg.SessionExpSecond, cfg.CookieSecure)
	renderer, err := views.New()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	rs := handlers.NewResponder(renderer, store)

	// Initialize handlers
	homeHandler := handlers.NewHomeHandler(rs)
	notFoundHandler := handlers.NewNotFoundHandler(rs)
	registerPageHandler := handlers.NewRegisterPageHandler(rs)
	registerHandler := handlers.NewRegisterHandler(authService, rs)
	loginPageHandler := handlers.NewLoginPageHandler(rs)
	loginHandler := handlers.NewLoginHandler(authService, store, rs)
	logoutHandler := handlers.NewLogoutHandler(authService, store, rs)
	bookImageHandler := handlers.NewBookImageHandler(bookService)
	dashboardHandler := handlers.NewDashboardHandler(bookService, rs)
	addBookPageHandler := handlers.NewAddBookPageHandler(rs)
	addBookHandler := handlers.NewAddBookHandler(bookService, cfg.MaxImageBytes, rs)
	removeBookHandler := handlers.NewRemoveBookHandler(bookService, rs)
	profileHandler := handlers.NewProfileHandler(profileService, rs)
	editProfileHandler := handlers.NewEditProfileHandler(profileService, rs)
	deleteAccountHandler := handlers.NewDeleteAccountHandler(profileService, store, rs)
	adminHandlers := handlers.AdminHandlers{
		Dashboard:    handlers.NewAdminHandler(adminService, rs),
		EditUserPage: handlers.NewEditUserPageHandler(adminService, rs),
		EditUser:     handlers.NewEditUserHandler(adminService, rs),
		DeleteUser:   handlers.NewDeleteUserHandler(adminService, rs),
		EditBookPage: handlers.NewEditBookPageHandler(adminService, rs),
		EditBook:     handlers.NewEditBookHandler(adminService, cfg.MaxImageBytes, rs),
		DeleteBook:   handlers.NewDeleteBookHandler(adminService, rs),
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(sessionService, store))
		r.Use(middlewares.TxMiddleware(db))
		r.NotFound(notFoundHandler)

		// Public routes
		handlers.RegisterHomeHandler(r, homeHandler)
		handlers.RegisterRegisterHandlers(r, registerPageHandler, registerHandler)
		handlers.RegisterLoginHandlers(r, loginPageHandler, loginHandler)
		handlers.RegisterLogoutHandler(r, logoutHandler)
		handlers.RegisterBookImageHandler(r, bookImageHandler)

		// Signed-in routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAction(policy.ActionViewDashboard, store))
			handlers.RegisterDashboardHandler(r, dashboardHandler)
			handlers.RegisterAddBookHandlers(r, addBookPageHandler, addBookHandler)
			handlers.RegisterRemoveBookHandler(r, removeBookHandler)
			handlers.RegisterProfileHandlers(r, profileHandler, editProfileHandler, deleteAccountHandler)
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAction(policy.ActionAdminDashboard, store))
			handlers.RegisterAdminHandlers(r, adminHandlers)
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
