package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	_ "github.com/sbilibin2017/vidly/docs"
	"github.com/sbilibin2017/vidly/internal/config"
	"github.com/sbilibin2017/vidly/internal/events"
	"github.com/sbilibin2017/vidly/internal/handlers"
	"github.com/sbilibin2017/vidly/internal/jwt"
	"github.com/sbilibin2017/vidly/internal/logger"
	"github.com/sbilibin2017/vidly/internal/middlewares"
	"github.com/sbilibin2017/vidly/internal/migrations"
	"github.com/sbilibin2017/vidly/internal/repositories"
	"github.com/sbilibin2017/vidly/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title vidly API
// @version 1.0.0
// @description Video rental service: genres, movies, customers, rentals and returns
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// app holds the connections and services shared by every route.
type app struct {
	db        *sqlx.DB
	rdb       *redis.Client
	publisher events.Publisher
	tokens    *jwt.JWT

	genres    *services.GenreService
	movies    *services.MovieService
	customers *services.CustomerService
	rentals   *services.RentalService
	auth      *services.AuthService
}

// newApp connects to PostgreSQL, Redis and the event broker, applies
// migrations and wires repositories into services.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Up(cfg.PostgresDSN()); err != nil {
		db.Close()
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		db.Close()
		rdb.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	publisher, err := events.New(cfg)
	if err != nil {
		db.Close()
		rdb.Close()
		return nil, err
	}

	a := &app{
		db:        db,
		rdb:       rdb,
		publisher: publisher,
		tokens:    jwt.New(jwt.WithSecretKey(cfg.JWT.SecretKey), jwt.WithExpiration(cfg.TokenTTL())),
	}

	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	genreReadRepo := repositories.NewGenreReadRepository(db)
	genreWriteRepo := repositories.NewGenreWriteRepository(db, txGetter)
	genreCache := repositories.NewGenreCacheRepository(rdb, cfg.CacheTTL())
	movieReadRepo := repositories.NewMovieReadRepository(db, txGetter)
	movieWriteRepo := repositories.NewMovieWriteRepository(db, txGetter)
	customerReadRepo := repositories.NewCustomerReadRepository(db, txGetter)
	customerWriteRepo := repositories.NewCustomerWriteRepository(db, txGetter)
	rentalReadRepo := repositories.NewRentalReadRepository(db, txGetter)
	rentalWriteRepo := repositories.NewRentalWriteRepository(db, txGetter)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)

	var eventPublisher services.EventPublisher
	if publisher != nil {
		eventPublisher = publisher
	}

	a.genres = services.NewGenreService(genreReadRepo, genreWriteRepo, genreCache,
		services.WithEvictDelay(cfg.EvictDelay()))
	a.movies = services.NewMovieService(movieReadRepo, movieWriteRepo, genreReadRepo, genreCache)
	a.customers = services.NewCustomerService(customerReadRepo, customerWriteRepo)
	a.rentals = services.NewRentalService(
		rentalReadRepo, rentalWriteRepo,
		customerReadRepo, movieReadRepo, movieWriteRepo,
		eventPublisher,
	)
	a.auth = services.NewAuthService(userReadRepo, userWriteRepo, a.tokens)

	if err := a.auth.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		a.Close()
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}

	return a, nil
}

// Close releases every connection held by the app.
func (a *app) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logger.Log.Errorw("failed to close event publisher", "err", err)
		}
	}
	if err := a.rdb.Close(); err != nil {
		logger.Log.Errorw("failed to close redis client", "err", err)
	}
	if err := a.db.Close(); err != nil {
		logger.Log.Errorw("failed to close postgres connection", "err", err)
	}
}

// router builds the HTTP routes.
func (a *app) router(cfg *config.Config) http.Handler {
	authMiddleware := middlewares.AuthMiddleware(a.tokens)
	adminMiddleware := middlewares.AdminMiddleware
	txMiddleware := middlewares.TxMiddleware(a.db)

	createRental := handlers.NewCreateRentalHandler(a.rentals)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		r.Route("/genres", func(r chi.Router) {
			r.Get("/", handlers.NewListGenresHandler(a.genres))
			r.Get("/{id}", handlers.NewGetGenreHandler(a.genres))
			r.With(authMiddleware).Post("/", handlers.NewCreateGenreHandler(a.genres))
			r.With(authMiddleware).Put("/{id}", handlers.NewUpdateGenreHandler(a.genres))
			r.With(authMiddleware, adminMiddleware).Delete("/{id}", handlers.NewDeleteGenreHandler(a.genres))
		})

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", handlers.NewListMoviesHandler(a.movies))
			r.Get("/{id}", handlers.NewGetMovieHandler(a.movies))
			r.With(authMiddleware).Post("/", handlers.NewCreateMovieHandler(a.movies))
			r.With(authMiddleware).Put("/{id}", handlers.NewUpdateMovieHandler(a.movies))
			r.With(authMiddleware, adminMiddleware).Delete("/{id}", handlers.NewDeleteMovieHandler(a.movies))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/", handlers.NewListCustomersHandler(a.customers))
			r.Get("/{id}", handlers.NewGetCustomerHandler(a.customers))
			r.Post("/", handlers.NewCreateCustomerHandler(a.customers))
			r.Put("/{id}", handlers.NewUpdateCustomerHandler(a.customers))
			r.With(adminMiddleware).Delete("/{id}", handlers.NewDeleteCustomerHandler(a.customers))
		})

		r.Route("/rentals", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/", handlers.NewListRentalsHandler(a.rentals))
			r.Get("/{id}", handlers.NewGetRentalHandler(a.rentals))
			r.With(txMiddleware).Post("/", createRental)
		})
		r.With(authMiddleware, txMiddleware).Post("/rental", createRental)
		r.With(authMiddleware, txMiddleware).Post("/returns", handlers.NewReturnHandler(a.rentals))

		r.Post("/users", handlers.NewRegisterHandler(a.auth))
		r.With(authMiddleware).Get("/users/me", handlers.NewMeHandler(a.auth))
		r.Post("/auth", handlers.NewLoginHandler(a.auth))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.HTTPAddr())),
	))

	return r
}

// run initializes the logger, storage, event publisher and HTTP server.
// It blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	a, err := newApp(ctx, cfg)
	if err != nil {
		logger.Log.Errorw("failed to initialize application", "err", err)
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           a.router(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
