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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/cast"

	"github.com/sbilibin2017/taxi-service/internal/forms"
	"github.com/sbilibin2017/taxi-service/internal/handlers"
	"github.com/sbilibin2017/taxi-service/internal/jwt"
	"github.com/sbilibin2017/taxi-service/internal/logger"
	"github.com/sbilibin2017/taxi-service/internal/middlewares"
	"github.com/sbilibin2017/taxi-service/internal/models"
	"github.com/sbilibin2017/taxi-service/internal/repositories"
	"github.com/sbilibin2017/taxi-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const serviceName = "taxi-service"

// config holds every setting read from the env file and environment.
type config struct {
	AppHost        string
	AppPort        string
	LogLevel       string
	LogEncoding    string
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int
	PGMigrations   bool

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	SessionSecretKey string
	SessionExpSecond int

	KafkaBrokers         []string
	KafkaAssignmentTopic string

	DriverDefaultPermissions []string

	// Staff account created at startup when AdminUsername is set.
	AdminUsername      string
	AdminPassword      string
	AdminLicenseNumber string
	AdminFirstName     string
	AdminLastName      string
}

// @title taxi-service API
// @version 1.0.0
// @description Taxi fleet management: manufacturers, cars, drivers and car assignment
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name sessionid
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file, environment
// values winning, and converts them into a config.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogEncoding = getEnv("APP_LOG_ENCODING", "json")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = cast.ToIntE(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_PORT: %w", err)
	}
	if cfg.PGMaxOpenConns, err = cast.ToIntE(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.PGMaxIdleConns, err = cast.ToIntE(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_MAX_IDLE_CONNS: %w", err)
	}
	if cfg.PGMigrations, err = cast.ToBoolE(getEnv("POSTGRES_MIGRATIONS", "true")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_MIGRATIONS: %w", err)
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = cast.ToIntE(getEnv("REDIS_PORT", "6379")); err != nil {
		return cfg, fmt.Errorf("REDIS_PORT: %w", err)
	}
	if cfg.RedisDB, err = cast.ToIntE(getEnv("REDIS_DB", "0")); err != nil {
		return cfg, fmt.Errorf("REDIS_DB: %w", err)
	}
	if cfg.RedisPoolSize, err = cast.ToIntE(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return cfg, fmt.Errorf("REDIS_POOL_SIZE: %w", err)
	}
	if cfg.RedisMinIdleConns, err = cast.ToIntE(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return cfg, fmt.Errorf("REDIS_MIN_IDLE_CONNS: %w", err)
	}

	// Session config
	cfg.SessionSecretKey = getEnv("SESSION_SECRET_KEY", "my_super_secret_key")
	if cfg.SessionExpSecond, err = cast.ToIntE(getEnv("SESSION_EXP_SECOND", "1209600")); err != nil {
		return cfg, fmt.Errorf("SESSION_EXP_SECOND: %w", err)
	}

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaAssignmentTopic = getEnv("KAFKA_ASSIGNMENT_TOPIC", "car-assignments")

	cfg.DriverDefaultPermissions = splitList(getEnv("DRIVER_DEFAULT_PERMISSIONS", models.PermAddManufacturer))

	// Bootstrap admin config
	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "")
	cfg.AdminLicenseNumber = getEnv("ADMIN_LICENSE_NUMBER", "")
	cfg.AdminFirstName = getEnv("ADMIN_FIRST_NAME", "")
	cfg.AdminLastName = getEnv("ADMIN_LAST_NAME", "")

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// adminCreator creates the staff account a fresh database starts with.
type adminCreator interface {
	EnsureAdmin(ctx context.Context, form forms.DriverCreationForm) (*models.Driver, bool, error)
}

// bootstrapAdmin makes sure the configured staff driver exists, so the
// first login is possible on an empty database. It does nothing without
// ADMIN_USERNAME.
func bootstrapAdmin(ctx context.Context, svc adminCreator, cfg config) error {
	if cfg.AdminUsername == "" {
		return nil
	}

	driver, created, err := svc.EnsureAdmin(ctx, forms.DriverCreationForm{
		Username:      cfg.AdminUsername,
		Password1:     cfg.AdminPassword,
		Password2:     cfg.AdminPassword,
		FirstName:     cfg.AdminFirstName,
		LastName:      cfg.AdminLastName,
		LicenseNumber: cfg.AdminLicenseNumber,
	})
	if err != nil {
		return fmt.Errorf("bootstrap admin %q: %w", cfg.AdminUsername, err)
	}

	if created {
		logger.Log.Infow("Admin driver created", "id", driver.ID, "username", driver.Username)
	} else {
		logger.Log.Infow("Admin driver already exists", "id", driver.ID, "username", driver.Username)
	}
	return nil
}

// routerDeps are the collaborators the HTTP router is assembled from.
type routerDeps struct {
	db            *sqlx.DB
	tokener       middlewares.Tokener
	authenticator middlewares.Authenticator
	loginer       handlers.Loginer
	logouter      handlers.Logouter
	index         handlers.IndexReader
	manufacturers handlers.ManufacturerManager
	cars          handlers.CarManager
	assigner      handlers.CarAssigner
	drivers       handlers.DriverManager
	registry      *prometheus.Registry
	sessionExp    time.Duration
	swaggerURL    string
}

// newRouter mounts every endpoint. The transaction middleware is applied
// only when a database is present.
func newRouter(d routerDeps) http.Handler {
	rnd := handlers.JSONRenderer{}
	metrics := middlewares.NewHTTPMetrics(d.registry, "taxi")

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(metrics.Middleware)

	// Public routes
	r.Get(models.LoginURL, handlers.NewFormHandler(rnd, handlers.LoginFields))
	r.Post(models.LoginURL, handlers.NewLoginHandler(d.loginer, rnd, d.sessionExp))
	r.Handle("/metrics", promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.swaggerURL)))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(d.tokener, d.authenticator))
		if d.db != nil {
			r.Use(middlewares.TxMiddleware(d.db))
		}

		r.Post(models.LogoutURL, handlers.NewLogoutHandler(d.logouter))
		r.Get(models.IndexURL, handlers.NewIndexHandler(d.index, rnd))

		r.Route("/manufacturers", func(r chi.Router) {
			r.Get("/", handlers.NewManufacturerListHandler(d.manufacturers, rnd))
			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequirePermission(models.PermAddManufacturer))
				r.Get("/create/", handlers.NewFormHandler(rnd, forms.ManufacturerForm{}.Fields()))
				r.Post("/create/", handlers.NewManufacturerCreateHandler(d.manufacturers, rnd))
			})
			r.Get("/{id}/update/", handlers.NewManufacturerGetHandler(d.manufacturers, rnd, true))
			r.Post("/{id}/update/", handlers.NewManufacturerUpdateHandler(d.manufacturers, rnd))
			r.Get("/{id}/delete/", handlers.NewManufacturerGetHandler(d.manufacturers, rnd, false))
			r.Post("/{id}/delete/", handlers.NewManufacturerDeleteHandler(d.manufacturers, rnd))
		})

		r.Route("/cars", func(r chi.Router) {
			r.Get("/", handlers.NewCarListHandler(d.cars, rnd))
			r.Get("/create/", handlers.NewFormHandler(rnd, forms.CarForm{}.Fields()))
			r.Post("/create/", handlers.NewCarCreateHandler(d.cars, rnd))
			r.Get("/{id}/", handlers.NewCarDetailHandler(d.cars, rnd, false))
			r.Get("/{id}/update/", handlers.NewCarDetailHandler(d.cars, rnd, true))
			r.Post("/{id}/update/", handlers.NewCarUpdateHandler(d.cars, rnd))
			r.Get("/{id}/delete/", handlers.NewCarDetailHandler(d.cars, rnd, false))
			r.Post("/{id}/delete/", handlers.NewCarDeleteHandler(d.cars, rnd))
			r.Post("/{id}/toggle-assign/", handlers.NewToggleAssignHandler(d.assigner, rnd))
		})

		r.Route("/drivers", func(r chi.Router) {
			r.Get("/", handlers.NewDriverListHandler(d.drivers, rnd))
			r.Get("/create/", handlers.NewFormHandler(rnd, forms.DriverCreationForm{}.Fields()))
			r.Post("/create/", handlers.NewDriverCreateHandler(d.drivers, rnd, (*models.Driver).AbsoluteURL))
			r.Get("/{id}/", handlers.NewDriverDetailHandler(d.drivers, rnd, nil))
			r.Get("/{id}/update/", handlers.NewDriverDetailHandler(d.drivers, rnd, forms.DriverLicenseUpdateForm{}.Fields()))
			r.Post("/{id}/update/", handlers.NewDriverLicenseUpdateHandler(d.drivers, rnd, models.DriverDetailURL))
			r.Get("/{id}/delete/", handlers.NewDriverDetailHandler(d.drivers, rnd, nil))
			r.Post("/{id}/delete/", handlers.NewDriverDeleteHandler(d.drivers, rnd))
		})

		r.Route("/admin/taxi/driver", func(r chi.Router) {
			r.Use(middlewares.RequireStaff)
			toList := func(*models.Driver) string { return models.AdminDriverListURL }
			r.Get("/", handlers.NewAdminDriverListHandler(d.drivers, rnd))
			r.Get("/add/", handlers.NewFormHandler(rnd, forms.DriverCreationForm{}.Fields()))
			r.Post("/add/", handlers.NewDriverCreateHandler(d.drivers, rnd, toList))
			r.Get("/{id}/change/", handlers.NewDriverDetailHandler(d.drivers, rnd, forms.DriverLicenseUpdateForm{}.Fields()))
			r.Post("/{id}/change/", handlers.NewDriverLicenseUpdateHandler(d.drivers, rnd, func(int64) string {
				return models.AdminDriverListURL
			}))
		})
	})

	return r
}

// newKafkaWriter returns nil when no brokers are configured.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding, serviceName); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

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

	if cfg.PGMigrations {
		if err := repositories.Migrate(dsn); err != nil {
			return err
		}
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

	// Kafka writer for assignment events
	var events services.KafkaWriter
	if w := newKafkaWriter(cfg.KafkaBrokers, cfg.KafkaAssignmentTopic); w != nil {
		events = w
		defer w.Close()
		log.Infof("Publishing assignment events to topic %s", cfg.KafkaAssignmentTopic)
	}

	sessionExp := time.Duration(cfg.SessionExpSecond) * time.Second
	tokens := jwt.New(jwt.WithSecretKey(cfg.SessionSecretKey), jwt.WithExpiration(sessionExp))

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	manufacturerRepo := repositories.NewManufacturerRepository(db, txGetter)
	carRepo := repositories.NewCarRepository(db, txGetter)
	driverRepo := repositories.NewDriverRepository(db, txGetter)
	assignmentRepo := repositories.NewAssignmentRepository(db, txGetter)
	sessionRepo := repositories.NewSessionRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(driverRepo, sessionRepo, tokens)
	manufacturerService := services.NewManufacturerService(manufacturerRepo)
	carService := services.NewCarService(carRepo, assignmentRepo)
	driverService := services.NewDriverService(driverRepo, assignmentRepo, cfg.DriverDefaultPermissions)
	assignmentService := services.NewAssignmentService(assignmentRepo, events)
	indexService := services.NewIndexService(driverRepo, carRepo, manufacturerRepo, sessionRepo, sessionExp)

	if err := bootstrapAdmin(ctx, driverService, cfg); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := newRouter(routerDeps{
		db:            db,
		tokener:       tokens,
		authenticator: authService,
		loginer:       authService,
		logouter:      authService,
		index:         indexService,
		manufacturers: manufacturerService,
		cars:          carService,
		assigner:      assignmentService,
		drivers:       driverService,
		registry:      registry,
		sessionExp:    sessionExp,
		swaggerURL:    fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
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
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
