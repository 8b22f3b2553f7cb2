package main

import (
	"context"
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

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/sigma-tutor/docs"
	"github.com/sbilibin2017/sigma-tutor/internal/handlers"
	"github.com/sbilibin2017/sigma-tutor/internal/jwt"
	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/repositories"
	"github.com/sbilibin2017/sigma-tutor/internal/services"
	"github.com/sbilibin2017/sigma-tutor/internal/sessions"
	"github.com/sbilibin2017/sigma-tutor/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Session store kinds.
const (
	sessionStoreRedis  = "redis"
	sessionStoreMemory = "memory"
)

// config is the application configuration read from the environment.
type config struct {
	AppHost     string
	AppPort     string
	AppEnv      string
	LogLevel    string
	LogEncoding string

	DBDriver       string
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	SQLitePath     string
	DBMaxOpenConns int
	DBMaxIdleConns int

	SessionStore       string
	SessionCookieName  string
	SessionTTL         time.Duration
	SessionRememberTTL time.Duration
	SecretKey          string

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string
}

// @title sigma-tutor API
// @version 1.0.0
// @description Adaptive tutoring backend: users, skills, learning progress and question logs
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
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

// parseConfig loads environment variables from a file and returns the application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.AppEnv = getEnv("APP_ENV", "development")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogEncoding = getEnv("APP_LOG_ENCODING", "json")

	// Database config
	cfg.DBDriver = getEnv("DB_DRIVER", storage.DriverPostgres)
	if cfg.DBDriver != storage.DriverPostgres && cfg.DBDriver != storage.DriverSQLite {
		return cfg, fmt.Errorf("DB_DRIVER: unsupported driver %q", cfg.DBDriver)
	}
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	cfg.SQLitePath = getEnv("SQLITE_PATH", "sigma.db")
	if cfg.DBMaxOpenConns, err = getInt("DB_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.DBMaxIdleConns, err = getInt("DB_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Session config
	cfg.SessionStore = getEnv("SESSION_STORE", sessionStoreRedis)
	if cfg.SessionStore != sessionStoreRedis && cfg.SessionStore != sessionStoreMemory {
		return cfg, fmt.Errorf("SESSION_STORE: unsupported store %q", cfg.SessionStore)
	}
	cfg.SessionCookieName = getEnv("SESSION_COOKIE_NAME", jwt.DefaultCookieName)
	ttl, err := getInt("SESSION_TTL_SECOND", "86400")
	if err != nil {
		return
	}
	cfg.SessionTTL = time.Duration(ttl) * time.Second
	rememberTTL, err := getInt("SESSION_REMEMBER_TTL_SECOND", "2592000")
	if err != nil {
		return
	}
	cfg.SessionRememberTTL = time.Duration(rememberTTL) * time.Second
	cfg.SecretKey = getEnv("SECRET_KEY", "my_super_secret_key")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "question-logs")

	return cfg, nil
}

// dbOptions returns the connection options of the configured driver.
func (c config) dbOptions() storage.Options {
	opts := storage.Options{
		Driver:       c.DBDriver,
		MaxOpenConns: c.DBMaxOpenConns,
		MaxIdleConns: c.DBMaxIdleConns,
	}
	if c.DBDriver == storage.DriverSQLite {
		opts.DSN = "file:" + c.SQLitePath
	} else {
		opts.DSN = storage.PostgresDSN(c.PGHost, c.PGPort, c.PGUser, c.PGPassword, c.PGDB)
	}
	return opts
}

// run initializes the logger, database, session store, Kafka writer, and HTTP server.
// It sets up routes and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to the database and create the schema
	log.Infow("Connecting to database", "driver", cfg.DBDriver)
	db, err := storage.Open(ctx, cfg.dbOptions())
	if err != nil {
		return err
	}
	defer db.Close()
	if err := storage.Migrate(ctx, db); err != nil {
		return err
	}

	// Session store
	var store sessions.Store
	if cfg.SessionStore == sessionStoreRedis {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		store = repositories.NewSessionRedisRepository(rdb)
	} else {
		log.Warn("Using in-memory session store, sessions are lost on restart")
		store = repositories.NewSessionMemoryRepository()
	}

	// Kafka writer for question log events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		log.Infow("Publishing question logs to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Sessions
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.SecretKey),
		jwt.WithExpiration(cfg.SessionTTL),
		jwt.WithCookieName(cfg.SessionCookieName),
	)
	sm := sessions.NewManager(store, tokens, sessions.Config{
		CookieName:  cfg.SessionCookieName,
		Secure:      cfg.AppEnv == "production",
		TTL:         cfg.SessionTTL,
		RememberTTL: cfg.SessionRememberTTL,
	})

	// Initialize repositories
	tx := repositories.NewTransactor(db)
	userRepo := repositories.NewUserRepository(db, repositories.TxFromContext)
	skillRepo := repositories.NewSkillRepository(db, repositories.TxFromContext)
	progressRepo := repositories.NewProgressRepository(db, repositories.TxFromContext)
	logRepo := repositories.NewQuestionLogRepository(db, repositories.TxFromContext)

	renderer, err := handlers.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)

	// Setup router
	r := handlers.NewRouter(handlers.RouterConfig{
		DB:         db,
		Sessions:   sm,
		Auth:       services.NewAuthService(userRepo),
		Users:      services.NewUserService(userRepo, tx),
		Skills:     services.NewSkillService(skillRepo, tx),
		Progress:   services.NewProgressService(progressRepo, userRepo, skillRepo, tx),
		Logs:       services.NewQuestionLogService(logRepo, kafkaWriter),
		Renderer:   renderer,
		SwaggerURL: fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
