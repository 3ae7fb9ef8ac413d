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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-token-swap/docs"
	"github.com/sbilibin2017/gw-token-swap/internal/facades"
	"github.com/sbilibin2017/gw-token-swap/internal/handlers"
	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/metrics"
	"github.com/sbilibin2017/gw-token-swap/internal/middlewares"
	"github.com/sbilibin2017/gw-token-swap/internal/repositories"
	"github.com/sbilibin2017/gw-token-swap/internal/services"
	"github.com/sbilibin2017/gw-token-swap/internal/swap"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string
	LogFile  string

	PriceFeedURL     string
	PriceFeedTimeout time.Duration
	PriceFeedRetries int
	PriceFeedRPS     float64
	IconBaseURL      string

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	PriceCacheTTL     time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	SwapSubmitDelay  time.Duration
	RateLimitRPM     int
	RateLimitBurst   int
	TrustProxy       bool
	SumMaxIterativeN int64
}

// @title gw-token-swap API
// @version 1.0.0
// @description Token swap quoting, wallet balance rows and sum strategies
// @host localhost:8080
// @BasePath /
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
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
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
	cfg.LogFile = getEnv("APP_LOG_FILE", "")

	// Price feed config
	cfg.PriceFeedURL = getEnv("PRICE_FEED_URL", "https://interview.switcheo.com/prices.json")
	cfg.IconBaseURL = getEnv("ICON_BASE_URL", swap.DefaultIconBaseURL)
	timeoutSecond, err := getInt("PRICE_FEED_TIMEOUT_SECOND", "10")
	if err != nil {
		return
	}
	cfg.PriceFeedTimeout = time.Duration(timeoutSecond) * time.Second
	if cfg.PriceFeedRetries, err = getInt("PRICE_FEED_RETRIES", "3"); err != nil {
		return
	}
	if cfg.PriceFeedRPS, err = strconv.ParseFloat(getEnv("PRICE_FEED_RPS", "1"), 64); err != nil {
		err = fmt.Errorf("PRICE_FEED_RPS: %w", err)
		return
	}

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
	ttlSecond, err := getInt("PRICE_CACHE_TTL_SECOND", "60")
	if err != nil {
		return
	}
	cfg.PriceCacheTTL = time.Duration(ttlSecond) * time.Second

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "swap-submissions")

	// Swap and limits config
	delayMs, err := getInt("SWAP_SUBMIT_DELAY_MS", "1500")
	if err != nil {
		return
	}
	cfg.SwapSubmitDelay = time.Duration(delayMs) * time.Millisecond
	if cfg.RateLimitRPM, err = getInt("RATE_LIMIT_RPM", "600"); err != nil {
		return
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", "50"); err != nil {
		return
	}
	if cfg.TrustProxy, err = strconv.ParseBool(getEnv("RATE_LIMIT_TRUST_PROXY", "false")); err != nil {
		err = fmt.Errorf("RATE_LIMIT_TRUST_PROXY: %w", err)
		return
	}
	if cfg.SumMaxIterativeN, err = strconv.ParseInt(getEnv("SUM_MAX_ITERATIVE_N", "100000000"), 10, 64); err != nil {
		err = fmt.Errorf("SUM_MAX_ITERATIVE_N: %w", err)
		return
	}

	return cfg, nil
}

// run initializes the logger, Redis, Kafka, the price feed and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	m := metrics.Default()

	// Connect to Redis; the service runs without a price cache when it is unreachable
	var priceCache services.PriceCacheReader
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			logger.Log.Warnw("Redis unavailable, running without price cache", "addr", rdb.Options().Addr, "error", err)
		} else {
			priceCache = repositories.NewPriceCacheRepository(rdb, cfg.PriceCacheTTL)
		}
	}

	// Kafka writer for swap submissions
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize facades and services
	feed := facades.NewPriceFeedHTTPFacade(
		&http.Client{Timeout: cfg.PriceFeedTimeout},
		cfg.PriceFeedURL,
		cfg.PriceFeedRetries,
		cfg.PriceFeedRPS,
	)
	priceService := services.NewPriceService(feed, priceCache, m)
	swapService := services.NewSwapService(priceService, kafkaWriter, cfg.SwapSubmitDelay, m)

	// Load prices in the background; handlers report loading until it resolves
	go func() {
		if err := priceService.Load(ctx); err != nil {
			logger.Log.Errorw("initial price load failed", "error", err)
		}
	}()

	limiter := middlewares.NewIPRateLimiter(cfg.RateLimitRPM, cfg.RateLimitBurst, 10*time.Minute)
	defer limiter.Stop()

	// Setup router
	r := chi.NewRouter()
	if cfg.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware(m))

	r.Get("/health", handlers.NewHealthHandler(priceService))
	r.Handle("/metrics", promhttp.Handler())

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RateLimitMiddleware(limiter))

		r.Get("/prices", handlers.NewPricesHandler(priceService, cfg.IconBaseURL))
		r.Post("/prices/refresh", handlers.NewRefreshPricesHandler(priceService, cfg.IconBaseURL))

		r.Post("/swap/sanitize", handlers.NewSanitizeHandler())
		r.Post("/swap/quote", handlers.NewQuoteHandler(swapService))
		r.Post("/swap", handlers.NewSwapHandler(swapService))
		r.Get("/ws/swap", handlers.NewSwapSessionHandler(priceService, swapService, swap.DefaultFeePct, m))

		r.Post("/wallet/balances", handlers.NewBalancesHandler(priceService))
		r.Get("/sum/{n}", handlers.NewSumHandler(cfg.SumMaxIterativeN))
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
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
