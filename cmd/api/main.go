package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"enersite-backend/internal/auth"
	"enersite-backend/internal/cache"
	"enersite-backend/internal/config"
	"enersite-backend/internal/db"
	"enersite-backend/internal/handlers"
	"enersite-backend/internal/middleware"
	"enersite-backend/internal/notifications"
	"enersite-backend/internal/storage"
	"enersite-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected", slog.String("db", cfg.MongoDB))
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	redisCache, err := cache.Open(cfg.RedisURL, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Error("redis connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	switch {
	case redisCache != nil:
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisCache.Close()
		logger.Info("redis connected", slog.Duration("ttl", cfg.CacheTTL()))
		cacheStore = redisCache
	case cfg.CacheTTL() > 0:
		// Single-process fallback; writes from cmd/seed show up once entries expire.
		logger.Info("in-memory cache enabled", slog.Duration("ttl", cfg.CacheTTL()))
		cacheStore = cache.NewMemory()
	default:
		logger.Info("response cache disabled")
	}

	jwtManager := auth.NewManager(cfg.JWTSecret, cfg.AccessTTL(), cfg.RefreshTTL())
	if jwtManager == nil && cfg.AdminAPIKey == "" {
		logger.Warn("admin auth disabled: set JWT_SECRET or ADMIN_API_KEY")
	}

	var notifier handlers.ContactNotifier
	brevo := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox)
	if mailer := notifications.NewContactMailer(brevo, cfg.ContactNotifyEmail); mailer != nil {
		notifier = mailer
		logger.Info("contact notifications enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
	} else {
		logger.Info("contact notifications disabled")
	}

	val := validation.New()
	window := time.Duration(cfg.RateLimitWindowSec) * time.Second
	server := &handlers.Server{
		Cfg:            cfg,
		Store:          storage.NewMongoStorage(cols, val, cfg.Timezone),
		Val:            val,
		Log:            logger,
		Cache:          cacheStore,
		Notifier:       notifier,
		Auth:           jwtManager,
		ContactLimiter: middleware.NewRateLimiter(cfg.RateLimitContact, window),
		LoginLimiter:   middleware.NewRateLimiter(cfg.RateLimitContact, window),
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := middleware.NewMetrics(reg)
		r.Use(metrics.Middleware)
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	r.Get("/healthz", server.Healthz)
	r.Mount("/api", server.Routes())

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 8 * time.Second,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
	server.Wait()
	logger.Info("server stopped")
}
