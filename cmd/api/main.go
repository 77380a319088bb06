package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/omnihub/omnihub-api/internal/config"
	"github.com/omnihub/omnihub-api/internal/domain/account"
	"github.com/omnihub/omnihub-api/internal/domain/admin"
	"github.com/omnihub/omnihub-api/internal/domain/auth"
	"github.com/omnihub/omnihub-api/internal/domain/events"
	"github.com/omnihub/omnihub-api/internal/domain/gate"
	"github.com/omnihub/omnihub-api/internal/domain/ledger"
	"github.com/omnihub/omnihub-api/internal/domain/tools"
	"github.com/omnihub/omnihub-api/internal/domain/usage"
	"github.com/omnihub/omnihub-api/internal/middleware"
	"github.com/omnihub/omnihub-api/internal/pkg/database"
	"github.com/omnihub/omnihub-api/internal/pkg/eyecon"
	"github.com/omnihub/omnihub-api/internal/pkg/imaging"
	"github.com/omnihub/omnihub-api/internal/pkg/jwt"
	"github.com/omnihub/omnihub-api/internal/pkg/phonedb"
	"github.com/omnihub/omnihub-api/internal/pkg/storage"
	"github.com/omnihub/omnihub-api/internal/pkg/tamasha"
	"github.com/omnihub/omnihub-api/internal/pkg/tempmail"
	"github.com/omnihub/omnihub-api/internal/pkg/videometa"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	setupLogger(cfg)

	log.Info().Str("env", cfg.Env).Msg("Starting OmniHub API server")

	// Connect to PostgreSQL
	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer db.Close()
	log.Info().Msg("Connected to PostgreSQL")

	// Connect to Redis (optional: refresh token store and usage event fan-out)
	redisClient, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, refresh rotation and event fan-out degraded")
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Info().Msg("Connected to Redis")
	}

	// Initialize JWT service
	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	// Repositories
	accountRepo := account.NewRepository(db)
	ledgerRepo := ledger.NewRepository(db)
	usageRepo := usage.NewRepository(db)

	// Usage event hub (admin websocket feed)
	hub := events.NewHub(redisClient)
	go hub.Run()
	defer hub.Stop()

	// Credit gate: the single path every charged tool call goes through
	gateStore := gate.NewStore(db, accountRepo, ledgerRepo, usageRepo)
	gateService := gate.NewService(gateStore, accountRepo, hub, cfg.ToolTimeout, log.Logger)

	// Tool adapter clients
	phoneClient := phonedb.NewClient(cfg.PhoneLookupBaseURL, cfg.ToolTimeout)
	eyeconClient := eyecon.NewClient(cfg.EyeconBaseURL, eyecon.AuthHeaders{
		V: cfg.EyeconAuthV,
		A: cfg.EyeconAuth,
		C: cfg.EyeconAuthC,
		K: cfg.EyeconAuthK,
	}, cfg.ToolTimeout)
	mailClient := tempmail.NewClient(cfg.TempMailBaseURL, cfg.ToolTimeout)
	videoClient := videometa.NewClient(cfg.VideoMetaBaseURL, cfg.ToolTimeout)
	tamashaClient := tamasha.NewClient(cfg.TamashaBaseURL, cfg.TamashaAPIKey, cfg.ToolTimeout)
	enhancer := imaging.NewEnhancer(imaging.DefaultConfig())

	// Object storage for enhanced images (optional)
	var objectStore storage.Storage
	if cfg.S3AccessKey != "" {
		s3Store, err := storage.NewS3Storage(storage.Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			log.Warn().Err(err).Msg("S3 storage unavailable, enhanced images will not be persisted")
		} else {
			objectStore = s3Store
			log.Info().Str("bucket", cfg.S3Bucket).Msg("S3 storage initialized")
		}
	}

	// Services
	authService := auth.NewService(accountRepo, jwtService, redisClient)
	accountService := account.NewService(accountRepo, ledgerRepo, usageRepo)
	adminService := admin.NewService(accountRepo, gateStore, ledgerRepo, usageRepo)
	toolsService := tools.NewService(
		gateService,
		phoneClient,
		eyeconClient,
		mailClient,
		videoClient,
		tamashaClient,
		enhancer,
		objectStore,
		cfg.ToolTimeout,
	)

	// Seed the bootstrap admin account
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := admin.SeedAdmin(seedCtx, accountRepo, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin account")
	}
	if err := admin.SeedExtraAdmins(seedCtx, accountRepo, cfg.AdminExtraAccounts); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed extra admin accounts")
	}
	seedCancel()

	// Handlers
	authHandler := auth.NewHandler(authService)
	accountHandler := account.NewHandler(accountService)
	adminHandler := admin.NewHandler(adminService)
	toolsHandler := tools.NewHandler(toolsService)
	eventsHandler := events.NewHandler(hub, cfg.AllowedOrigins)

	// Auth middleware
	authMiddleware := middleware.Auth(jwtService)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	// WebSocket usage feed is mounted before Compress; compression breaks the
	// upgrade handshake. Browsers cannot set headers on WS requests, so a
	// token query parameter is promoted to the Authorization header.
	r.Group(func(ws chi.Router) {
		ws.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if token := r.URL.Query().Get("token"); token != "" && r.Header.Get("Authorization") == "" {
					r.Header.Set("Authorization", "Bearer "+token)
				}
				next.ServeHTTP(w, r)
			})
		})
		ws.Mount("/api/v1/events", eventsHandler.Routes(authMiddleware))
	})

	r.Use(chimiddleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("pong"))
		})

		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/account", accountHandler.Routes(authMiddleware))
		r.Mount("/admin", adminHandler.Routes(authMiddleware))
		r.Mount("/tools", toolsHandler.Routes(authMiddleware))
	})

	// Setup server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
