package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/Sarah-okolo/Hireflow-server/internal/auth"
	"github.com/Sarah-okolo/Hireflow-server/internal/authz"
	"github.com/Sarah-okolo/Hireflow-server/internal/config"
	"github.com/Sarah-okolo/Hireflow-server/internal/handler"
	"github.com/Sarah-okolo/Hireflow-server/internal/middleware"
	"github.com/Sarah-okolo/Hireflow-server/internal/repository/postgres"
	"github.com/Sarah-okolo/Hireflow-server/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Identity resolver: shared-secret token issue/verify
	resolver, err := auth.NewHMACResolver(cfg.JWTSecret, logger)
	if err != nil {
		log.Fatalf("Failed to create token resolver: %v", err)
	}

	// Store pool: opened here, closed on shutdown. Startup aborts if the
	// store is unreachable.
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	logger.Info("database connected")

	// Repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	jobRepo := postgres.NewJobRepository(repoConfig)
	applicationRepo := postgres.NewApplicationRepository(repoConfig)

	// Authorization gate: remote policy oracle plus local ownership rules
	registry, err := authz.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load action registry: %v", err)
	}
	oracle := authz.NewPDPClient(cfg.PDPURL, cfg.PDPAPIKey, logger)
	gate := authz.NewGate(oracle, registry, logger)

	// Services
	authService := service.NewAuthService(userRepo, resolver, logger)
	candidateService := service.NewCandidateService(userRepo, gate, logger)
	recruiterService := service.NewRecruiterService(userRepo, gate, logger)
	companyService := service.NewCompanyService(userRepo, gate, logger)
	jobService := service.NewJobService(jobRepo, gate, logger)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, gate, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	candidateHandler := handler.NewCandidateHandler(candidateService, logger)
	recruiterHandler := handler.NewRecruiterHandler(recruiterService, logger)
	companyHandler := handler.NewCompanyHandler(companyService, logger)
	jobHandler := handler.NewJobHandler(jobService, logger)
	applicationHandler := handler.NewApplicationHandler(applicationService, logger)

	logger.Info("services initialized")

	authed := middleware.RequireAuth(resolver, logger)
	loginLimiter := middleware.NewLoginLimiter(10, time.Minute)

	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/auth/login", loginLimiter.Limit(logger, authHandler.Login))

	// Candidate routes
	mux.HandleFunc("GET /api/candidates/profile", authed(candidateHandler.GetProfile))
	mux.HandleFunc("PUT /api/candidates/profile", authed(candidateHandler.UpdateProfile))
	mux.HandleFunc("POST /api/candidates/create", authed(candidateHandler.Create))
	mux.HandleFunc("DELETE /api/candidates/{id}", authed(candidateHandler.Delete))

	// Recruiter routes
	mux.HandleFunc("POST /api/recruiters/create", authed(recruiterHandler.Create))
	mux.HandleFunc("GET /api/recruiters/{id}", authed(recruiterHandler.Get))
	mux.HandleFunc("DELETE /api/recruiters/{id}", authed(recruiterHandler.Delete))

	// Company routes
	mux.HandleFunc("GET /api/companies", authed(companyHandler.Get))
	mux.HandleFunc("DELETE /api/companies/{id}", authed(companyHandler.Delete))

	// Job routes
	mux.HandleFunc("POST /api/jobs/create", authed(jobHandler.Create))
	mux.HandleFunc("GET /api/jobs", authed(jobHandler.List))
	mux.HandleFunc("GET /api/jobs/{id}", authed(jobHandler.Get))
	mux.HandleFunc("DELETE /api/jobs/{id}", authed(jobHandler.Delete))

	// Application routes
	mux.HandleFunc("POST /api/applications/apply", authed(applicationHandler.Apply))
	mux.HandleFunc("GET /api/applications", authed(applicationHandler.List))
	mux.HandleFunc("POST /api/applications/{id}/shortlist", authed(applicationHandler.Shortlist))
	mux.HandleFunc("POST /api/applications/{id}/reject", authed(applicationHandler.Reject))
	mux.HandleFunc("POST /api/applications/{id}/approve", authed(applicationHandler.Approve))

	// Unmatched routes answer 404 with a plain-text body
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "route not found", http.StatusNotFound)
	})

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS -> Recovery -> Routes
	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}

	logger.Info("server stopped")
}
