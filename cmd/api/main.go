package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/invoicechaser/lead-api/internal/config"
	"github.com/invoicechaser/lead-api/internal/entity"
	"github.com/invoicechaser/lead-api/internal/infra/database"
	"github.com/invoicechaser/lead-api/internal/infra/http/handlers"
	"github.com/invoicechaser/lead-api/internal/infra/http/middleware"
	"github.com/invoicechaser/lead-api/internal/infra/logfile"
	"github.com/invoicechaser/lead-api/internal/infra/mail"
	"github.com/invoicechaser/lead-api/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()
	logger := newLogger(cfg)

	// 1. Field schema
	schema, ok := entity.ProfileSchema(cfg.LeadProfile)
	if !ok {
		log.Fatalf("unknown LEAD_PROFILE %q, available: %s",
			cfg.LeadProfile, strings.Join(entity.ProfileNames(), ", "))
	}
	if len(cfg.RequiredFields) > 0 {
		schema = schema.WithRequired(cfg.RequiredFields)
	}
	logger.Info("lead schema ready", "profile", schema.Profile, "required", schema.RequiredFields())

	// 2. Recorders (both optional, both best-effort)
	var recorders usecase.MultiRecorder
	if cfg.LogPath != "" {
		fileRec, err := logfile.New(cfg.LogPath)
		if err != nil {
			log.Fatal(err)
		}
		defer fileRec.Close()
		recorders = append(recorders, fileRec)
	}
	if cfg.DatabaseURL != "" {
		db, err := database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		recorders = append(recorders, database.NewLeadLogRepository(db))
	}
	var recorder usecase.Recorder
	if len(recorders) > 0 {
		recorder = recorders
	} else {
		logger.Info("lead recording disabled, set LOG_PATH or DATABASE_URL to enable")
	}

	// 3. Notifier
	var notifier usecase.Notifier
	if cfg.NotifyProvider == "smtp" {
		notifier = mail.NewSMTPSender(
			cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass,
			cfg.FromEmail, cfg.SupportEmail,
		)
	} else {
		notifier = mail.NewSendGridSender(cfg.SendGridAPIKey, cfg.FromEmail, cfg.SupportEmail)
	}

	missing := cfg.MissingNotify()
	if len(missing) > 0 {
		logger.Warn("notify configuration incomplete, submissions will fail",
			"missing", strings.Join(missing, ", "))
	}

	// 4. UseCase
	submitUC := usecase.NewSubmitLeadUseCase(schema, recorder, notifier, cfg.NotifyTimeout, logger)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(submitUC, missing, logger)
	healthHandler := handlers.NewHealthHandler()

	// 6. Router
	r := newRouter(cfg, leadHandler, healthHandler)

	addr := ":" + cfg.Port
	logger.Info("lead api listening", "addr", addr, "env", cfg.Env)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}


func newRouter(cfg *config.Config, leadHandler *handlers.LeadHandler, healthHandler *handlers.HealthHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		// let preflights fall through so OPTIONS /api/lead answers 204,
		// not the middleware's 200
		OptionsPassthrough: true,
	}))
	r.Use(middleware.Metrics)

	r.Get("/health", healthHandler.Handle)
	r.Post("/api/lead", leadHandler.Handle)
	r.Options("/api/lead", leadHandler.HandlePreflight)
	r.Handle("/metrics", promhttp.Handler())

	return r
}


// newLogger builds the process-wide slog logger: JSON in production, text
// locally.
func newLogger(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Env == "production" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
