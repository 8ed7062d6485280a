package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/receptionist-backend/internal/adapter/postgres"
	appointmentrepo "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres/appointment"
	assistantrepo "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres/assistant"
	businessrepo "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres/business"
	contactrepo "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres/contact"
	tagrepo "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres/tag"
	tokenrepo "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres/user"
	voicerepo "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres/voice"
	"github.com/heartmarshall/receptionist-backend/internal/adapter/speech"
	"github.com/heartmarshall/receptionist-backend/internal/adapter/vapi"
	"github.com/heartmarshall/receptionist-backend/internal/auth"
	"github.com/heartmarshall/receptionist-backend/internal/config"
	"github.com/heartmarshall/receptionist-backend/internal/guard"
	appointmentsvc "github.com/heartmarshall/receptionist-backend/internal/service/appointment"
	assistantsvc "github.com/heartmarshall/receptionist-backend/internal/service/assistant"
	authsvc "github.com/heartmarshall/receptionist-backend/internal/service/auth"
	businesssvc "github.com/heartmarshall/receptionist-backend/internal/service/business"
	contactsvc "github.com/heartmarshall/receptionist-backend/internal/service/contact"
	tagsvc "github.com/heartmarshall/receptionist-backend/internal/service/tag"
	voicesvc "github.com/heartmarshall/receptionist-backend/internal/service/voice"
	webhooksvc "github.com/heartmarshall/receptionist-backend/internal/service/webhook"
	"github.com/heartmarshall/receptionist-backend/internal/transport/middleware"
	"github.com/heartmarshall/receptionist-backend/internal/transport/rest"
)

// Run is the backend entry point. It loads configuration, connects to the
// database, builds services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting backend",
		buildAttrs("backend"),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	backend, err := NewBackend(cfg, pool, logger)
	if err != nil {
		return err
	}
	defer backend.Close(cfg.Server.ShutdownTimeout)

	return serve(ctx, logger, cfg.Server, backend.Handler)
}

// Backend is the wired REST API with the background workers it owns.
type Backend struct {
	Handler http.Handler

	log     *slog.Logger
	syncer  *assistantsvc.Syncer
	limiter *middleware.RateLimiter
}

// NewBackend builds repositories, vendor clients, services and the HTTP
// handler on top of pool. Close must be called to stop the workers.
func NewBackend(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Backend, error) {
	// Keys
	privateKey, err := auth.ParsePrivateKeyBase64(cfg.Auth.PrivateKeyBase64)
	if err != nil {
		return nil, fmt.Errorf("auth private key: %w", err)
	}
	verifier, err := auth.NewVerifierFromBase64(cfg.Auth.PublicKeyBase64, cfg.Auth.Issuer)
	if err != nil {
		return nil, fmt.Errorf("auth public key: %w", err)
	}
	issuer := auth.NewIssuer(privateKey, cfg.Auth.Issuer, cfg.Auth.AccessTokenTTL, cfg.Auth.GuestTokenTTL)
	tx := postgres.NewTxManager(pool)

	// Repositories
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	businesses := businessrepo.New(pool)
	contacts := contactrepo.New(pool)
	tags := tagrepo.New(pool)
	appointments := appointmentrepo.New(pool)
	assistants := assistantrepo.New(pool)
	interactions := voicerepo.New(pool)

	// Vendors
	vapiClient := vapi.NewClient(cfg.VAPI, logger)
	speechClient := speech.NewClient(cfg.Speech, logger)
	if !vapiClient.Enabled() {
		logger.Warn("VAPI_API_KEY not set, assistant sync will fail fast")
	}
	if !speechClient.Enabled() {
		logger.Warn("ELEVENLABS_API_KEY not set, voice endpoints are disabled")
	}

	syncer, err := assistantsvc.NewSyncer(assistantsvc.SyncConfig{
		Workers:       cfg.VAPI.SyncWorkers,
		QueueSize:     cfg.VAPI.SyncQueueSize,
		MaxElapsed:    cfg.VAPI.SyncMaxElapsed,
		ServerURL:     cfg.VAPI.ServerURL,
		WebhookSecret: cfg.VAPI.WebhookSecret,
	}, assistants, vapiClient, logger)
	if err != nil {
		return nil, err
	}

	// Services
	authService := authsvc.NewService(logger, users, tokens, businesses, tx, issuer, cfg.Auth.RefreshTokenTTL, cfg.Auth.BcryptCost)
	businessService := businesssvc.NewService(logger, businesses)
	contactService := contactsvc.NewService(logger, contacts, tags, appointments, businesses, tx, contactsvc.DefaultConfig())
	tagService := tagsvc.NewService(logger, tags, businesses)
	appointmentService := appointmentsvc.NewService(logger, appointments, contacts, businesses, tx)
	assistantService := assistantsvc.NewService(logger, assistants, businesses, tx, syncer, assistantsvc.DefaultDefaults(cfg.Speech.DefaultVoiceID))
	webhookService := webhooksvc.NewService(logger, businesses, contacts, interactions, appointmentService)
	voiceService := voicesvc.NewService(logger, businesses, interactions, speechClient)

	// Transport
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Probe{Name: "database", Ping: pool.Ping},
		),
		Auth: rest.NewAuthHandler(authService, rest.CookieConfig{
			Domain: cfg.Auth.CookieDomain,
			Secure: cfg.Auth.CookieSecure,
		}, logger),
		Business:    rest.NewBusinessHandler(businessService, logger),
		Contact:     rest.NewContactHandler(contactService, cfg.Server.MaxUploadBytes, logger),
		Tag:         rest.NewTagHandler(tagService, logger),
		Appointment: rest.NewAppointmentHandler(appointmentService, logger),
		Assistant:   rest.NewAssistantHandler(assistantService, logger),
		Webhook:     rest.NewWebhookHandler(webhookService, logger),
		Voice:       rest.NewVoiceHandler(voiceService, cfg.Speech.MaxAudioBytes, logger),
	}
	routes := rest.Routes(handlers, rest.Limits{
		Limiter:          limiter,
		LoginPerMinute:   cfg.RateLimit.LoginPerMinute,
		GuestPerMinute:   cfg.RateLimit.GuestPerMinute,
		WebhookPerMinute: cfg.RateLimit.WebhookPerMinute,
	})

	mux := http.NewServeMux()
	guard.NewRegistry(verifier, cfg.VAPI.WebhookSecret).Mount(mux, routes, rest.GuardError(logger))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS),
	)(mux)

	return &Backend{Handler: handler, log: logger, syncer: syncer, limiter: limiter}, nil
}

// Close stops the rate limiter sweeper and drains the sync pool.
func (b *Backend) Close(timeout time.Duration) {
	b.limiter.Stop()
	if timeout <= 0 {
		timeout = shutdownGrace
	}
	if err := b.syncer.Close(timeout); err != nil {
		b.log.Warn("sync pool close", slog.String("error", err.Error()))
	}
}

// serve runs the HTTP server until ctx is cancelled, then drains it within
// the configured shutdown timeout.
func serve(ctx context.Context, logger *slog.Logger, cfg config.ServerConfig, handler http.Handler) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	grace := cfg.ShutdownTimeout
	if grace <= 0 {
		grace = shutdownGrace
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// shutdownGrace is the drain window used when no timeout is configured.
const shutdownGrace = 10 * time.Second
