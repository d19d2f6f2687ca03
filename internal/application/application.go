package application

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/streamvault/platform-service/internal/config"
	"github.com/streamvault/platform-service/internal/handler"
	"github.com/streamvault/platform-service/internal/router"
	"github.com/streamvault/platform-service/internal/service"
	"github.com/streamvault/platform-service/internal/store"
	"github.com/streamvault/platform-service/internal/token"
)

// API is the HTTP + WebSocket API application.
type API struct {
	cfg *config.Config
	srv *http.Server
	log *zap.Logger
}

// NewAPI creates the API application: validates config, seeds the store,
// builds services and the router.
func NewAPI(cfg *config.Config) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, _ := zap.NewProduction()
	if cfg.AppEnv == "development" {
		logger, _ = zap.NewDevelopment()
	}

	st := store.NewSeeded()
	issuer := token.NewIssuer(cfg.TokenSecret, cfg.TokenTTL)

	authSvc := service.NewAuthService(st, issuer, cfg, logger)
	userSvc := service.NewUserService(st, cfg, logger)
	mediaSvc := service.NewMediaService(st, cfg, logger)
	subSvc := service.NewSubscriptionService(st, cfg, logger)
	uploadSvc := service.NewUploadService(st, cfg, logger)
	streamSvc := service.NewStreamingService(st, cfg, logger)
	notifySvc := service.NewNotificationService(st, cfg, logger)
	hub := service.NewNotifyHub(notifySvc, logger)

	r := router.New(router.Handlers{
		Auth:          handler.NewAuthHandler(authSvc),
		User:          handler.NewUserHandler(userSvc),
		Media:         handler.NewMediaHandler(mediaSvc),
		Subscription:  handler.NewSubscriptionHandler(subSvc),
		Upload:        handler.NewUploadHandler(uploadSvc),
		Streaming:     handler.NewStreamingHandler(streamSvc),
		Notifications: handler.NewNotificationHandler(notifySvc),
		NotifyWS:      handler.NewNotifyWSHandler(hub, logger),
		Health:        handler.NewHealthHandler(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &API{cfg: cfg, srv: srv, log: logger}, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled; then shuts
// down gracefully.
func (a *API) Run(ctx context.Context) error {
	defer a.log.Sync()

	host := a.cfg.AppHost
	if host == "0.0.0.0" {
		host = "localhost"
	}
	base := "http://" + host + ":" + a.cfg.HTTPPort
	log.Printf("HTTP server listening on %s", a.srv.Addr)
	log.Printf("  Health:        %s/health", base)
	log.Printf("  Ready:         %s/ready", base)
	log.Printf("  Auth:          %s/auth", base)
	log.Printf("  Media:         %s/media", base)
	wsBase := a.cfg.WSBaseURL
	if wsBase == "" {
		wsBase = "ws://" + host + ":" + a.cfg.HTTPPort
	}
	log.Printf("  WebSocket:     %s", service.NotifyWSURL(wsBase, ":user_id"))

	go func() {
		if err := a.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
