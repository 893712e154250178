package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/johnbooks/admin-gateway/internal/audit"
	"github.com/johnbooks/admin-gateway/internal/backend"
	"github.com/johnbooks/admin-gateway/internal/config"
	"github.com/johnbooks/admin-gateway/internal/ebooks"
	"github.com/johnbooks/admin-gateway/internal/logger"
	"github.com/johnbooks/admin-gateway/internal/owners"
	"github.com/johnbooks/admin-gateway/internal/session"
	"github.com/johnbooks/admin-gateway/internal/settings"
	"github.com/johnbooks/admin-gateway/internal/web"
)

const (
	auditWorkers   = 2
	auditBatchSize = 5
	auditTimeout   = 500 * time.Millisecond
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New(false)
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}
	if cfg.Debug {
		log = logger.New(true)
	}

	api := backend.NewClient(cfg.BackendBaseURL, log)

	cookieStore := sessions.NewCookieStore(cfg.SessionKey)
	cookieStore.Options.HttpOnly = true
	cookieStore.Options.Secure = cfg.CookieSecure
	cookieStore.Options.SameSite = http.SameSiteLaxMode
	cookieStore.Options.Path = "/"

	flasher := web.NewFlasher(cookieStore, log)
	theme := web.NewThemeState()

	sessionStore := session.NewStore(api, flasher, log)
	settingsStore := settings.NewStore(api, settings.NewThemeCache(cfg.ThemeCachePath), theme, flasher, log)
	ownerStore := owners.NewStore(api, flasher, log)
	ebookStore := ebooks.NewStore(api, flasher, log)

	var producer audit.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = audit.NewKafkaProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	} else {
		producer = audit.NewConsoleProducer(log)
	}
	auditor := audit.NewManager(auditWorkers, auditBatchSize, auditTimeout, producer, log)
	auditor.Start(ctx)

	templates := web.NewTemplateCache(log)
	if err := templates.Load("web/templates"); err != nil {
		log.Fatal("failed to load templates", zap.Error(err))
	}

	handler := web.NewHandler(sessionStore, settingsStore, ownerStore, ebookStore,
		templates, flasher, theme, auditor, log)
	srv := web.NewServer(handler, flasher, cfg, log)

	// warm the theme before serving so the first page paints the platform value
	warmCtx, warmCancel := context.WithTimeout(ctx, 5*time.Second)
	settingsStore.FetchTheme(warmCtx)
	warmCancel()

	go func() {
		if err := srv.Run(ctx); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	auditor.Shutdown(shutdownCtx)

	log.Info("server gracefully stopped")
}
