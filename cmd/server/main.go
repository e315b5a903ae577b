package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tyma/backend/internal/config"
	"github.com/tyma/backend/internal/handler"
	"github.com/tyma/backend/internal/logging"
	"github.com/tyma/backend/internal/repository"
	"github.com/tyma/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	contactRepo := repository.NewPgContactRepository(pool)
	subscriberRepo := repository.NewPgSubscriberRepository(pool)
	zoneRepo := repository.NewPgZoneRepository(pool)
	officialRepo := repository.NewPgOfficialRepository(pool)
	contactService := service.NewContactService(contactRepo)
	newsletterService := service.NewNewsletterService(subscriberRepo)
	zoneService := service.NewZoneService(zoneRepo, officialRepo)
	officialService := service.NewOfficialService(officialRepo, zoneRepo)

	h := handler.New(pool, cfg.FrontendOrigin)
	contactHandler := handler.NewContactHandler(contactService, logger)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService, logger)
	zoneHandler := handler.NewZoneHandler(zoneService, logger)
	officialHandler := handler.NewOfficialHandler(officialService, logger)
	metrics := handler.NewMetrics()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	mux.HandleFunc("POST /api/contact/{$}", contactHandler.Submit)
	mux.HandleFunc("GET /api/contact/{$}", contactHandler.List)
	mux.HandleFunc("GET /api/contact/subjects/{$}", contactHandler.Subjects)
	mux.HandleFunc("PATCH /api/contact/{id}/responded/{$}", contactHandler.SetResponded)

	mux.HandleFunc("POST /api/newsletter/subscribe/{$}", newsletterHandler.Subscribe)
	mux.HandleFunc("POST /api/newsletter/unsubscribe/{$}", newsletterHandler.Unsubscribe)
	mux.HandleFunc("GET /api/newsletter/subscribers/{$}", newsletterHandler.Subscribers)

	mux.HandleFunc("POST /api/zones/{$}", zoneHandler.Create)
	mux.HandleFunc("GET /api/zones/{$}", zoneHandler.List)
	mux.HandleFunc("GET /api/zones/{slug}/{$}", zoneHandler.Get)
	mux.HandleFunc("PUT /api/zones/{slug}/{$}", zoneHandler.Update)
	mux.HandleFunc("DELETE /api/zones/{slug}/{$}", zoneHandler.Delete)

	mux.HandleFunc("POST /api/officials/{$}", officialHandler.Create)
	mux.HandleFunc("GET /api/officials/{$}", officialHandler.List)
	mux.HandleFunc("GET /api/officials/{official_id}/{$}", officialHandler.Get)
	mux.HandleFunc("PUT /api/officials/{official_id}/{$}", officialHandler.Update)
	mux.HandleFunc("DELETE /api/officials/{official_id}/{$}", officialHandler.Delete)

	// Metrics sit innermost so the matched route pattern is available
	// and CORS preflights stay uncounted.
	root := handler.RequestLogger(logger)(
		handler.SecurityHeaders(
			h.CORS(
				metrics.Middleware(mux))))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
