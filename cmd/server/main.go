package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"masterboxer.com/social-network/config"
	"masterboxer.com/social-network/database"
	"masterboxer.com/social-network/events"
	"masterboxer.com/social-network/logging"
	"masterboxer.com/social-network/middleware"
	"masterboxer.com/social-network/routes"
	"masterboxer.com/social-network/services"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Server: config: %v", err)
	}

	logger, err := logging.New(cfg.LogDebug)
	if err != nil {
		log.Fatalf("Server: logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		zap.S().Fatalf("Server: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Server) error {
	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	var pub events.Publisher = &events.NoopPublisher{}
	if cfg.NATSURL != "" {
		natsPub, err := events.NewNATSPublisher(cfg.NATSURL)
		if err != nil {
			return err
		}
		pub = natsPub
		zap.S().Infof("[NATS] publishing events to %s", cfg.NATSURL)
	}
	defer pub.Close()

	var pusher services.Pusher = services.NoopPusher{}
	if cfg.FirebasePath != "" {
		fcm, err := services.NewFCMPusher(ctx, cfg.FirebasePath)
		if err != nil {
			zap.S().Warnf("[FCM] init failed, push disabled: %v", err)
		} else {
			pusher = fcm
		}
	}
	notifier := services.NewNotifier(db, pusher)

	auth := middleware.NewAuth(cfg.JWTSecret, cfg.TokenTTL)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           routes.NewRouter(db, auth, pub, notifier),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.S().Infof("Server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		zap.S().Info("Server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
