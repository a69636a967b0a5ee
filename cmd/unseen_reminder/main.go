package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"masterboxer.com/social-network/config"
	"masterboxer.com/social-network/database"
	"masterboxer.com/social-network/handlers"
	"masterboxer.com/social-network/logging"
	"masterboxer.com/social-network/services"
)

const minUnseenAge = 24 * time.Hour

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("UnseenReminder: config: %v", err)
	}
	if cfg.FirebasePath == "" {
		log.Fatal("FIREBASE_CREDENTIALS_PATH not set")
	}

	logger, err := logging.New(cfg.LogDebug)
	if err != nil {
		log.Fatalf("UnseenReminder: logger: %v", err)
	}
	defer logger.Sync()
	s := zap.S()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pusher, err := services.NewFCMPusher(ctx, cfg.FirebasePath)
	if err != nil {
		s.Fatalf("UnseenReminder: Firebase init failed: %v", err)
	}

	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		s.Fatalf("UnseenReminder: DB connection failed: %v", err)
	}
	defer db.Close()

	s.Info("Running unseen notification reminder job")
	stats, err := handlers.SendUnseenReminderNotifications(ctx, db, services.NewNotifier(db, pusher), minUnseenAge)
	if err != nil {
		s.Errorf("UnseenReminder: %v", err)
		return
	}
	s.Infof("Unseen reminder job finished: %d users, %d pushes", stats.Users, stats.Sent)
}
