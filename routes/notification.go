package routes

import (
	"database/sql"

	"github.com/gorilla/mux"

	"masterboxer.com/social-network/events"
	"masterboxer.com/social-network/handlers"
)

func CreateNotificationRoutes(db *sql.DB, pub events.Publisher, notifier handlers.UserNotifier, router *mux.Router) *mux.Router {
	router.HandleFunc("/notifications", handlers.CreateNotification(db, pub, notifier)).Methods("POST")
	router.HandleFunc("/notifications/{id}/seen", handlers.MarkNotificationSeen(db)).Methods("PUT")
	router.HandleFunc("/users/{user_id}/notifications", handlers.GetUserNotifications(db)).Methods("GET")

	return router
}
