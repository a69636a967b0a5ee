package routes

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"masterboxer.com/social-network/events"
	"masterboxer.com/social-network/handlers"
	"masterboxer.com/social-network/middleware"
)

// NewRouter wires every route. Everything except registration, login and
// the health check requires a bearer token.
func NewRouter(db *sql.DB, auth *middleware.Auth, pub events.Publisher, notifier handlers.UserNotifier) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	CreatePublicUserRoutes(db, auth, router)

	private := router.NewRoute().Subrouter()
	private.Use(auth.Require)
	CreateUserRoutes(db, private)
	CreatePostRoutes(db, pub, private)
	CreateNotificationRoutes(db, pub, notifier, private)

	return router
}
