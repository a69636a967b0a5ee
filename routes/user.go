package routes

import (
	"database/sql"

	"github.com/gorilla/mux"

	"masterboxer.com/social-network/handlers"
	"masterboxer.com/social-network/middleware"
)

// CreatePublicUserRoutes registers the routes reachable without a token.
func CreatePublicUserRoutes(db *sql.DB, auth *middleware.Auth, router *mux.Router) *mux.Router {
	router.HandleFunc("/users", handlers.CreateUser(db)).Methods("POST")
	router.HandleFunc("/login", handlers.Login(db, auth)).Methods("POST")

	return router
}

func CreateUserRoutes(db *sql.DB, router *mux.Router) *mux.Router {
	router.HandleFunc("/users/{id}", handlers.GetUserById(db)).Methods("GET")
	router.HandleFunc("/users/{user_id}/fcm-token", handlers.RegisterFCMToken(db)).Methods("POST")

	router.HandleFunc("/users/{user_id}/follow", handlers.FollowUser(db)).Methods("POST")
	router.HandleFunc("/users/{user_id}/following/{following_id}", handlers.UnfollowUser(db)).Methods("DELETE")
	router.HandleFunc("/users/{user_id}/following", handlers.GetUserFollowing(db)).Methods("GET")
	router.HandleFunc("/users/{user_id}/followers", handlers.GetUserFollowers(db)).Methods("GET")

	return router
}
