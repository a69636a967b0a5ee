package routes

import (
	"database/sql"

	"github.com/gorilla/mux"

	"masterboxer.com/social-network/events"
	"masterboxer.com/social-network/handlers"
)

func CreatePostRoutes(db *sql.DB, pub events.Publisher, router *mux.Router) *mux.Router {
	router.HandleFunc("/posts", handlers.CreatePost(db)).Methods("POST")
	router.HandleFunc("/posts/user/{userId}", handlers.GetPostsByUser(db)).Methods("GET")
	router.HandleFunc("/posts/{id}", handlers.DeletePost(db)).Methods("DELETE")
	router.HandleFunc("/posts/{postId}/comments", handlers.CreateComment(db, pub)).Methods("POST")
	router.HandleFunc("/posts/{postId}/comments", handlers.GetPostComments(db)).Methods("GET")
	router.HandleFunc("/comments/{commentId}", handlers.UpdateComment(db, pub)).Methods("PUT")
	router.HandleFunc("/comments/{commentId}", handlers.DeleteComment(db, pub)).Methods("DELETE")

	return router
}
