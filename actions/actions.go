// Package actions turns user intents into remote calls and store updates.
//
// Every DB* method brackets its remote call with ShowTopLoading and
// HideTopLoading where it mutates remote state, reports failures through
// ShowErrorMessage and never returns them: the store is the only channel
// back to the caller.
package actions

import (
	"context"
	"time"

	"masterboxer.com/social-network/models"
	"masterboxer.com/social-network/store"
)

type CommentService interface {
	AddComment(ctx context.Context, comment models.Comment) (string, error)
	// GetComments calls onUpdate with the comments of postID, and again on
	// every later change if the implementation supports live updates.
	GetComments(ctx context.Context, postID string, onUpdate func(models.CommentsByPost)) error
	UpdateComment(ctx context.Context, comment models.Comment) error
	DeleteComment(ctx context.Context, id string) error
}

type NotificationService interface {
	AddNotification(ctx context.Context, n models.Notification) error
	GetNotifications(ctx context.Context, userID string) (map[string]models.Notification, error)
}

type CircleService interface {
	GetFollowing(ctx context.Context, userID string) (map[string]models.UserTie, error)
}

type PostService interface {
	GetPostsByUser(ctx context.Context, userID string) (map[string]*models.Post, error)
}

type UserService interface {
	GetUserInfo(ctx context.Context, userID string) (models.UserInfo, error)
}

type Services struct {
	Comments      CommentService
	Notifications NotificationService
	Circles       CircleService
	Posts         PostService
	Users         UserService
}

type Actions struct {
	store    *store.Store
	services Services
	now      func() time.Time
}

func New(s *store.Store, services Services) *Actions {
	return &Actions{store: s, services: services, now: time.Now}
}

func (a *Actions) uid() string {
	return a.store.GetState().Authorize.UID
}

// fail surfaces err and ends the loading indicator.
func (a *Actions) fail(err error) {
	a.store.Dispatch(ShowErrorMessage(err.Error()))
	a.store.Dispatch(HideTopLoading())
}
