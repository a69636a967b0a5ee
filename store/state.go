package store

import "masterboxer.com/social-network/models"

// State is replaced, never mutated, by every dispatch. Values returned by
// GetState are shared with the store and must be treated as read-only.
type State struct {
	Authorize AuthorizeState
	User      UserState
	Comment   CommentState
	Post      PostState
	Global    GlobalState
	Circle    CircleState
	Notify    NotifyState
}

type AuthorizeState struct {
	UID      string
	Authed   bool
	LoggedIn bool
}

type UserState struct {
	Info map[string]models.UserInfo
}

type CommentState struct {
	PostComments models.CommentsByPost
}

type PostState struct {
	// UserPosts is keyed by owner user id, then post id.
	UserPosts map[string]map[string]*models.Post
}

type GlobalState struct {
	TopLoading  bool
	MessageOpen bool
	Message     string
}

type CircleState struct {
	CircleList map[string]models.Circle
	UserTies   map[string]models.UserTie
}

type NotifyState struct {
	UserNotifies map[string]models.Notification
}

// FindPost looks up a cached post; ok is false when either level is missing.
func (s State) FindPost(ownerUserID, postID string) (*models.Post, bool) {
	p, ok := s.Post.UserPosts[ownerUserID][postID]
	return p, ok && p != nil
}

func (s State) FindComment(postID, commentID string) (*models.Comment, bool) {
	c, ok := s.Comment.PostComments[postID][commentID]
	return c, ok && c != nil
}
