package client

import (
	"context"
	"net/http"

	"masterboxer.com/social-network/models"
)

func (c *Client) Register(ctx context.Context, u models.User) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodPost, "/users", u, &out)
	return out, err
}

// Login returns a bearer token and the user's id. The token is also kept
// for subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) (string, string, error) {
	req := map[string]string{"username": username, "password": password}
	var out struct {
		Token  string `json:"token"`
		UserID string `json:"user_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", req, &out); err != nil {
		return "", "", err
	}
	c.token = out.Token
	return out.Token, out.UserID, nil
}

func (c *Client) GetUserInfo(ctx context.Context, userID string) (models.UserInfo, error) {
	var out models.UserInfo
	err := c.do(ctx, http.MethodGet, "/users/"+seg(userID), nil, &out)
	return out, err
}

func (c *Client) GetFollowing(ctx context.Context, userID string) (map[string]models.UserTie, error) {
	out := map[string]models.UserTie{}
	err := c.do(ctx, http.MethodGet, "/users/"+seg(userID)+"/following", nil, &out)
	return out, err
}

func (c *Client) Follow(ctx context.Context, userID, followingID string) error {
	body := map[string]string{"following_id": followingID}
	return c.do(ctx, http.MethodPost, "/users/"+seg(userID)+"/follow", body, nil)
}

func (c *Client) Unfollow(ctx context.Context, userID, followingID string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+seg(userID)+"/following/"+seg(followingID), nil, nil)
}

func (c *Client) CreatePost(ctx context.Context, body string) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodPost, "/posts", models.Post{Body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPostsByUser(ctx context.Context, userID string) (map[string]*models.Post, error) {
	out := map[string]*models.Post{}
	err := c.do(ctx, http.MethodGet, "/posts/user/"+seg(userID), nil, &out)
	return out, err
}

func (c *Client) AddNotification(ctx context.Context, n models.Notification) error {
	return c.do(ctx, http.MethodPost, "/notifications", n, nil)
}

func (c *Client) GetNotifications(ctx context.Context, userID string) (map[string]models.Notification, error) {
	out := map[string]models.Notification{}
	err := c.do(ctx, http.MethodGet, "/users/"+seg(userID)+"/notifications", nil, &out)
	return out, err
}

func (c *Client) MarkNotificationSeen(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/notifications/"+seg(id)+"/seen", nil, nil)
}
