package actions

import (
	"context"

	"masterboxer.com/social-network/models"
	"masterboxer.com/social-network/store"
)

func (a *Actions) DBGetPostsByUser(ctx context.Context, userID string) {
	posts, err := a.services.Posts.GetPostsByUser(ctx, userID)
	if err != nil {
		a.store.Dispatch(ShowErrorMessage(err.Error()))
		return
	}
	a.store.Dispatch(AddPostList(userID, posts))
}

func UpdatePost(post *models.Post) store.Action {
	return store.Action{Type: store.ActionUpdatePost, Payload: post}
}

func AddPostList(ownerUserID string, posts map[string]*models.Post) store.Action {
	return store.Action{Type: store.ActionAddPostList, Payload: store.PostListPayload{OwnerUserID: ownerUserID, Posts: posts}}
}

func ClearAllPosts() store.Action {
	return store.Action{Type: store.ActionClearAllDataPost}
}
