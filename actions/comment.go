package actions

import (
	"context"
	"errors"
	"fmt"

	"masterboxer.com/social-network/models"
	"masterboxer.com/social-network/store"
)

const errNullCommentID = "comment id can not be null or undefined"

// DBAddComment stores a new comment by the logged-in user on
// newComment.PostID. callback runs once the comment is acknowledged. The
// post owner is notified unless they wrote the comment themselves.
func (a *Actions) DBAddComment(ctx context.Context, ownerPostUserID string, newComment models.Comment, callback func()) {
	a.store.Dispatch(ShowTopLoading())

	state := a.store.GetState()
	uid := state.Authorize.UID
	info := state.User.Info[uid]

	comment := models.Comment{
		Score:           0,
		CreationDate:    a.now().Unix(),
		UserDisplayName: info.FullName,
		UserAvatar:      info.Avatar,
		UserID:          uid,
		PostID:          newComment.PostID,
		Text:            newComment.Text,
	}

	key, err := a.services.Comments.AddComment(ctx, comment)
	if err != nil {
		a.fail(err)
		return
	}

	comment.ID = key
	a.store.Dispatch(AddComment(&comment))
	if callback != nil {
		callback()
	}
	a.store.Dispatch(HideTopLoading())

	if ownerPostUserID != "" && ownerPostUserID != uid {
		a.DBAddNotification(ctx, models.Notification{
			Description:          "Add comment on your post.",
			URL:                  fmt.Sprintf("/%s/posts/%s", ownerPostUserID, comment.PostID),
			NotifyRecieverUserID: ownerPostUserID,
			NotifierUserID:       uid,
			IsSeen:               false,
		})
	}
}

// DBGetComments loads the comments of a post and refreshes the post's
// recent-comments preview and counter. It returns once the service stops
// delivering updates.
func (a *Actions) DBGetComments(ctx context.Context, ownerUserID, postID string) {
	if a.uid() == "" {
		return
	}

	err := a.services.Comments.GetComments(ctx, postID, func(comments models.CommentsByPost) {
		a.store.Dispatch(AddCommentList(comments))

		post, ok := a.store.GetState().FindPost(ownerUserID, postID)
		if !ok {
			return
		}
		desired := comments[postID]
		if len(desired) == 0 {
			return
		}

		count, recent := models.RecentComments(desired)
		updated := post.Clone()
		updated.Comments = recent
		updated.CommentCounter = count
		a.store.Dispatch(UpdatePost(updated))
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		a.store.Dispatch(ShowErrorMessage(err.Error()))
	}
}

func (a *Actions) DBUpdateComment(ctx context.Context, comment models.Comment) {
	comment.EditorStatus = false
	a.store.Dispatch(ShowTopLoading())

	if err := a.services.Comments.UpdateComment(ctx, comment); err != nil {
		a.fail(err)
		return
	}

	a.store.Dispatch(UpdateComment(&comment))
	a.store.Dispatch(HideTopLoading())
}

func (a *Actions) DBDeleteComment(ctx context.Context, id, postID string) {
	a.store.Dispatch(ShowTopLoading())

	if id == "" || postID == "" {
		a.fail(errors.New(errNullCommentID))
		return
	}

	if err := a.services.Comments.DeleteComment(ctx, id); err != nil {
		a.fail(err)
		return
	}

	a.store.Dispatch(DeleteComment(id, postID))
	a.store.Dispatch(HideTopLoading())
}

func AddComment(comment *models.Comment) store.Action {
	return store.Action{Type: store.ActionAddComment, Payload: comment}
}

func UpdateComment(comment *models.Comment) store.Action {
	return store.Action{Type: store.ActionUpdateComment, Payload: comment}
}

func AddCommentList(postComments models.CommentsByPost) store.Action {
	return store.Action{Type: store.ActionAddCommentList, Payload: postComments}
}

func DeleteComment(id, postID string) store.Action {
	return store.Action{Type: store.ActionDeleteComment, Payload: store.DeleteCommentPayload{ID: id, PostID: postID}}
}

func ClearAllData() store.Action {
	return store.Action{Type: store.ActionClearAllDataComment}
}

func OpenCommentEditor(comment *models.Comment) store.Action {
	return store.Action{Type: store.ActionOpenCommentEditor, Payload: comment}
}

func CloseCommentEditor(comment *models.Comment) store.Action {
	return store.Action{Type: store.ActionCloseCommentEditor, Payload: comment}
}
