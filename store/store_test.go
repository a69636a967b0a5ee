package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masterboxer.com/social-network/models"
)

func comment(id, postID string, date int64) *models.Comment {
	return &models.Comment{ID: id, PostID: postID, Text: "text " + id, CreationDate: date}
}

func TestDispatch_NotifiesListenersInOrder(t *testing.T) {
	s := New()
	var seen []string
	s.Subscribe(func(a Action, _ State) { seen = append(seen, "first:"+string(a.Type)) })
	s.Subscribe(func(a Action, _ State) { seen = append(seen, "second:"+string(a.Type)) })

	s.Dispatch(Action{Type: ActionShowTopLoading})
	s.Dispatch(Action{Type: ActionHideTopLoading})

	assert.Equal(t, []string{
		"first:SHOW_TOP_LOADING", "second:SHOW_TOP_LOADING",
		"first:HIDE_TOP_LOADING", "second:HIDE_TOP_LOADING",
	}, seen)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s := New()
	calls := 0
	unsubscribe := s.Subscribe(func(Action, State) { calls++ })

	s.Dispatch(Action{Type: ActionShowTopLoading})
	unsubscribe()
	unsubscribe()
	s.Dispatch(Action{Type: ActionHideTopLoading})

	assert.Equal(t, 1, calls)
}

func TestListenerMayDispatch(t *testing.T) {
	s := New()
	s.Subscribe(func(a Action, _ State) {
		if a.Type == ActionShowErrorMessage {
			s.Dispatch(Action{Type: ActionHideTopLoading})
		}
	})
	s.Dispatch(Action{Type: ActionShowTopLoading})
	s.Dispatch(Action{Type: ActionShowErrorMessage, Payload: "boom"})

	g := s.GetState().Global
	assert.False(t, g.TopLoading)
	assert.True(t, g.MessageOpen)
	assert.Equal(t, "boom", g.Message)
}

func TestCommentReducer_AddUpdateDelete(t *testing.T) {
	s := New()
	s.Dispatch(Action{Type: ActionAddComment, Payload: comment("c1", "p1", 10)})

	got, ok := s.GetState().FindComment("p1", "c1")
	require.True(t, ok)
	assert.Equal(t, "text c1", got.Text)

	edited := comment("c1", "p1", 10)
	edited.Text = "edited"
	edited.EditorStatus = true
	s.Dispatch(Action{Type: ActionUpdateComment, Payload: edited})

	got, _ = s.GetState().FindComment("p1", "c1")
	assert.Equal(t, "edited", got.Text)
	assert.False(t, got.EditorStatus)

	s.Dispatch(Action{Type: ActionDeleteComment, Payload: DeleteCommentPayload{ID: "c1", PostID: "p1"}})
	_, ok = s.GetState().FindComment("p1", "c1")
	assert.False(t, ok)
}

func TestCommentReducer_MissingTargetsAreNoops(t *testing.T) {
	s := New()
	s.Dispatch(Action{Type: ActionAddComment, Payload: comment("c1", "p1", 10)})
	before := s.GetState().Comment

	assert.NotPanics(t, func() {
		s.Dispatch(Action{Type: ActionDeleteComment, Payload: DeleteCommentPayload{ID: "nope", PostID: "p1"}})
		s.Dispatch(Action{Type: ActionDeleteComment, Payload: DeleteCommentPayload{ID: "c1", PostID: "nope"}})
		s.Dispatch(Action{Type: ActionUpdateComment, Payload: comment("nope", "p1", 1)})
		s.Dispatch(Action{Type: ActionOpenCommentEditor, Payload: comment("nope", "p9", 1)})
		s.Dispatch(Action{Type: ActionAddComment, Payload: "wrong payload"})
	})
	assert.Equal(t, before, s.GetState().Comment)
}

func TestCommentReducer_SnapshotsAreIsolated(t *testing.T) {
	s := New()
	s.Dispatch(Action{Type: ActionAddComment, Payload: comment("c1", "p1", 10)})
	snapshot := s.GetState()

	s.Dispatch(Action{Type: ActionAddComment, Payload: comment("c2", "p1", 20)})
	s.Dispatch(Action{Type: ActionOpenCommentEditor, Payload: comment("c1", "p1", 10)})

	assert.Len(t, snapshot.Comment.PostComments["p1"], 1)
	assert.False(t, snapshot.Comment.PostComments["p1"]["c1"].EditorStatus)
	assert.True(t, s.GetState().Comment.PostComments["p1"]["c1"].EditorStatus)
}

func TestCommentReducer_EditorToggle(t *testing.T) {
	s := New()
	s.Dispatch(Action{Type: ActionAddComment, Payload: comment("c1", "p1", 10)})

	s.Dispatch(Action{Type: ActionOpenCommentEditor, Payload: comment("c1", "p1", 10)})
	got, _ := s.GetState().FindComment("p1", "c1")
	assert.True(t, got.EditorStatus)

	s.Dispatch(Action{Type: ActionCloseCommentEditor, Payload: comment("c1", "p1", 10)})
	got, _ = s.GetState().FindComment("p1", "c1")
	assert.False(t, got.EditorStatus)
}

func TestCommentReducer_ListAndClear(t *testing.T) {
	s := New()
	s.Dispatch(Action{Type: ActionAddComment, Payload: comment("old", "p1", 1)})
	s.Dispatch(Action{Type: ActionAddCommentList, Payload: models.CommentsByPost{
		"p1": {"c1": comment("c1", "p1", 5)},
		"p2": {"c2": comment("c2", "p2", 6)},
	}})

	st := s.GetState()
	assert.Len(t, st.Comment.PostComments, 2)
	_, ok := st.FindComment("p1", "old")
	assert.False(t, ok, "a list replaces the comments of each post it carries")

	s.Dispatch(Action{Type: ActionClearAllDataComment})
	assert.Empty(t, s.GetState().Comment.PostComments)
}

func TestPostReducer(t *testing.T) {
	s := New()
	s.Dispatch(Action{Type: ActionAddPostList, Payload: PostListPayload{
		OwnerUserID: "u1",
		Posts:       map[string]*models.Post{"p1": {ID: "p1", OwnerUserID: "u1"}},
	}})

	p, ok := s.GetState().FindPost("u1", "p1")
	require.True(t, ok)
	assert.Zero(t, p.CommentCounter)

	s.Dispatch(Action{Type: ActionUpdatePost, Payload: &models.Post{ID: "p1", OwnerUserID: "u1", CommentCounter: 4}})
	p, _ = s.GetState().FindPost("u1", "p1")
	assert.Equal(t, 4, p.CommentCounter)

	_, ok = s.GetState().FindPost("u2", "p1")
	assert.False(t, ok)
}

func TestCircleAndNotifyReducers(t *testing.T) {
	s := New()
	s.Dispatch(Action{Type: ActionAddUserTies, Payload: map[string]models.UserTie{"u2": {UserID: "u2"}}})
	s.Dispatch(Action{Type: ActionAddCircleList, Payload: map[string]models.Circle{"c": {ID: "c"}}})
	s.Dispatch(Action{Type: ActionAddNotifyList, Payload: map[string]models.Notification{"n": {ID: "n"}}})

	st := s.GetState()
	assert.Contains(t, st.Circle.UserTies, "u2")
	assert.Contains(t, st.Circle.CircleList, "c")
	assert.Contains(t, st.Notify.UserNotifies, "n")

	s.Dispatch(Action{Type: ActionAddUserTies, Payload: map[string]models.UserTie{}})
	assert.Empty(t, s.GetState().Circle.UserTies)
}

func TestLoginLogout(t *testing.T) {
	s := New()
	s.Dispatch(Action{Type: ActionLogin, Payload: "u1"})
	s.Dispatch(Action{Type: ActionAddUserInfo, Payload: UserInfoPayload{UID: "u1", Info: models.UserInfo{FullName: "Ada"}}})
	s.Dispatch(Action{Type: ActionAddComment, Payload: comment("c1", "p1", 1)})

	st := s.GetState()
	assert.Equal(t, "u1", st.Authorize.UID)
	assert.True(t, st.Authorize.Authed)
	assert.Equal(t, "Ada", st.User.Info["u1"].FullName)

	s.Dispatch(Action{Type: ActionLogout})
	st = s.GetState()
	assert.Empty(t, st.Authorize.UID)
	assert.Empty(t, st.User.Info)
	assert.Empty(t, st.Comment.PostComments)
}
