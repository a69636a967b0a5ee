package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masterboxer.com/social-network/models"
	"masterboxer.com/social-network/store"
)

type fakeComments struct {
	addKey   string
	addErr   error
	added    []models.Comment
	updates  []models.CommentsByPost
	getErr   error
	updated  []models.Comment
	updErr   error
	deleted  []string
	delErr   error
	getCalls int
}

func (f *fakeComments) AddComment(ctx context.Context, c models.Comment) (string, error) {
	f.added = append(f.added, c)
	return f.addKey, f.addErr
}

func (f *fakeComments) GetComments(ctx context.Context, postID string, onUpdate func(models.CommentsByPost)) error {
	f.getCalls++
	for _, u := range f.updates {
		onUpdate(u)
	}
	return f.getErr
}

func (f *fakeComments) UpdateComment(ctx context.Context, c models.Comment) error {
	f.updated = append(f.updated, c)
	return f.updErr
}

func (f *fakeComments) DeleteComment(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.delErr
}

type fakeNotifications struct {
	added []models.Notification
	err   error
	list  map[string]models.Notification
}

func (f *fakeNotifications) AddNotification(ctx context.Context, n models.Notification) error {
	f.added = append(f.added, n)
	return f.err
}

func (f *fakeNotifications) GetNotifications(ctx context.Context, userID string) (map[string]models.Notification, error) {
	return f.list, f.err
}

type harness struct {
	store    *store.Store
	actions  *Actions
	comments *fakeComments
	notify   *fakeNotifications
	log      []store.ActionType
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		store:    store.New(),
		comments: &fakeComments{addKey: "cmt-new"},
		notify:   &fakeNotifications{},
	}
	h.actions = New(h.store, Services{Comments: h.comments, Notifications: h.notify})
	h.actions.now = func() time.Time { return time.Unix(1700000000, 0) }

	h.store.Dispatch(Login("u1"))
	h.store.Dispatch(AddUserInfo("u1", models.UserInfo{ID: "u1", FullName: "Ada Lovelace", Avatar: "ada.png"}))
	h.store.Subscribe(func(a store.Action, _ store.State) { h.log = append(h.log, a.Type) })
	return h
}

func (h *harness) count(t store.ActionType) int {
	n := 0
	for _, got := range h.log {
		if got == t {
			n++
		}
	}
	return n
}

func TestDBAddComment_Success(t *testing.T) {
	h := newHarness(t)
	called := 0

	h.actions.DBAddComment(context.Background(), "u2", models.Comment{PostID: "p1", Text: "hi"}, func() { called++ })

	require.Len(t, h.comments.added, 1)
	sent := h.comments.added[0]
	assert.Equal(t, models.Comment{
		PostID: "p1", Text: "hi", UserID: "u1", UserDisplayName: "Ada Lovelace",
		UserAvatar: "ada.png", Score: 0, CreationDate: 1700000000,
	}, sent)

	assert.Equal(t, 1, called)
	assert.Equal(t, []store.ActionType{
		store.ActionShowTopLoading, store.ActionAddComment, store.ActionHideTopLoading,
	}, h.log)

	stored, ok := h.store.GetState().FindComment("p1", "cmt-new")
	require.True(t, ok)
	assert.Equal(t, "hi", stored.Text)

	require.Len(t, h.notify.added, 1)
	assert.Equal(t, models.Notification{
		Description:          "Add comment on your post.",
		URL:                  "/u2/posts/p1",
		NotifyRecieverUserID: "u2",
		NotifierUserID:       "u1",
	}, h.notify.added[0])
}

func TestDBAddComment_OwnCommentDoesNotNotify(t *testing.T) {
	h := newHarness(t)
	h.actions.DBAddComment(context.Background(), "u1", models.Comment{PostID: "p1", Text: "mine"}, nil)
	assert.Empty(t, h.notify.added)

	h.actions.DBAddComment(context.Background(), "", models.Comment{PostID: "p1", Text: "no owner"}, nil)
	assert.Empty(t, h.notify.added)
}

func TestDBAddComment_Failure(t *testing.T) {
	h := newHarness(t)
	h.comments.addErr = errors.New("permission denied")
	called := false

	h.actions.DBAddComment(context.Background(), "u2", models.Comment{PostID: "p1", Text: "hi"}, func() { called = true })

	assert.False(t, called)
	assert.Empty(t, h.notify.added)
	assert.Equal(t, []store.ActionType{
		store.ActionShowTopLoading, store.ActionShowErrorMessage, store.ActionHideTopLoading,
	}, h.log)

	st := h.store.GetState()
	assert.Equal(t, "permission denied", st.Global.Message)
	assert.False(t, st.Global.TopLoading)
	assert.Empty(t, st.Comment.PostComments)
}

func TestDBAddComment_NotificationFailureSurfaces(t *testing.T) {
	h := newHarness(t)
	h.notify.err = errors.New("notify down")

	h.actions.DBAddComment(context.Background(), "u2", models.Comment{PostID: "p1", Text: "hi"}, nil)

	assert.Equal(t, 1, h.count(store.ActionShowTopLoading))
	assert.Equal(t, 1, h.count(store.ActionHideTopLoading))
	assert.Equal(t, "notify down", h.store.GetState().Global.Message)
	_, ok := h.store.GetState().FindComment("p1", "cmt-new")
	assert.True(t, ok)
}

func seedPost(h *harness) {
	h.store.Dispatch(AddPostList("owner", map[string]*models.Post{"p1": {ID: "p1", OwnerUserID: "owner"}}))
	h.log = nil
}

func commentsFor(postID string, dates ...int64) map[string]*models.Comment {
	out := map[string]*models.Comment{}
	for i, d := range dates {
		id := string(rune('a' + i))
		out[id] = &models.Comment{ID: id, PostID: postID, CreationDate: d}
	}
	return out
}

func TestDBGetComments_UpdatesPostPreview(t *testing.T) {
	h := newHarness(t)
	seedPost(h)
	h.comments.updates = []models.CommentsByPost{{"p1": commentsFor("p1", 5, 1, 9, 3, 7)}}

	h.actions.DBGetComments(context.Background(), "owner", "p1")

	assert.Equal(t, []store.ActionType{store.ActionAddCommentList, store.ActionUpdatePost}, h.log)
	post, ok := h.store.GetState().FindPost("owner", "p1")
	require.True(t, ok)
	assert.Equal(t, 5, post.CommentCounter)
	require.Len(t, post.Comments, 3)
	assert.Equal(t, []int64{9, 7, 5}, []int64{post.Comments[0].CreationDate, post.Comments[1].CreationDate, post.Comments[2].CreationDate})
	assert.Len(t, h.store.GetState().Comment.PostComments["p1"], 5)
}

func TestDBGetComments_EveryUpdateRefreshes(t *testing.T) {
	h := newHarness(t)
	seedPost(h)
	h.comments.updates = []models.CommentsByPost{
		{"p1": commentsFor("p1", 1)},
		{"p1": commentsFor("p1", 1, 2)},
	}

	h.actions.DBGetComments(context.Background(), "owner", "p1")

	assert.Equal(t, 2, h.count(store.ActionUpdatePost))
	post, _ := h.store.GetState().FindPost("owner", "p1")
	assert.Equal(t, 2, post.CommentCounter)
}

func TestDBGetComments_SkipsMissingPostAndEmptyComments(t *testing.T) {
	h := newHarness(t)
	h.comments.updates = []models.CommentsByPost{{"p1": commentsFor("p1", 1, 2)}}

	h.actions.DBGetComments(context.Background(), "owner", "p1")
	assert.Equal(t, []store.ActionType{store.ActionAddCommentList}, h.log)

	seedPost(h)
	h.comments.updates = []models.CommentsByPost{{}}
	h.actions.DBGetComments(context.Background(), "owner", "p1")
	assert.Equal(t, []store.ActionType{store.ActionAddCommentList}, h.log)
	assert.Empty(t, h.store.GetState().Global.Message)
}

func TestDBGetComments_RequiresLogin(t *testing.T) {
	h := newHarness(t)
	h.store.Dispatch(Logout())

	h.actions.DBGetComments(context.Background(), "owner", "p1")
	assert.Zero(t, h.comments.getCalls)
}

func TestDBGetComments_ErrorSurfaces(t *testing.T) {
	h := newHarness(t)
	h.comments.getErr = errors.New("offline")

	h.actions.DBGetComments(context.Background(), "owner", "p1")
	assert.Equal(t, "offline", h.store.GetState().Global.Message)

	h.log = nil
	h.comments.getErr = context.Canceled
	h.actions.DBGetComments(context.Background(), "owner", "p1")
	assert.Zero(t, h.count(store.ActionShowErrorMessage))
}

func TestDBUpdateComment(t *testing.T) {
	h := newHarness(t)
	h.store.Dispatch(AddComment(&models.Comment{ID: "c1", PostID: "p1", Text: "old"}))
	h.store.Dispatch(OpenCommentEditor(&models.Comment{ID: "c1", PostID: "p1"}))
	h.log = nil

	h.actions.DBUpdateComment(context.Background(), models.Comment{ID: "c1", PostID: "p1", Text: "new", EditorStatus: true})

	require.Len(t, h.comments.updated, 1)
	assert.False(t, h.comments.updated[0].EditorStatus)
	assert.Equal(t, []store.ActionType{
		store.ActionShowTopLoading, store.ActionUpdateComment, store.ActionHideTopLoading,
	}, h.log)
	c, _ := h.store.GetState().FindComment("p1", "c1")
	assert.Equal(t, "new", c.Text)
	assert.False(t, c.EditorStatus)
}

func TestDBUpdateComment_FailureKeepsState(t *testing.T) {
	h := newHarness(t)
	h.store.Dispatch(AddComment(&models.Comment{ID: "c1", PostID: "p1", Text: "old"}))
	h.comments.updErr = errors.New("not yours")
	h.log = nil

	h.actions.DBUpdateComment(context.Background(), models.Comment{ID: "c1", PostID: "p1", Text: "new"})

	assert.Equal(t, []store.ActionType{
		store.ActionShowTopLoading, store.ActionShowErrorMessage, store.ActionHideTopLoading,
	}, h.log)
	c, _ := h.store.GetState().FindComment("p1", "c1")
	assert.Equal(t, "old", c.Text)
}

func TestDBDeleteComment(t *testing.T) {
	h := newHarness(t)
	h.store.Dispatch(AddComment(&models.Comment{ID: "c1", PostID: "p1"}))
	h.log = nil

	h.actions.DBDeleteComment(context.Background(), "c1", "p1")

	assert.Equal(t, []string{"c1"}, h.comments.deleted)
	assert.Equal(t, []store.ActionType{
		store.ActionShowTopLoading, store.ActionDeleteComment, store.ActionHideTopLoading,
	}, h.log)
	_, ok := h.store.GetState().FindComment("p1", "c1")
	assert.False(t, ok)
}

func TestDBDeleteComment_UnknownLocalIDIsFine(t *testing.T) {
	h := newHarness(t)

	assert.NotPanics(t, func() {
		h.actions.DBDeleteComment(context.Background(), "ghost", "p1")
	})
	assert.Empty(t, h.store.GetState().Global.Message)
	assert.Equal(t, 1, h.count(store.ActionHideTopLoading))
}

func TestDBDeleteComment_NullGuard(t *testing.T) {
	for _, tc := range []struct{ id, postID string }{{"", "p1"}, {"c1", ""}, {"", ""}} {
		h := newHarness(t)
		h.actions.DBDeleteComment(context.Background(), tc.id, tc.postID)

		assert.Empty(t, h.comments.deleted, "%+v", tc)
		assert.Equal(t, []store.ActionType{
			store.ActionShowTopLoading, store.ActionShowErrorMessage, store.ActionHideTopLoading,
		}, h.log, "%+v", tc)
		assert.Equal(t, errNullCommentID, h.store.GetState().Global.Message)
	}
}

func TestDBDeleteComment_Failure(t *testing.T) {
	h := newHarness(t)
	h.store.Dispatch(AddComment(&models.Comment{ID: "c1", PostID: "p1"}))
	h.comments.delErr = errors.New("gone wrong")

	h.actions.DBDeleteComment(context.Background(), "c1", "p1")

	_, ok := h.store.GetState().FindComment("p1", "c1")
	assert.True(t, ok)
	assert.Equal(t, "gone wrong", h.store.GetState().Global.Message)
	assert.False(t, h.store.GetState().Global.TopLoading)
}

func TestLoadingSignalsExactlyOncePerMutation(t *testing.T) {
	for name, run := range map[string]func(h *harness){
		"add ok":      func(h *harness) { h.actions.DBAddComment(context.Background(), "u2", models.Comment{PostID: "p"}, nil) },
		"add fail":    func(h *harness) { h.comments.addErr = errors.New("x"); h.actions.DBAddComment(context.Background(), "u2", models.Comment{PostID: "p"}, nil) },
		"update ok":   func(h *harness) { h.actions.DBUpdateComment(context.Background(), models.Comment{ID: "c", PostID: "p"}) },
		"update fail": func(h *harness) { h.comments.updErr = errors.New("x"); h.actions.DBUpdateComment(context.Background(), models.Comment{ID: "c", PostID: "p"}) },
		"delete ok":   func(h *harness) { h.actions.DBDeleteComment(context.Background(), "c", "p") },
		"delete fail": func(h *harness) { h.comments.delErr = errors.New("x"); h.actions.DBDeleteComment(context.Background(), "c", "p") },
		"delete null": func(h *harness) { h.actions.DBDeleteComment(context.Background(), "", "") },
	} {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			run(h)
			assert.Equal(t, 1, h.count(store.ActionShowTopLoading))
			assert.Equal(t, 1, h.count(store.ActionHideTopLoading))
			assert.Equal(t, store.ActionShowTopLoading, h.log[0])
			assert.False(t, h.store.GetState().Global.TopLoading)
		})
	}
}

func TestPlainCreators(t *testing.T) {
	c := &models.Comment{ID: "c"}
	assert.Equal(t, store.Action{Type: store.ActionAddComment, Payload: c}, AddComment(c))
	assert.Equal(t, store.Action{Type: store.ActionUpdateComment, Payload: c}, UpdateComment(c))
	assert.Equal(t, store.Action{Type: store.ActionOpenCommentEditor, Payload: c}, OpenCommentEditor(c))
	assert.Equal(t, store.Action{Type: store.ActionCloseCommentEditor, Payload: c}, CloseCommentEditor(c))
	assert.Equal(t, store.Action{Type: store.ActionClearAllDataComment}, ClearAllData())
	assert.Equal(t, store.Action{Type: store.ActionDeleteComment, Payload: store.DeleteCommentPayload{ID: "c", PostID: "p"}}, DeleteComment("c", "p"))
}
