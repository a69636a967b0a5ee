package store

import "masterboxer.com/social-network/models"

type ActionType string

const (
	ActionAddComment          ActionType = "ADD_COMMENT"
	ActionUpdateComment       ActionType = "UPDATE_COMMENT"
	ActionDeleteComment       ActionType = "DELETE_COMMENT"
	ActionAddCommentList      ActionType = "ADD_COMMENT_LIST"
	ActionClearAllDataComment ActionType = "CLEAR_ALL_DATA_COMMENT"
	ActionOpenCommentEditor   ActionType = "OPEN_COMMENT_EDITOR"
	ActionCloseCommentEditor  ActionType = "CLOSE_COMMENT_EDITOR"

	ActionAddPostList      ActionType = "ADD_LIST_POST"
	ActionUpdatePost       ActionType = "UPDATE_POST"
	ActionClearAllDataPost ActionType = "CLEAR_ALL_DATA_POST"

	ActionShowTopLoading   ActionType = "SHOW_TOP_LOADING"
	ActionHideTopLoading   ActionType = "HIDE_TOP_LOADING"
	ActionShowErrorMessage ActionType = "SHOW_ERROR_MESSAGE_GLOBAL"
	ActionHideMessage      ActionType = "HIDE_MESSAGE_GLOBAL"

	ActionAddCircleList       ActionType = "ADD_LIST_CIRCLE"
	ActionAddUserTies         ActionType = "ADD_USER_TIES"
	ActionClearAllDataCircles ActionType = "CLEAR_ALL_CIRCLES"

	ActionAddNotifyList      ActionType = "ADD_NOTIFY_LIST"
	ActionClearAllDataNotify ActionType = "CLEAR_ALL_DATA_NOTIFY"

	ActionLogin       ActionType = "LOGIN"
	ActionLogout      ActionType = "LOGOUT"
	ActionAddUserInfo ActionType = "ADD_USER_INFO"
)

// Action is a tagged payload applied to State by Dispatch.
type Action struct {
	Type    ActionType
	Payload any
}

type DeleteCommentPayload struct {
	ID     string
	PostID string
}

type PostListPayload struct {
	OwnerUserID string
	Posts       map[string]*models.Post
}

type UserInfoPayload struct {
	UID  string
	Info models.UserInfo
}
