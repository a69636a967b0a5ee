package actions

import (
	"context"

	"masterboxer.com/social-network/models"
	"masterboxer.com/social-network/store"
)

func Login(uid string) store.Action {
	return store.Action{Type: store.ActionLogin, Payload: uid}
}

func Logout() store.Action {
	return store.Action{Type: store.ActionLogout}
}

func AddUserInfo(uid string, info models.UserInfo) store.Action {
	return store.Action{Type: store.ActionAddUserInfo, Payload: store.UserInfoPayload{UID: uid, Info: info}}
}

func (a *Actions) DBGetUserInfo(ctx context.Context, uid string) {
	info, err := a.services.Users.GetUserInfo(ctx, uid)
	if err != nil {
		a.store.Dispatch(ShowErrorMessage(err.Error()))
		return
	}
	a.store.Dispatch(AddUserInfo(uid, info))
}
