package actions

import (
	"context"

	"masterboxer.com/social-network/models"
	"masterboxer.com/social-network/store"
)

// DBGetFollowing replaces the following set of the logged-in user.
func (a *Actions) DBGetFollowing(ctx context.Context) {
	uid := a.uid()
	if uid == "" {
		return
	}
	ties, err := a.services.Circles.GetFollowing(ctx, uid)
	if err != nil {
		a.store.Dispatch(ShowErrorMessage(err.Error()))
		return
	}
	a.store.Dispatch(AddUserTies(ties))
}

func AddUserTies(ties map[string]models.UserTie) store.Action {
	return store.Action{Type: store.ActionAddUserTies, Payload: ties}
}
