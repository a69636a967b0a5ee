package actions

import (
	"context"

	"masterboxer.com/social-network/models"
	"masterboxer.com/social-network/store"
)

// DBAddNotification writes a notification for another user. Only failures
// touch the local store.
func (a *Actions) DBAddNotification(ctx context.Context, n models.Notification) {
	if err := a.services.Notifications.AddNotification(ctx, n); err != nil {
		a.store.Dispatch(ShowErrorMessage(err.Error()))
	}
}

func (a *Actions) DBGetNotifications(ctx context.Context) {
	uid := a.uid()
	if uid == "" {
		return
	}
	list, err := a.services.Notifications.GetNotifications(ctx, uid)
	if err != nil {
		a.store.Dispatch(ShowErrorMessage(err.Error()))
		return
	}
	a.store.Dispatch(AddNotifyList(list))
}

func AddNotifyList(list map[string]models.Notification) store.Action {
	return store.Action{Type: store.ActionAddNotifyList, Payload: list}
}
