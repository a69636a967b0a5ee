package actions

import "masterboxer.com/social-network/store"

func ShowTopLoading() store.Action {
	return store.Action{Type: store.ActionShowTopLoading}
}

func HideTopLoading() store.Action {
	return store.Action{Type: store.ActionHideTopLoading}
}

func ShowErrorMessage(message string) store.Action {
	return store.Action{Type: store.ActionShowErrorMessage, Payload: message}
}

func HideMessage() store.Action {
	return store.Action{Type: store.ActionHideMessage}
}
