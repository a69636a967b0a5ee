package models

type Notification struct {
	ID                   string `json:"id,omitempty"`
	Description          string `json:"description"`
	URL                  string `json:"url"`
	NotifyRecieverUserID string `json:"notify_reciever_user_id"`
	NotifierUserID       string `json:"notifier_user_id"`
	IsSeen               bool   `json:"is_seen"`
	CreationDate         int64  `json:"creation_date"`
}
