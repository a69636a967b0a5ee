package models

type Circle struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	OwnerUserID string `json:"owner_user_id"`
	IsSystem    bool   `json:"is_system"`
}

// UserTie is a membership record for a user someone follows.
type UserTie struct {
	UserID       string   `json:"user_id"`
	FullName     string   `json:"full_name"`
	Avatar       string   `json:"avatar"`
	CircleIDList []string `json:"circle_id_list,omitempty"`
	CreationDate int64    `json:"creation_date"`
}
