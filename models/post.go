package models

type Post struct {
	ID           string `json:"id"`
	OwnerUserID  string `json:"owner_user_id"`
	Body         string `json:"body"`
	CreationDate int64  `json:"creation_date"`

	// Comments and CommentCounter are derived on the client from the full
	// comment list of the post.
	Comments       []*Comment `json:"comments,omitempty"`
	CommentCounter int        `json:"comment_counter"`
}

// Clone returns a copy whose comment slice can be replaced without touching p.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Comments != nil {
		cp.Comments = append([]*Comment(nil), p.Comments...)
	}
	return &cp
}
