package store

import "masterboxer.com/social-network/models"

func commentReducer(s CommentState, a Action) CommentState {
	switch a.Type {
	case ActionAddComment:
		c, ok := a.Payload.(*models.Comment)
		if !ok || c == nil {
			return s
		}
		return s.withComment(*c)

	case ActionUpdateComment:
		c, ok := a.Payload.(*models.Comment)
		if !ok || c == nil {
			return s
		}
		if _, exists := s.PostComments[c.PostID][c.ID]; !exists {
			return s
		}
		updated := *c
		updated.EditorStatus = false
		return s.withComment(updated)

	case ActionDeleteComment:
		p, ok := a.Payload.(DeleteCommentPayload)
		if !ok {
			return s
		}
		if _, exists := s.PostComments[p.PostID][p.ID]; !exists {
			return s
		}
		out := CommentState{PostComments: copyOuter(s.PostComments)}
		inner := copyInner(s.PostComments[p.PostID])
		delete(inner, p.ID)
		out.PostComments[p.PostID] = inner
		return out

	case ActionAddCommentList:
		list, ok := a.Payload.(models.CommentsByPost)
		if !ok {
			return s
		}
		out := CommentState{PostComments: copyOuter(s.PostComments)}
		for postID, comments := range list {
			out.PostComments[postID] = copyInner(comments)
		}
		return out

	case ActionOpenCommentEditor, ActionCloseCommentEditor:
		c, ok := a.Payload.(*models.Comment)
		if !ok || c == nil {
			return s
		}
		existing, exists := s.PostComments[c.PostID][c.ID]
		if !exists {
			return s
		}
		edited := *existing
		edited.EditorStatus = a.Type == ActionOpenCommentEditor
		return s.withComment(edited)

	case ActionClearAllDataComment, ActionLogout:
		return CommentState{}
	}
	return s
}

func (s CommentState) withComment(c models.Comment) CommentState {
	out := CommentState{PostComments: copyOuter(s.PostComments)}
	inner := copyInner(s.PostComments[c.PostID])
	inner[c.ID] = &c
	out.PostComments[c.PostID] = inner
	return out
}

func copyOuter(m models.CommentsByPost) models.CommentsByPost {
	out := make(models.CommentsByPost, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyInner(m map[string]*models.Comment) map[string]*models.Comment {
	out := make(map[string]*models.Comment, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
