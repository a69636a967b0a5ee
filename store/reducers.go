package store

import "masterboxer.com/social-network/models"

func postReducer(s PostState, a Action) PostState {
	switch a.Type {
	case ActionAddPostList:
		p, ok := a.Payload.(PostListPayload)
		if !ok || p.OwnerUserID == "" {
			return s
		}
		out := PostState{UserPosts: copyPostOwners(s.UserPosts)}
		merged := copyPosts(s.UserPosts[p.OwnerUserID])
		for id, post := range p.Posts {
			merged[id] = post
		}
		out.UserPosts[p.OwnerUserID] = merged
		return out

	case ActionUpdatePost:
		post, ok := a.Payload.(*models.Post)
		if !ok || post == nil {
			return s
		}
		out := PostState{UserPosts: copyPostOwners(s.UserPosts)}
		posts := copyPosts(s.UserPosts[post.OwnerUserID])
		posts[post.ID] = post
		out.UserPosts[post.OwnerUserID] = posts
		return out

	case ActionClearAllDataPost, ActionLogout:
		return PostState{}
	}
	return s
}

func copyPostOwners(m map[string]map[string]*models.Post) map[string]map[string]*models.Post {
	out := make(map[string]map[string]*models.Post, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyPosts(m map[string]*models.Post) map[string]*models.Post {
	out := make(map[string]*models.Post, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func globalReducer(s GlobalState, a Action) GlobalState {
	switch a.Type {
	case ActionShowTopLoading:
		s.TopLoading = true
	case ActionHideTopLoading:
		s.TopLoading = false
	case ActionShowErrorMessage:
		msg, _ := a.Payload.(string)
		s.MessageOpen = true
		s.Message = msg
	case ActionHideMessage:
		s.MessageOpen = false
		s.Message = ""
	}
	return s
}

func circleReducer(s CircleState, a Action) CircleState {
	switch a.Type {
	case ActionAddCircleList:
		circles, ok := a.Payload.(map[string]models.Circle)
		if !ok {
			return s
		}
		list := make(map[string]models.Circle, len(s.CircleList)+len(circles))
		for k, v := range s.CircleList {
			list[k] = v
		}
		for k, v := range circles {
			list[k] = v
		}
		s.CircleList = list

	case ActionAddUserTies:
		ties, ok := a.Payload.(map[string]models.UserTie)
		if !ok {
			return s
		}
		replaced := make(map[string]models.UserTie, len(ties))
		for k, v := range ties {
			replaced[k] = v
		}
		s.UserTies = replaced

	case ActionClearAllDataCircles, ActionLogout:
		return CircleState{}
	}
	return s
}

func notifyReducer(s NotifyState, a Action) NotifyState {
	switch a.Type {
	case ActionAddNotifyList:
		list, ok := a.Payload.(map[string]models.Notification)
		if !ok {
			return s
		}
		merged := make(map[string]models.Notification, len(s.UserNotifies)+len(list))
		for k, v := range s.UserNotifies {
			merged[k] = v
		}
		for k, v := range list {
			merged[k] = v
		}
		s.UserNotifies = merged

	case ActionClearAllDataNotify, ActionLogout:
		return NotifyState{}
	}
	return s
}

func authorizeReducer(s AuthorizeState, a Action) AuthorizeState {
	switch a.Type {
	case ActionLogin:
		uid, _ := a.Payload.(string)
		return AuthorizeState{UID: uid, Authed: uid != "", LoggedIn: uid != ""}
	case ActionLogout:
		return AuthorizeState{}
	}
	return s
}

func userReducer(s UserState, a Action) UserState {
	switch a.Type {
	case ActionAddUserInfo:
		p, ok := a.Payload.(UserInfoPayload)
		if !ok || p.UID == "" {
			return s
		}
		info := make(map[string]models.UserInfo, len(s.Info)+1)
		for k, v := range s.Info {
			info[k] = v
		}
		info[p.UID] = p.Info
		s.Info = info
	case ActionLogout:
		return UserState{}
	}
	return s
}
