// Package components renders read-only views of client state.
package components

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/charmbracelet/lipgloss"

	"masterboxer.com/social-network/models"
	"masterboxer.com/social-network/store"
)

const (
	followingTitle = "Following"
	noFollowing    = "No following user!"
)

// FollowingProps is the slice of state the following list reads.
type FollowingProps struct {
	UID            string
	Circles        map[string]models.Circle
	FollowingUsers map[string]models.UserTie
}

func FollowingFromState(s store.State) FollowingProps {
	return FollowingProps{
		UID:            s.Authorize.UID,
		Circles:        s.Circle.CircleList,
		FollowingUsers: s.Circle.UserTies,
	}
}

// Following renders the following list, or an empty-state message when the
// user follows nobody.
func Following(users map[string]models.UserTie) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(users) == 0 {
			_, err := fmt.Fprintf(w, `<div><div class="g__title-center">%s</div></div>`, noFollowing)
			return err
		}
		if _, err := fmt.Fprintf(w, `<div><div><div class="profile__title">%s</div>`, followingTitle); err != nil {
			return err
		}
		if err := UserBoxList(users).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<div style="height: 24px"></div></div></div>`)
		return err
	})
}

func UserBoxList(users map[string]models.UserTie) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="grid grid__gutters grid__1of4">`); err != nil {
			return err
		}
		for _, tie := range sortedTies(users) {
			if err := UserBox(tie).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func UserBox(tie models.UserTie) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="grid-cell"><a class="user-box" href="/%s"><img class="user-box__avatar" src="%s" alt=""><div class="user-box__name">%s</div></a></div>`,
			templ.EscapeString(tie.UserID), templ.EscapeString(tie.Avatar), templ.EscapeString(displayName(tie)))
		return err
	})
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	idStyle    = lipgloss.NewStyle().Faint(true)
	emptyStyle = lipgloss.NewStyle().Italic(true).Align(lipgloss.Center)
)

// FollowingText is the terminal rendering of Following.
func FollowingText(users map[string]models.UserTie) string {
	if len(users) == 0 {
		return emptyStyle.Render(noFollowing) + "\n"
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(followingTitle))
	b.WriteString("\n")
	for _, tie := range sortedTies(users) {
		b.WriteString("  ")
		b.WriteString(nameStyle.Render(displayName(tie)))
		b.WriteString(" ")
		b.WriteString(idStyle.Render("(" + tie.UserID + ")"))
		b.WriteString("\n")
	}
	return b.String()
}

func displayName(tie models.UserTie) string {
	if tie.FullName != "" {
		return tie.FullName
	}
	return tie.UserID
}

func sortedTies(users map[string]models.UserTie) []models.UserTie {
	ties := make([]models.UserTie, 0, len(users))
	for id, tie := range users {
		if tie.UserID == "" {
			tie.UserID = id
		}
		ties = append(ties, tie)
	}
	sort.Slice(ties, func(i, j int) bool {
		if ties[i].FullName != ties[j].FullName {
			return ties[i].FullName < ties[j].FullName
		}
		return ties[i].UserID < ties[j].UserID
	})
	return ties
}
