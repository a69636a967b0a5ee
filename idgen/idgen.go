// Package idgen generates the string keys used for users, posts, comments and
// notifications.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

const (
	PrefixUser         = "usr-"
	PrefixPost         = "pst-"
	PrefixComment      = "cmt-"
	PrefixNotification = "ntf-"
)

var Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var Length = 14

func New(prefix string) (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return prefix + id, nil
}
