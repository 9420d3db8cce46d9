// Package avatar builds generated-initials avatar URLs for accounts
// that never uploaded a picture.
package avatar

import (
	"fmt"
	"net/url"
)

const (
	initialsHost = "https://ui-avatars.com/api/"

	background = "AB8BFF"
	foreground = "161622"
	size       = 256
)

// InitialsURL returns a deterministic avatar URL rendering the user's
// initials. The host doubles as the marker distinguishing generated
// avatars from uploaded files.
func InitialsURL(name string) string {
	if name == "" {
		name = "?"
	}
	q := url.Values{}
	q.Set("name", name)
	q.Set("size", fmt.Sprintf("%d", size))
	q.Set("background", background)
	q.Set("color", foreground)
	return initialsHost + "?" + q.Encode()
}

// IsGenerated reports whether the URL points at the initials service
// rather than an uploaded file.
func IsGenerated(avatarURL string) bool {
	u, err := url.Parse(avatarURL)
	if err != nil {
		return false
	}
	return u.Host == "ui-avatars.com"
}
