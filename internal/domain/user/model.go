// Package user defines the user domain model built from upstream records.
package user

import "fmt"

const (
	// AvatarIndexRange is the number of distinct avatar images the
	// provider serves.
	AvatarIndexRange = 70

	// DefaultAvatarTemplate renders an avatar URL from an avatar index.
	DefaultAvatarTemplate = "https://i.pravatar.cc/150?img=%d"
)

// User is a member of the dashboard's user directory.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// AvatarIndex maps a user id onto the provider's avatar range. The mapping
// is stable so repeated ingestions assign the same avatar to the same user.
func AvatarIndex(id int) int {
	return (id % AvatarIndexRange) + 1
}

// AvatarURL renders the avatar URL for a user id. An empty template falls
// back to DefaultAvatarTemplate.
func AvatarURL(id int, template string) string {
	if template == "" {
		template = DefaultAvatarTemplate
	}
	return fmt.Sprintf(template, AvatarIndex(id))
}
