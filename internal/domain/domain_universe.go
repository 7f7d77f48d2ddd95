package domain

import "time"

// Universe is the top-level container owning entities
// Universe 是拥有条目的顶层容器
type Universe struct {
	ID          int64
	Name        string
	Description string
	ImageURL    string
	CreatedAt   time.Time
}

// HasImage reports whether a cover image is attached
func (u *Universe) HasImage() bool {
	return u.ImageURL != ""
}
