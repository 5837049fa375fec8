package entity

import "time"

// Session is a logged-in browser session stored server-side.
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
}
