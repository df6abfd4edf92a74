package entities

import (
	"time"
)

// Session is the locally stored auth state.
type Session struct {
	Token     string
	User      *User
	ExpiresAt time.Time
}
