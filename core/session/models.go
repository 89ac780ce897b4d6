package session

import "time"

// Session is an open workspace. There is at most one register per process, whoever logs in.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	StartedAt time.Time `json:"started_at"` // UTC
}

// LoginRequest holds the login form.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
