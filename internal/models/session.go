package models

import (
	"strings"
	"time"
)

// SessionUser is the signed-in account as returned by the backend login.
type SessionUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

func (u SessionUser) FullName() string {
	return strings.TrimSpace(u.Firstname + " " + u.Lastname)
}

// Session is stored in Redis for the lifetime of a login.
// Token always carries the "Bearer " prefix.
type Session struct {
	ID        string      `json:"id"`
	User      SessionUser `json:"user"`
	Token     string      `json:"token"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      SessionUser `json:"user"`
}
