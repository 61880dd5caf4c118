package model

import "time"

// User represents a registered account in the database.
// AuthHash holds the Argon2id credential hash and is never serialized.
type User struct {
	ID        int64
	Username  string
	Email     string
	AuthHash  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned from register and login: a fresh token plus the
// caller's public profile.
type AuthResponse struct {
	Token    string `json:"token"`
	ID       int64  `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserResponse represents user data safe for API responses (no credential hash).
type UserResponse struct {
	ID        int64     `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
