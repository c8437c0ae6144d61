package auth

import "time"

// TokenType is the scheme clients send the access token with.
const TokenType = "bearer"

// User is an account of the record store.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Credentials is the email/password pair of signup and login.
type Credentials struct {
	Email    string
	Password string
}

// Token is a signed access token.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}
