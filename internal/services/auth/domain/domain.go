// Package domain holds auth inputs, views and ports
package domain

import "context"

// RegisterInput is the account creation payload
type RegisterInput struct {
	Username        string `json:"username"         validate:"required,min=3,max=32"`
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginInput is the credential payload
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Account is the public view of a user
type Account struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Guest is the fallback identity when no session resolves
var Guest = Account{Username: "Guest"}

// CurrentUser is what the me endpoint returns
type CurrentUser struct {
	Account
	SignedIn bool `json:"signed_in"`
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Register(ctx context.Context, in RegisterInput) (Account, error)
	Login(ctx context.Context, in LoginInput) (Account, string, error)
	Logout(ctx context.Context, token string) error
	UserFromToken(ctx context.Context, token string) (Account, error)
	SweepSessions(ctx context.Context) (int64, error)
}
