package domain

import "context"

// UserStorePort is the account persistence surface consumed by other modules
type UserStorePort interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error)
	UserByID(ctx context.Context, id int64) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByUsername(ctx context.Context, username string) (User, error)
	DeactivateUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context, limit, offset int) ([]User, error)
	SearchUsers(ctx context.Context, query string, limit int) ([]User, error)

	ProfileByUserID(ctx context.Context, userID int64) (Profile, error)
	UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) error
}

// SessionStorePort is the session persistence surface consumed by auth
type SessionStorePort interface {
	CreateSession(ctx context.Context, userID int64, token string, ttlSeconds int64) (Session, error)
	SessionByToken(ctx context.Context, token string) (Session, error)
	RevokeSession(ctx context.Context, token string) error
	SweepExpiredSessions(ctx context.Context) (int64, error)
}
