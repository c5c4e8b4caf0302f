// Package service contains auth workflows
package service

import (
	"context"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	perr "sitekit/internal/platform/errors"
	"sitekit/internal/services/auth/domain"
	dbdomain "sitekit/internal/services/database/domain"
)

// Service defines the auth service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the auth service against the database module ports
type Svc struct {
	users      dbdomain.UserStorePort
	sessions   dbdomain.SessionStorePort
	sessionTTL int64
}

// New constructs an auth service
// sessionTTL is in seconds; zero falls back to seven days
func New(users dbdomain.UserStorePort, sessions dbdomain.SessionStorePort, sessionTTL int64) *Svc {
	if users == nil {
		panic("auth.Service requires a non nil user store")
	}
	if sessions == nil {
		panic("auth.Service requires a non nil session store")
	}
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * 3600
	}
	return &Svc{users: users, sessions: sessions, sessionTTL: sessionTTL}
}

// checkPasswordStrength enforces minimum length plus upper, lower and digit
func checkPasswordStrength(pw string) error {
	if len(pw) < 8 {
		return perr.Newf(perr.ErrorCodeValidation, "password must be at least 8 characters long")
	}
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper {
		return perr.Newf(perr.ErrorCodeValidation, "password must contain at least one uppercase letter")
	}
	if !lower {
		return perr.Newf(perr.ErrorCodeValidation, "password must contain at least one lowercase letter")
	}
	if !digit {
		return perr.Newf(perr.ErrorCodeValidation, "password must contain at least one number")
	}
	return nil
}

// Register creates an account with a bcrypt hash
func (s *Svc) Register(ctx context.Context, in domain.RegisterInput) (domain.Account, error) {
	if in.Password != in.ConfirmPassword {
		return domain.Account{}, perr.Newf(perr.ErrorCodeValidation, "passwords do not match")
	}
	if err := checkPasswordStrength(in.Password); err != nil {
		return domain.Account{}, err
	}

	if _, err := s.users.UserByEmail(ctx, in.Email); err == nil {
		return domain.Account{}, perr.Conflictf("email already registered")
	} else if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return domain.Account{}, err
	}
	if _, err := s.users.UserByUsername(ctx, in.Username); err == nil {
		return domain.Account{}, perr.Conflictf("username already taken")
	} else if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return domain.Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Account{}, perr.Wrap(err, perr.ErrorCodeUnknown, "password hash failed")
	}

	id, err := s.users.CreateUser(ctx, in.Username, in.Email, string(hash))
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
			return domain.Account{}, perr.Conflictf("account already exists")
		}
		return domain.Account{}, err
	}
	return domain.Account{ID: id, Username: in.Username, Email: in.Email}, nil
}

// Login verifies credentials and opens a session
// returns the account and the session token for the cookie
func (s *Svc) Login(ctx context.Context, in domain.LoginInput) (domain.Account, string, error) {
	u, err := s.users.UserByEmail(ctx, in.Email)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Account{}, "", perr.Unauthorizedf("invalid email or password")
		}
		return domain.Account{}, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return domain.Account{}, "", perr.Unauthorizedf("invalid email or password")
	}

	token := uuid.NewString()
	if _, err := s.sessions.CreateSession(ctx, u.ID, token, s.sessionTTL); err != nil {
		return domain.Account{}, "", err
	}
	return domain.Account{ID: u.ID, Username: u.Username, Email: u.Email}, token, nil
}

// Logout revokes the session token; unknown tokens are not an error
func (s *Svc) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.RevokeSession(ctx, token)
}

// UserFromToken resolves an active unexpired session to its account
func (s *Svc) UserFromToken(ctx context.Context, token string) (domain.Account, error) {
	if token == "" {
		return domain.Account{}, perr.Unauthorizedf("no session")
	}
	sess, err := s.sessions.SessionByToken(ctx, token)
	if err != nil {
		return domain.Account{}, err
	}
	if sess.Expired() {
		return domain.Account{}, perr.Unauthorizedf("session expired")
	}
	u, err := s.users.UserByID(ctx, sess.UserID)
	if err != nil {
		return domain.Account{}, err
	}
	return domain.Account{ID: u.ID, Username: u.Username, Email: u.Email}, nil
}

// SweepSessions deactivates expired sessions, used by the periodic sweeper
func (s *Svc) SweepSessions(ctx context.Context) (int64, error) {
	return s.sessions.SweepExpiredSessions(ctx)
}
