package service

import (
	"context"
	"testing"
	"time"

	perr "sitekit/internal/platform/errors"
	kit "sitekit/internal/platform/testkit"
	"sitekit/internal/services/auth/domain"
	dbdomain "sitekit/internal/services/database/domain"
)

// in memory stores standing in for the database module ports

type fakeUsers struct {
	nextID int64
	byID   map[int64]dbdomain.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{nextID: 1, byID: map[int64]dbdomain.User{}}
}

func (f *fakeUsers) CreateUser(_ context.Context, username, email, hash string) (int64, error) {
	for _, u := range f.byID {
		if u.Email == email || u.Username == username {
			return 0, perr.DuplicateKeyf("user exists")
		}
	}
	id := f.nextID
	f.nextID++
	f.byID[id] = dbdomain.User{ID: id, Username: username, Email: email, PasswordHash: hash, IsActive: true}
	return id, nil
}

func (f *fakeUsers) UserByID(_ context.Context, id int64) (dbdomain.User, error) {
	if u, ok := f.byID[id]; ok && u.IsActive {
		return u, nil
	}
	return dbdomain.User{}, perr.NotFoundf("user not found")
}

func (f *fakeUsers) UserByEmail(_ context.Context, email string) (dbdomain.User, error) {
	for _, u := range f.byID {
		if u.Email == email && u.IsActive {
			return u, nil
		}
	}
	return dbdomain.User{}, perr.NotFoundf("user not found")
}

func (f *fakeUsers) UserByUsername(_ context.Context, username string) (dbdomain.User, error) {
	for _, u := range f.byID {
		if u.Username == username && u.IsActive {
			return u, nil
		}
	}
	return dbdomain.User{}, perr.NotFoundf("user not found")
}

func (f *fakeUsers) DeactivateUser(_ context.Context, id int64) error {
	u, ok := f.byID[id]
	if !ok {
		return perr.NotFoundf("user %d not found", id)
	}
	u.IsActive = false
	f.byID[id] = u
	return nil
}

func (f *fakeUsers) ListUsers(context.Context, int, int) ([]dbdomain.User, error) { return nil, nil }
func (f *fakeUsers) SearchUsers(context.Context, string, int) ([]dbdomain.User, error) {
	return nil, nil
}
func (f *fakeUsers) ProfileByUserID(context.Context, int64) (dbdomain.Profile, error) {
	return dbdomain.Profile{}, perr.NotFoundf("no profile")
}
func (f *fakeUsers) UpdateProfile(context.Context, int64, dbdomain.ProfileUpdate) error { return nil }

type fakeSessions struct {
	byToken map[string]dbdomain.Session
}

func newFakeSessions() *fakeSessions { return &fakeSessions{byToken: map[string]dbdomain.Session{}} }

func (f *fakeSessions) CreateSession(_ context.Context, userID int64, token string, ttl int64) (dbdomain.Session, error) {
	s := dbdomain.Session{
		ID:        int64(len(f.byToken) + 1),
		UserID:    userID,
		Token:     token,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(time.Duration(ttl) * time.Second),
		IsActive:  true,
	}
	f.byToken[token] = s
	return s, nil
}

func (f *fakeSessions) SessionByToken(_ context.Context, token string) (dbdomain.Session, error) {
	if s, ok := f.byToken[token]; ok && s.IsActive {
		return s, nil
	}
	return dbdomain.Session{}, perr.Unauthorizedf("session not found")
}

func (f *fakeSessions) RevokeSession(_ context.Context, token string) error {
	if s, ok := f.byToken[token]; ok {
		s.IsActive = false
		f.byToken[token] = s
	}
	return nil
}

func (f *fakeSessions) SweepExpiredSessions(context.Context) (int64, error) {
	var n int64
	for tok, s := range f.byToken {
		if s.IsActive && time.Now().UTC().After(s.ExpiresAt) {
			s.IsActive = false
			f.byToken[tok] = s
			n++
		}
	}
	return n, nil
}

func newTestService() (*Svc, *fakeUsers, *fakeSessions) {
	users := newFakeUsers()
	sessions := newFakeSessions()
	return New(users, sessions, 3600), users, sessions
}

func registerInput() domain.RegisterInput {
	return domain.RegisterInput{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "Sup3rSecret",
		ConfirmPassword: "Sup3rSecret",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	acct, err := svc.Register(ctx, registerInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if acct.ID == 0 || acct.Username != "alice" {
		t.Fatalf("account = %+v", acct)
	}

	got, token, err := svc.Login(ctx, domain.LoginInput{Email: "alice@example.com", Password: "Sup3rSecret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("login returned empty token")
	}
	if got.ID != acct.ID {
		t.Fatalf("login account = %+v", got)
	}

	resolved, err := svc.UserFromToken(ctx, token)
	if err != nil {
		t.Fatalf("user from token: %v", err)
	}
	if resolved.Email != "alice@example.com" {
		t.Fatalf("resolved = %+v", resolved)
	}
}

func TestRegisterRejectsWeakPasswords(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	cases := []string{
		"short1A",       // too short
		"alllowercase1", // no uppercase
		"ALLUPPERCASE1", // no lowercase
		"NoDigitsHere",  // no number
	}
	for _, pw := range cases {
		in := registerInput()
		in.Password, in.ConfirmPassword = pw, pw
		if _, err := svc.Register(ctx, in); !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("password %q: err = %v, want validation error", pw, err)
		}
	}
}

func TestRegisterRejectsMismatchedConfirmation(t *testing.T) {
	svc, _, _ := newTestService()
	in := registerInput()
	in.ConfirmPassword = "Different1"

	if _, err := svc.Register(context.Background(), in); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	if _, err := svc.Register(ctx, registerInput()); !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("duplicate email: err = %v, want conflict", err)
	}

	in := registerInput()
	in.Email = "other@example.com"
	if _, err := svc.Register(ctx, in); !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("duplicate username: err = %v, want conflict", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(ctx, domain.LoginInput{Email: "alice@example.com", Password: "WrongPass1"}); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("wrong password: err = %v, want unauthorized", err)
	}
	if _, _, err := svc.Login(ctx, domain.LoginInput{Email: "nobody@example.com", Password: "Sup3rSecret"}); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("unknown email: err = %v, want unauthorized", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, token, err := svc.Login(ctx, domain.LoginInput{Email: "alice@example.com", Password: "Sup3rSecret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.UserFromToken(ctx, token); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("revoked token resolved: err = %v", err)
	}
}

func TestUserFromTokenRejectsExpired(t *testing.T) {
	svc, _, sessions := newTestService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, token, err := svc.Login(ctx, domain.LoginInput{Email: "alice@example.com", Password: "Sup3rSecret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// force expiry
	s := sessions.byToken[token]
	s.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	sessions.byToken[token] = s

	if _, err := svc.UserFromToken(ctx, token); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expired token resolved: err = %v", err)
	}

	n, err := svc.SweepSessions(ctx)
	if err != nil || n != 1 {
		t.Fatalf("sweep = (%d, %v), want (1, nil)", n, err)
	}
}

func TestNewPanicsOnNilStores(t *testing.T) {
	kit.MustPanic(t, func() { New(nil, newFakeSessions(), 0) })
	kit.MustPanic(t, func() { New(newFakeUsers(), nil, 0) })
}
