// Package repo provides sqlite access for accounts, profiles and sessions
package repo

import (
	"context"
	"strings"
	"time"

	"sitekit/internal/modkit/repokit"
	perr "sitekit/internal/platform/errors"
	"sitekit/internal/services/database/domain"
)

// Users is the persistence surface for accounts and profiles
type Users interface {
	domain.UserStorePort
}

// Sessions is the persistence surface for login sessions
type Sessions interface {
	domain.SessionStorePort
}

type (
	// SQLite is a binder that can bind the repos to a Queryer or TxRunner
	SQLite struct{}

	queries struct{ q repokit.Queryer }
)

// NewSQLite returns a binder for the users repo
func NewSQLite() repokit.Binder[Users] { return SQLite{} }

// Bind wires a Queryer to the users repo
func (SQLite) Bind(q repokit.Queryer) Users { return &queries{q: q} }

// NewSessionsSQLite returns a binder for the sessions repo
func NewSessionsSQLite() repokit.Binder[Sessions] {
	return repokit.BindFunc[Sessions](func(q repokit.Queryer) Sessions { return &queries{q: q} })
}

// sqlite stores DATETIME defaults as "YYYY-MM-DD HH:MM:SS" in UTC
const sqliteTime = "2006-01-02 15:04:05"

func parseTime(s string) time.Time {
	if t, err := time.Parse(sqliteTime, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

func (r *queries) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	const ins = `
insert into users (username, email, password_hash)
values (?, ?, ?)
`
	if _, err := r.q.Exec(ctx, ins, username, email, passwordHash); err != nil {
		return 0, perr.MapDB(err, "users.create")
	}

	var id int64
	if err := r.q.QueryRow(ctx, `select id from users where email = ?`, email).Scan(&id); err != nil {
		return 0, perr.MapDB(err, "users.create")
	}

	// default empty profile row, mirrors account creation
	if _, err := r.q.Exec(ctx, `insert into user_profiles (user_id) values (?)`, id); err != nil {
		return 0, perr.MapDB(err, "users.create_profile")
	}
	return id, nil
}

const userCols = `id, username, email, password_hash, created_at, updated_at, is_active`

func (r *queries) scanUser(row repokit.Row) (domain.User, error) {
	var (
		u                  domain.User
		createdAt, updated string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &createdAt, &updated, &u.IsActive); err != nil {
		return domain.User{}, err
	}
	u.CreatedAt = parseTime(createdAt)
	u.UpdatedAt = parseTime(updated)
	return u, nil
}

func (r *queries) userBy(ctx context.Context, where string, arg any) (domain.User, error) {
	row := r.q.QueryRow(ctx, `select `+userCols+` from users where `+where+` and is_active = 1`, arg)
	u, err := r.scanUser(row)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return domain.User{}, perr.NotFoundf("user not found")
		}
		return domain.User{}, perr.MapDB(err, "users.get")
	}
	return u, nil
}

func (r *queries) UserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.userBy(ctx, "id = ?", id)
}

func (r *queries) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.userBy(ctx, "email = ?", email)
}

func (r *queries) UserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.userBy(ctx, "username = ?", username)
}

// DeactivateUser soft deletes by flipping is_active
func (r *queries) DeactivateUser(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `update users set is_active = 0, updated_at = datetime('now') where id = ?`, id)
	if err != nil {
		return perr.MapDB(err, "users.deactivate")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("user %d not found", id)
	}
	return nil
}

func (r *queries) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 100
	}
	const sql = `
select id, username, email, password_hash, created_at, updated_at, is_active
from users
where is_active = 1
order by created_at desc
limit ? offset ?
`
	rows, err := r.q.Query(ctx, sql, limit, offset)
	if err != nil {
		return nil, perr.MapDB(err, "users.list")
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, perr.MapDB(err, "users.list")
		}
		out = append(out, u)
	}
	return out, perr.WrapIf(rows.Err(), perr.ErrorCodeDB, "users.list")
}

func (r *queries) SearchUsers(ctx context.Context, query string, limit int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 50
	}
	const sql = `
select id, username, email, password_hash, created_at, updated_at, is_active
from users
where is_active = 1 and (username like ? or email like ?)
order by username asc
limit ?
`
	pat := "%" + query + "%"
	rows, err := r.q.Query(ctx, sql, pat, pat, limit)
	if err != nil {
		return nil, perr.MapDB(err, "users.search")
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, perr.MapDB(err, "users.search")
		}
		out = append(out, u)
	}
	return out, perr.WrapIf(rows.Err(), perr.ErrorCodeDB, "users.search")
}

func (r *queries) ProfileByUserID(ctx context.Context, userID int64) (domain.Profile, error) {
	const sql = `
select id, user_id, coalesce(first_name, ''), coalesce(last_name, ''),
       coalesce(bio, ''), coalesce(avatar_url, ''), created_at, updated_at
from user_profiles
where user_id = ?
`
	var (
		p                  domain.Profile
		createdAt, updated string
	)
	err := r.q.QueryRow(ctx, sql, userID).
		Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Bio, &p.AvatarURL, &createdAt, &updated)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return domain.Profile{}, perr.NotFoundf("profile for user %d not found", userID)
		}
		return domain.Profile{}, perr.MapDB(err, "profiles.get")
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updated)
	return p, nil
}

func (r *queries) UpdateProfile(ctx context.Context, userID int64, upd domain.ProfileUpdate) error {
	set := make([]string, 0, 5)
	args := make([]any, 0, 5)
	if upd.FirstName != nil {
		set = append(set, "first_name = ?")
		args = append(args, *upd.FirstName)
	}
	if upd.LastName != nil {
		set = append(set, "last_name = ?")
		args = append(args, *upd.LastName)
	}
	if upd.Bio != nil {
		set = append(set, "bio = ?")
		args = append(args, *upd.Bio)
	}
	if upd.AvatarURL != nil {
		set = append(set, "avatar_url = ?")
		args = append(args, *upd.AvatarURL)
	}
	if len(set) == 0 {
		return nil
	}
	set = append(set, "updated_at = datetime('now')")
	args = append(args, userID)

	tag, err := r.q.Exec(ctx, `update user_profiles set `+strings.Join(set, ", ")+` where user_id = ?`, args...)
	if err != nil {
		return perr.MapDB(err, "profiles.update")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("profile for user %d not found", userID)
	}
	return nil
}
