package repo

import (
	"context"
	"strings"
	"time"

	perr "sitekit/internal/platform/errors"
	"sitekit/internal/services/database/domain"
)

func (r *queries) CreateSession(ctx context.Context, userID int64, token string, ttlSeconds int64) (domain.Session, error) {
	expires := time.Now().UTC().Add(time.Duration(ttlSeconds) * time.Second)
	const ins = `
insert into user_sessions (user_id, session_token, expires_at)
values (?, ?, ?)
`
	if _, err := r.q.Exec(ctx, ins, userID, token, expires.Format(sqliteTime)); err != nil {
		return domain.Session{}, perr.MapDB(err, "sessions.create")
	}
	return r.SessionByToken(ctx, token)
}

func (r *queries) SessionByToken(ctx context.Context, token string) (domain.Session, error) {
	const sql = `
select id, user_id, session_token, created_at, expires_at, is_active
from user_sessions
where session_token = ? and is_active = 1
`
	var (
		s                  domain.Session
		createdAt, expires string
	)
	err := r.q.QueryRow(ctx, sql, token).Scan(&s.ID, &s.UserID, &s.Token, &createdAt, &expires, &s.IsActive)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return domain.Session{}, perr.Unauthorizedf("session not found")
		}
		return domain.Session{}, perr.MapDB(err, "sessions.get")
	}
	s.CreatedAt = parseTime(createdAt)
	s.ExpiresAt = parseTime(expires)
	return s, nil
}

// RevokeSession flips is_active so the token stops resolving
func (r *queries) RevokeSession(ctx context.Context, token string) error {
	_, err := r.q.Exec(ctx, `update user_sessions set is_active = 0 where session_token = ?`, token)
	return perr.WrapIf(err, perr.ErrorCodeDB, "sessions.revoke")
}

// SweepExpiredSessions deactivates every session past its expiry
func (r *queries) SweepExpiredSessions(ctx context.Context) (int64, error) {
	tag, err := r.q.Exec(ctx,
		`update user_sessions set is_active = 0 where is_active = 1 and expires_at < datetime('now')`)
	if err != nil {
		return 0, perr.MapDB(err, "sessions.sweep")
	}
	return tag.RowsAffected(), nil
}
