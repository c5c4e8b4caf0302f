package repo

import (
	"context"

	"sitekit/internal/modkit/repokit"
	perr "sitekit/internal/platform/errors"
)

// schema statements are idempotent so startup can apply them every boot
var schema = []string{
	`create table if not exists users (
	id integer primary key autoincrement,
	username text unique not null,
	email text unique not null,
	password_hash text not null,
	created_at datetime default current_timestamp,
	updated_at datetime default current_timestamp,
	is_active boolean default 1
)`,
	`create table if not exists user_sessions (
	id integer primary key autoincrement,
	user_id integer not null,
	session_token text unique not null,
	created_at datetime default current_timestamp,
	expires_at datetime not null,
	is_active boolean default 1,
	foreign key (user_id) references users (id)
)`,
	`create table if not exists user_profiles (
	id integer primary key autoincrement,
	user_id integer unique not null,
	first_name text,
	last_name text,
	bio text,
	avatar_url text,
	created_at datetime default current_timestamp,
	updated_at datetime default current_timestamp,
	foreign key (user_id) references users (id)
)`,
	`create table if not exists posts (
	id integer primary key autoincrement,
	title text not null,
	content text not null,
	author text,
	category text,
	tags text,
	featured_image text,
	views integer default 0,
	comments integer default 0,
	published boolean default 1,
	created_at datetime default current_timestamp,
	updated_at datetime default current_timestamp
)`,
	`create index if not exists idx_sessions_token on user_sessions (session_token)`,
	`create index if not exists idx_posts_category on posts (category)`,
}

// InitSchema applies the full schema against the given queryer
func InitSchema(ctx context.Context, q repokit.Queryer) error {
	for _, ddl := range schema {
		if _, err := q.Exec(ctx, ddl); err != nil {
			return perr.Wrap(err, perr.ErrorCodeDB, "schema init failed")
		}
	}
	return nil
}
