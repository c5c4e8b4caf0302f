// Package repo provides sqlite access for blog posts
package repo

import (
	"context"
	"strings"

	"sitekit/internal/modkit/repokit"
	perr "sitekit/internal/platform/errors"
	"sitekit/internal/services/blog/domain"
)

// Repo is the minimal persistence surface for blog posts
type Repo interface {
	Insert(ctx context.Context, in domain.CreatePostInput) (int64, error)
	List(ctx context.Context, limit, offset int) ([]domain.Post, error)
	ByID(ctx context.Context, id int64) (domain.Post, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Post, error)
	ByCategory(ctx context.Context, category string, limit int) ([]domain.Post, error)
}

type (
	// SQLite is a binder that can bind the repo to a Queryer or TxRunner
	SQLite struct{}

	queries struct{ q repokit.Queryer }
)

// NewSQLite returns a binder that can bind the repo to a Queryer or TxRunner
func NewSQLite() repokit.Binder[Repo] { return SQLite{} }

// Bind wires a Queryer to the repo
func (SQLite) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const postCols = `id, title, content, coalesce(author, ''), coalesce(category, ''),
coalesce(tags, ''), coalesce(featured_image, ''), views, comments, published,
substr(created_at, 1, 10)`

func scanPost(row repokit.Row) (domain.Post, error) {
	var (
		p    domain.Post
		tags string
	)
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.Category,
		&tags, &p.FeaturedImage, &p.Views, &p.Comments, &p.Published, &p.Date)
	if err != nil {
		return domain.Post{}, err
	}
	// tags persist as a comma joined string
	for _, t := range strings.Split(tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			p.Tags = append(p.Tags, t)
		}
	}
	return p, nil
}

func (r *queries) collect(rows repokit.Rows, op string) ([]domain.Post, error) {
	defer rows.Close()
	var out []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, perr.MapDB(err, op)
		}
		out = append(out, p)
	}
	return out, perr.WrapIf(rows.Err(), perr.ErrorCodeDB, op)
}

func (r *queries) Insert(ctx context.Context, in domain.CreatePostInput) (int64, error) {
	const ins = `
insert into posts (title, content, author, category, tags)
values (?, ?, ?, ?, ?)
`
	tags := strings.Join(in.Tags, ",")
	if _, err := r.q.Exec(ctx, ins, in.Title, in.Content, in.Author, in.Category, tags); err != nil {
		return 0, perr.MapDB(err, "posts.insert")
	}
	var id int64
	if err := r.q.QueryRow(ctx, `select max(id) from posts`).Scan(&id); err != nil {
		return 0, perr.MapDB(err, "posts.insert")
	}
	return id, nil
}

func (r *queries) List(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	if limit <= 0 {
		limit = 20
	}
	const sql = `
select ` + postCols + `
from posts
where published = 1
order by created_at desc
limit ? offset ?
`
	rows, err := r.q.Query(ctx, sql, limit, offset)
	if err != nil {
		return nil, perr.MapDB(err, "posts.list")
	}
	return r.collect(rows, "posts.list")
}

func (r *queries) ByID(ctx context.Context, id int64) (domain.Post, error) {
	row := r.q.QueryRow(ctx, `select `+postCols+` from posts where id = ?`, id)
	p, err := scanPost(row)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return domain.Post{}, perr.NotFoundf("post %d not found", id)
		}
		return domain.Post{}, perr.MapDB(err, "posts.get")
	}
	return p, nil
}

func (r *queries) Search(ctx context.Context, query string, limit int) ([]domain.Post, error) {
	if limit <= 0 {
		limit = 20
	}
	const sql = `
select ` + postCols + `
from posts
where published = 1 and (title like ? or content like ? or tags like ?)
order by created_at desc
limit ?
`
	pat := "%" + query + "%"
	rows, err := r.q.Query(ctx, sql, pat, pat, pat, limit)
	if err != nil {
		return nil, perr.MapDB(err, "posts.search")
	}
	return r.collect(rows, "posts.search")
}

func (r *queries) ByCategory(ctx context.Context, category string, limit int) ([]domain.Post, error) {
	if limit <= 0 {
		limit = 100
	}
	const sql = `
select ` + postCols + `
from posts
where published = 1 and lower(category) = lower(?)
order by created_at desc
limit ?
`
	rows, err := r.q.Query(ctx, sql, category, limit)
	if err != nil {
		return nil, perr.MapDB(err, "posts.by_category")
	}
	return r.collect(rows, "posts.by_category")
}
