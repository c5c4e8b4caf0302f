package service

import (
	"context"
	"strings"
	"testing"

	"sitekit/internal/modkit/repokit"
	perr "sitekit/internal/platform/errors"
	pnet "sitekit/internal/platform/net"
	kit "sitekit/internal/platform/testkit"
	"sitekit/internal/services/blog/domain"
	"sitekit/internal/services/blog/repo"
)

// fakeRepo is an in memory posts table
type fakeRepo struct {
	nextID int64
	posts  []domain.Post
}

func (f *fakeRepo) Insert(_ context.Context, in domain.CreatePostInput) (int64, error) {
	f.nextID++
	f.posts = append(f.posts, domain.Post{
		ID:        f.nextID,
		Title:     in.Title,
		Content:   in.Content,
		Author:    in.Author,
		Category:  in.Category,
		Tags:      in.Tags,
		Published: true,
	})
	return f.nextID, nil
}

func (f *fakeRepo) List(_ context.Context, limit, offset int) ([]domain.Post, error) {
	if offset >= len(f.posts) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(f.posts) {
		end = len(f.posts)
	}
	return f.posts[offset:end], nil
}

func (f *fakeRepo) ByID(_ context.Context, id int64) (domain.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Post{}, perr.NotFoundf("post %d not found", id)
}

func (f *fakeRepo) Search(_ context.Context, query string, _ int) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range f.posts {
		if strings.Contains(strings.ToLower(p.Title), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) ByCategory(_ context.Context, category string, _ int) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range f.posts {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

// nopTx satisfies repokit.TxRunner for construction, queries go to the fake
type nopTx struct{}

func (nopTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (nopTx) Query(context.Context, string, ...any) (repokit.Rows, error)     { return nil, nil }
func (nopTx) QueryRow(context.Context, string, ...any) repokit.Row            { return nil }
func (nopTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error  { return fn(nopTx{}) }

func newTestService(f *fakeRepo) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f })
	return New(nopTx{}, binder)
}

func TestListFallsBackToSamples(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	out, err := svc.List(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out.Posts) != 3 {
		t.Fatalf("sample posts = %d, want 3", len(out.Posts))
	}
	if out.Posts[0].Title != "Getting Started with Python" {
		t.Fatalf("first sample = %q", out.Posts[0].Title)
	}
	if len(out.Categories) == 0 {
		t.Fatalf("sample categories missing")
	}
}

func TestListPrefersStoredPosts(t *testing.T) {
	f := &fakeRepo{}
	svc := newTestService(f)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreatePostInput{
		Title: "Go Modules", Content: "body", Author: "dev", Category: "Go",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := svc.List(ctx, 20, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out.Posts) != 1 || out.Posts[0].Title != "Go Modules" {
		t.Fatalf("posts = %+v", out.Posts)
	}
	if len(out.Categories) != 1 || out.Categories[0].Name != "Go" {
		t.Fatalf("categories = %+v", out.Categories)
	}
}

func TestGetFallsBackToSampleByID(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	p, err := svc.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Title != "Web Development Best Practices" {
		t.Fatalf("post = %+v", p)
	}

	if _, err := svc.Get(context.Background(), 999); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing post: err = %v", err)
	}
}

func TestSearchMatchesSamplesWhenEmpty(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	posts, err := svc.Search(context.Background(), "python")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != 1 {
		t.Fatalf("posts = %+v", posts)
	}
}

func TestByCategoryCaseInsensitive(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	posts, err := svc.ByCategory(context.Background(), "programming")
	if err != nil {
		t.Fatalf("by category: %v", err)
	}
	if len(posts) != 1 || posts[0].Category != "Programming" {
		t.Fatalf("posts = %+v", posts)
	}
}

func TestCreateDefaultsAuthor(t *testing.T) {
	f := &fakeRepo{}
	svc := newTestService(f)

	p, err := svc.Create(context.Background(), domain.CreatePostInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Author != "Guest" {
		t.Fatalf("author = %q, want Guest", p.Author)
	}

	ctx := pnet.WithUser(context.Background(), "42")
	p, err = svc.Create(ctx, domain.CreatePostInput{Title: "t2", Content: "c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Author != "user:42" {
		t.Fatalf("author = %q, want user:42", p.Author)
	}
}

func TestNewPanicsOnNilDeps(t *testing.T) {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return &fakeRepo{} })
	kit.MustPanic(t, func() { New(nil, binder) })
	kit.MustPanic(t, func() { New(nopTx{}, nil) })
}
