// Package service contains blog workflows
package service

import (
	"context"
	"sort"
	"strings"

	"sitekit/internal/modkit/repokit"
	pnet "sitekit/internal/platform/net"
	"sitekit/internal/services/blog/domain"
	"sitekit/internal/services/blog/repo"
)

// Service defines the blog service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the blog service
// posts come from the database, with sample content served while the table is empty
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a blog service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("blog.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("blog.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns published posts plus categories derived from them
func (s *Svc) List(ctx context.Context, limit, offset int) (domain.ListOutput, error) {
	posts, err := s.Repo.List(ctx, limit, offset)
	if err != nil {
		return domain.ListOutput{}, err
	}
	if len(posts) == 0 && offset == 0 {
		return domain.ListOutput{Posts: samplePosts(), Categories: sampleCategories()}, nil
	}
	return domain.ListOutput{Posts: posts, Categories: deriveCategories(posts)}, nil
}

// Get returns a single post, falling back to samples for an empty table
func (s *Svc) Get(ctx context.Context, id int64) (domain.Post, error) {
	p, err := s.Repo.ByID(ctx, id)
	if err == nil {
		return p, nil
	}
	for _, sp := range samplePosts() {
		if sp.ID == id {
			return sp, nil
		}
	}
	return domain.Post{}, err
}

// Search matches title, content and tags
func (s *Svc) Search(ctx context.Context, query string) ([]domain.Post, error) {
	posts, err := s.Repo.Search(ctx, query, 20)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		q := strings.ToLower(query)
		for _, sp := range samplePosts() {
			if strings.Contains(strings.ToLower(sp.Title), q) ||
				strings.Contains(strings.ToLower(sp.Excerpt), q) {
				posts = append(posts, sp)
			}
		}
	}
	return posts, nil
}

// ByCategory filters posts case insensitively on category
func (s *Svc) ByCategory(ctx context.Context, category string) ([]domain.Post, error) {
	posts, err := s.Repo.ByCategory(ctx, category, 100)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		for _, sp := range samplePosts() {
			if strings.EqualFold(sp.Category, category) {
				posts = append(posts, sp)
			}
		}
	}
	return posts, nil
}

// Create persists a post; author falls back to the request user or Guest
func (s *Svc) Create(ctx context.Context, in domain.CreatePostInput) (domain.Post, error) {
	if strings.TrimSpace(in.Author) == "" {
		if uid := pnet.UserID(ctx); uid != "" {
			in.Author = "user:" + uid
		} else {
			in.Author = "Guest"
		}
	}
	id, err := s.Repo.Insert(ctx, in)
	if err != nil {
		return domain.Post{}, err
	}
	return s.Repo.ByID(ctx, id)
}

func deriveCategories(posts []domain.Post) []domain.Category {
	counts := map[string]int64{}
	for _, p := range posts {
		c := p.Category
		if c == "" {
			c = "Uncategorized"
		}
		counts[c]++
	}
	out := make([]domain.Category, 0, len(counts))
	for name, n := range counts {
		out = append(out, domain.Category{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
