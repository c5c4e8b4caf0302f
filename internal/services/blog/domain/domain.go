// Package domain holds blog types and ports
package domain

import "context"

// Post is a blog entry
type Post struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content,omitempty"`
	Excerpt       string   `json:"excerpt,omitempty"`
	Author        string   `json:"author"`
	Category      string   `json:"category,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	FeaturedImage string   `json:"featured_image,omitempty"`
	Views         int64    `json:"views"`
	Comments      int64    `json:"comments"`
	Published     bool     `json:"published"`
	Date          string   `json:"date"`
}

// Category is a post grouping with its post count
type Category struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// CreatePostInput is the authenticated write payload
type CreatePostInput struct {
	Title    string   `json:"title"    validate:"required,min=1,max=200"`
	Content  string   `json:"content"  validate:"required"`
	Author   string   `json:"author"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// ListOutput bundles posts with their derived categories
type ListOutput struct {
	Posts      []Post     `json:"posts"`
	Categories []Category `json:"categories"`
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context, limit, offset int) (ListOutput, error)
	Get(ctx context.Context, id int64) (Post, error)
	Search(ctx context.Context, query string) ([]Post, error)
	ByCategory(ctx context.Context, category string) ([]Post, error)
	Create(ctx context.Context, in CreatePostInput) (Post, error)
}
