// Package domain holds dashboard types and ports
package domain

import "context"

// Type selects the dashboard variant
type Type string

// Known dashboard variants
const (
	TypeDefault Type = "default"
	TypeChat    Type = "chat"
	TypeBlog    Type = "blog"
	TypeGallery Type = "gallery"
)

// Valid reports whether t names a known variant
func (t Type) Valid() bool {
	switch t {
	case TypeDefault, TypeChat, TypeBlog, TypeGallery:
		return true
	}
	return false
}

// Activity is a recent activity entry
type Activity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	Type        string `json:"type"`
	Views       int64  `json:"views,omitempty"`
	Comments    int64  `json:"comments,omitempty"`
}

// View is the dashboard payload for a given variant
type View struct {
	Type           Type           `json:"type"`
	Stats          map[string]any `json:"stats"`
	RecentActivity []Activity     `json:"recent_activity"`
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Dashboard(ctx context.Context, t Type) (View, error)
}
