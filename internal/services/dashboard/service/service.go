// Package service contains dashboard workflows
package service

import (
	"context"

	"sitekit/internal/services/dashboard/domain"
)

// Service defines the dashboard service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the dashboard service over per variant fixtures
type Svc struct {
	// defaultType is the configured variant used when the request names none
	defaultType domain.Type
}

// New constructs a dashboard service with its configured default variant
func New(defaultType domain.Type) *Svc {
	if !defaultType.Valid() {
		defaultType = domain.TypeDefault
	}
	return &Svc{defaultType: defaultType}
}

// DefaultType returns the configured variant
func (s *Svc) DefaultType() domain.Type { return s.defaultType }

// Dashboard returns stats and recent activity for the variant
// an empty or unknown type falls back to the configured default
func (s *Svc) Dashboard(_ context.Context, t domain.Type) (domain.View, error) {
	if !t.Valid() {
		t = s.defaultType
	}

	switch t {
	case domain.TypeChat:
		return domain.View{
			Type: t,
			Stats: map[string]any{
				"total_messages":  247,
				"active_chats":    5,
				"unread_messages": 3,
				"online_friends":  12,
			},
			RecentActivity: []domain.Activity{
				{Title: "General Chat", Description: "Join the community discussion", Timestamp: "2 minutes ago", Type: "chat"},
				{Title: "Tech Talk", Description: "Latest programming discussions", Timestamp: "15 minutes ago", Type: "chat"},
			},
		}, nil

	case domain.TypeGallery:
		return domain.View{
			Type: t,
			Stats: map[string]any{
				"total_photos": 342,
				"albums":       8,
				"favorites":    23,
				"storage_used": "67%",
			},
			RecentActivity: []domain.Activity{
				{Title: "Vacation 2025", Description: "Beach photos from summer trip", Timestamp: "1 hour ago", Type: "photo"},
				{Title: "City Lights", Description: "Night photography collection", Timestamp: "3 hours ago", Type: "photo"},
			},
		}, nil

	case domain.TypeBlog:
		return domain.View{
			Type: t,
			Stats: map[string]any{
				"total_posts": 24,
				"draft_posts": 3,
				"total_views": 1847,
				"comments":    89,
			},
			RecentActivity: []domain.Activity{
				{
					Title:       "Getting Started with Python",
					Description: "A comprehensive guide for beginners to learn Python programming",
					Timestamp:   "2 hours ago",
					Views:       156, Comments: 12, Type: "blog",
				},
				{
					Title:       "Web Development Best Practices",
					Description: "Essential tips and tricks for modern web development",
					Timestamp:   "1 day ago",
					Views:       234, Comments: 18, Type: "blog",
				},
				{
					Title:       "Database Design Fundamentals",
					Description: "Understanding the principles of good database architecture",
					Timestamp:   "3 days ago",
					Views:       189, Comments: 7, Type: "blog",
				},
			},
		}, nil

	default:
		// item tracker dashboard
		return domain.View{
			Type: domain.TypeDefault,
			Stats: map[string]any{
				"total_items":     15,
				"active_items":    8,
				"pending_items":   4,
				"completed_items": 3,
			},
			RecentActivity: []domain.Activity{
				{Title: "Welcome!", Description: "Dashboard loaded successfully", Timestamp: "Just now", Type: "system"},
			},
		}, nil
	}
}
