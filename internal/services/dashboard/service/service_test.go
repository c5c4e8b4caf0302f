package service

import (
	"context"
	"testing"

	"sitekit/internal/services/dashboard/domain"
)

func TestDashboardVariants(t *testing.T) {
	svc := New(domain.TypeDefault)
	ctx := context.Background()

	cases := []struct {
		typ      domain.Type
		statKey  string
		activity string
	}{
		{domain.TypeDefault, "total_items", "Welcome!"},
		{domain.TypeChat, "total_messages", "General Chat"},
		{domain.TypeBlog, "total_posts", "Getting Started with Python"},
		{domain.TypeGallery, "total_photos", "Vacation 2025"},
	}
	for _, c := range cases {
		v, err := svc.Dashboard(ctx, c.typ)
		if err != nil {
			t.Fatalf("dashboard(%s): %v", c.typ, err)
		}
		if v.Type != c.typ {
			t.Fatalf("type = %s, want %s", v.Type, c.typ)
		}
		if _, ok := v.Stats[c.statKey]; !ok {
			t.Fatalf("dashboard(%s) missing stat %q: %+v", c.typ, c.statKey, v.Stats)
		}
		if len(v.RecentActivity) == 0 || v.RecentActivity[0].Title != c.activity {
			t.Fatalf("dashboard(%s) activity = %+v", c.typ, v.RecentActivity)
		}
	}
}

func TestDashboardFallsBackToConfiguredDefault(t *testing.T) {
	svc := New(domain.TypeChat)

	v, err := svc.Dashboard(context.Background(), "")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if v.Type != domain.TypeChat {
		t.Fatalf("type = %s, want chat", v.Type)
	}

	v, err = svc.Dashboard(context.Background(), "bogus")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if v.Type != domain.TypeChat {
		t.Fatalf("unknown type resolved to %s, want chat", v.Type)
	}
}

func TestNewRejectsInvalidDefault(t *testing.T) {
	svc := New("nope")
	if svc.DefaultType() != domain.TypeDefault {
		t.Fatalf("default = %s, want %s", svc.DefaultType(), domain.TypeDefault)
	}
}
