package service

import "sitekit/internal/services/blog/domain"

// sample content served until real posts exist
func samplePosts() []domain.Post {
	return []domain.Post{
		{
			ID:            1,
			Title:         "Getting Started with Python",
			Excerpt:       "A comprehensive guide for beginners to learn Python programming from scratch.",
			Author:        "John Doe",
			Date:          "2025-11-05",
			Category:      "Programming",
			Tags:          []string{"python", "beginner", "tutorial"},
			Views:         234,
			Comments:      12,
			FeaturedImage: "/static/blog1.jpg",
			Published:     true,
		},
		{
			ID:            2,
			Title:         "Web Development Best Practices",
			Excerpt:       "Essential tips and tricks for modern web development that every developer should know.",
			Author:        "Jane Smith",
			Date:          "2025-11-04",
			Category:      "Web Development",
			Tags:          []string{"web", "best-practices", "tips"},
			Views:         189,
			Comments:      8,
			FeaturedImage: "/static/blog2.jpg",
			Published:     true,
		},
		{
			ID:            3,
			Title:         "Database Design Fundamentals",
			Excerpt:       "Understanding the principles of good database architecture and design patterns.",
			Author:        "Mike Johnson",
			Date:          "2025-11-03",
			Category:      "Database",
			Tags:          []string{"database", "design", "sql"},
			Views:         156,
			Comments:      5,
			FeaturedImage: "/static/blog3.jpg",
			Published:     true,
		},
	}
}

func sampleCategories() []domain.Category {
	return []domain.Category{
		{Name: "Programming", Count: 8},
		{Name: "Web Development", Count: 6},
		{Name: "Database", Count: 4},
		{Name: "Tutorials", Count: 12},
		{Name: "Reviews", Count: 3},
	}
}
