package service

import "sitekit/internal/services/chat/domain"

func sampleRooms() []domain.Room {
	return []domain.Room{
		{
			ID:           1,
			Name:         "General",
			Description:  "General discussion for everyone",
			UsersOnline:  12,
			LastMessage:  "Welcome to the chat!",
			LastActivity: "2 minutes ago",
		},
		{
			ID:           2,
			Name:         "Tech Talk",
			Description:  "Programming and technology discussions",
			UsersOnline:  8,
			LastMessage:  "Anyone working with Python?",
			LastActivity: "5 minutes ago",
		},
		{
			ID:           3,
			Name:         "Random",
			Description:  "Off-topic conversations",
			UsersOnline:  15,
			LastMessage:  "Coffee or tea?",
			LastActivity: "1 minute ago",
		},
	}
}

func sampleMessages() []domain.Message {
	return []domain.Message{
		{ID: 1, Username: "Alice", Message: "Hey everyone!", Timestamp: "10:30 AM"},
		{ID: 2, Username: "Bob", Message: "How is everyone doing today?", Timestamp: "10:32 AM"},
		{ID: 3, Username: "You", Message: "Great! Just joined the chat", Timestamp: "10:35 AM", IsOwnMessage: true},
	}
}

func sampleConversations() []domain.Conversation {
	return []domain.Conversation{
		{ID: 1, Username: "Alice", LastMessage: "Thanks for the help!", Timestamp: "5 min ago", UnreadCount: 2, Online: true},
		{ID: 2, Username: "Bob", LastMessage: "See you tomorrow", Timestamp: "1 hour ago"},
	}
}
