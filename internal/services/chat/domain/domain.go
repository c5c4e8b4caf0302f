// Package domain holds chat types and ports
package domain

import "context"

// Room is a group chat channel
type Room struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	UsersOnline  int    `json:"users_online"`
	LastMessage  string `json:"last_message,omitempty"`
	LastActivity string `json:"last_activity,omitempty"`
}

// Message is a single chat message
type Message struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Message      string `json:"message"`
	Timestamp    string `json:"timestamp"`
	IsOwnMessage bool   `json:"is_own_message"`
}

// RoomDetail is a room with its recent messages
type RoomDetail struct {
	Room     Room      `json:"room"`
	Messages []Message `json:"messages"`
}

// Conversation is a direct message thread summary
type Conversation struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	LastMessage string `json:"last_message"`
	Timestamp   string `json:"timestamp"`
	UnreadCount int    `json:"unread_count"`
	Online      bool   `json:"online"`
}

// SendInput is the message payload
type SendInput struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
	RoomID  int64  `json:"room_id"`
}

// SendOutput echoes the accepted message
type SendOutput struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Username  string `json:"username"`
	RoomID    int64  `json:"room_id"`
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Rooms(ctx context.Context) ([]Room, error)
	Room(ctx context.Context, id int64) (RoomDetail, error)
	Direct(ctx context.Context) ([]Conversation, error)
	Send(ctx context.Context, in SendInput) (SendOutput, error)
}
