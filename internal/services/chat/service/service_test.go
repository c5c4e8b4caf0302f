package service

import (
	"context"
	"testing"
	"time"

	perr "sitekit/internal/platform/errors"
	pnet "sitekit/internal/platform/net"
	"sitekit/internal/services/chat/domain"
)

func TestRooms(t *testing.T) {
	svc := New()

	rooms, err := svc.Rooms(context.Background())
	if err != nil {
		t.Fatalf("rooms: %v", err)
	}
	if len(rooms) != 3 {
		t.Fatalf("rooms = %d, want 3", len(rooms))
	}
	if rooms[0].Name != "General" {
		t.Fatalf("first room = %q", rooms[0].Name)
	}
}

func TestRoomWithMessages(t *testing.T) {
	svc := New()

	detail, err := svc.Room(context.Background(), 2)
	if err != nil {
		t.Fatalf("room: %v", err)
	}
	if detail.Room.Name != "Tech Talk" {
		t.Fatalf("room = %+v", detail.Room)
	}
	if len(detail.Messages) == 0 {
		t.Fatalf("messages missing")
	}

	if _, err := svc.Room(context.Background(), 99); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing room: err = %v", err)
	}
}

func TestDirectConversations(t *testing.T) {
	svc := New()

	convs, err := svc.Direct(context.Background())
	if err != nil {
		t.Fatalf("direct: %v", err)
	}
	if len(convs) != 2 || convs[0].Username != "Alice" {
		t.Fatalf("conversations = %+v", convs)
	}
}

func TestSendEchoesMessage(t *testing.T) {
	svc := New()
	svc.now = func() time.Time { return time.Date(2025, 11, 5, 14, 7, 0, 0, time.UTC) }

	out, err := svc.Send(context.Background(), domain.SendInput{Message: "hello"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !out.Success || out.Message != "hello" {
		t.Fatalf("out = %+v", out)
	}
	if out.Timestamp != "2:07 PM" {
		t.Fatalf("timestamp = %q", out.Timestamp)
	}
	if out.RoomID != 1 {
		t.Fatalf("room id defaulted to %d, want 1", out.RoomID)
	}
	if out.Username != "You" {
		t.Fatalf("username = %q, want You", out.Username)
	}
}

func TestSendUsesRequestUser(t *testing.T) {
	svc := New()

	ctx := pnet.WithUser(context.Background(), "7")
	out, err := svc.Send(ctx, domain.SendInput{Message: "hi", RoomID: 3})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if out.Username != "user:7" {
		t.Fatalf("username = %q, want user:7", out.Username)
	}
	if out.RoomID != 3 {
		t.Fatalf("room id = %d, want 3", out.RoomID)
	}
}
