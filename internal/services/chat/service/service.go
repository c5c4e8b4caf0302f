// Package service contains chat workflows
// content is fixture data, there is no real time transport
package service

import (
	"context"
	"time"

	perr "sitekit/internal/platform/errors"
	pnet "sitekit/internal/platform/net"
	"sitekit/internal/services/chat/domain"
)

// Service defines the chat service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the chat service over fixtures
type Svc struct {
	now func() time.Time
}

// New constructs a chat service
func New() *Svc { return &Svc{now: time.Now} }

// Rooms lists the available chat rooms
func (s *Svc) Rooms(context.Context) ([]domain.Room, error) {
	return sampleRooms(), nil
}

// Room returns a room with its recent messages
func (s *Svc) Room(_ context.Context, id int64) (domain.RoomDetail, error) {
	for _, r := range sampleRooms() {
		if r.ID == id {
			return domain.RoomDetail{Room: r, Messages: sampleMessages()}, nil
		}
	}
	return domain.RoomDetail{}, perr.NotFoundf("room %d not found", id)
}

// Direct lists direct message conversations
func (s *Svc) Direct(context.Context) ([]domain.Conversation, error) {
	return sampleConversations(), nil
}

// Send accepts a message and echoes it back with a timestamp
func (s *Svc) Send(ctx context.Context, in domain.SendInput) (domain.SendOutput, error) {
	if in.RoomID == 0 {
		in.RoomID = 1
	}
	username := "You"
	if uid := pnet.UserID(ctx); uid != "" {
		username = "user:" + uid
	}
	return domain.SendOutput{
		Success:   true,
		Message:   in.Message,
		Timestamp: s.now().Format("3:04 PM"),
		Username:  username,
		RoomID:    in.RoomID,
	}, nil
}
