package module

import (
	"context"

	"sitekit/internal/services/auth/domain"
)

// Ports returns the module ports
func (m *Module) Ports() any { return adaptAuthPort{m: m} }

type adaptAuthPort struct{ m *Module }

// UserFromToken resolves a session token to its account
func (a adaptAuthPort) UserFromToken(ctx context.Context, token string) (domain.Account, error) {
	return a.m.svc.UserFromToken(ctx, token)
}

// SweepSessions deactivates expired sessions
func (a adaptAuthPort) SweepSessions(ctx context.Context) (int64, error) {
	return a.m.svc.SweepSessions(ctx)
}
