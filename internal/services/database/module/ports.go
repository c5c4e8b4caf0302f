package module

import (
	"sitekit/internal/modkit/repokit"
	dbrepo "sitekit/internal/services/database/repo"
)

// Ports exposes the storage surfaces other modules consume
type Ports struct {
	DB       repokit.TxRunner
	Users    dbrepo.Users
	Sessions dbrepo.Sessions
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
