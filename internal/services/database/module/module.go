// Package module wires the storage backend as a routeless modkit module
package module

import (
	"context"

	modkit "sitekit/internal/modkit"
	"sitekit/internal/modkit/httpkit"
	"sitekit/internal/modkit/repokit"
	perr "sitekit/internal/platform/errors"
	str "sitekit/internal/platform/strings"
	dbrepo "sitekit/internal/services/database/repo"
)

// Module owns the sqlite schema and exposes persistence ports
// it mounts no routes
type Module struct {
	deps  modkit.Deps
	name  string
	ports Ports
}

// New constructs the database module and applies the schema
func New(ctx context.Context, deps modkit.Deps, opts ...modkit.Option) (*Module, error) {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("database")}, opts...)...)

	if deps.DB == nil {
		return nil, perr.Unavailablef("database module requires an open sqlite store")
	}
	if err := dbrepo.InitSchema(ctx, deps.DB); err != nil {
		return nil, err
	}

	m := &Module{
		deps: deps,
		name: b.Name,
		ports: Ports{
			DB:       deps.DB,
			Users:    dbrepo.NewSQLite().Bind(deps.DB),
			Sessions: repokit.MustBind(dbrepo.NewSessionsSQLite(), deps.DB),
		},
	}
	return m, nil
}

// MountRoutes is a no op, the database module is backend only
func (m *Module) MountRoutes(httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }
