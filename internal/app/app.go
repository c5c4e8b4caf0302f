// Package app assembles feature modules into a runnable web service
package app

import (
	"context"

	"github.com/robfig/cron/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	modkit "sitekit/internal/modkit"
	"sitekit/internal/modkit/featureset"
	"sitekit/internal/modkit/httpkit"
	"sitekit/internal/modkit/module"
	"sitekit/internal/modkit/swaggerkit"
	"sitekit/internal/platform/config"
	perr "sitekit/internal/platform/errors"
	"sitekit/internal/platform/logger"
	phttp "sitekit/internal/platform/net/http"
	"sitekit/internal/core/version"
	"sitekit/internal/platform/store"

	authmod "sitekit/internal/services/auth/module"
	authsvc "sitekit/internal/services/auth/service"
	blogmod "sitekit/internal/services/blog/module"
	chatmod "sitekit/internal/services/chat/module"
	contactmod "sitekit/internal/services/contact/module"
	dashdomain "sitekit/internal/services/dashboard/domain"
	dashmod "sitekit/internal/services/dashboard/module"
	dbmod "sitekit/internal/services/database/module"
	mainmod "sitekit/internal/services/mainsite/module"
	metamod "sitekit/internal/services/meta/module"

	authhttp "sitekit/internal/services/auth/http"
)

// App is the assembled application
type App struct {
	log    logger.Logger
	opts   Options
	store  *store.Store
	server *phttp.Server
	cron   *cron.Cron

	resolution featureset.Resolution
}

// New resolves the requested features, constructs every module in dependency
// order and mounts routed modules under /api/v1. A failed resolution aborts
// construction without partially initializing any feature
func New(ctx context.Context, cfg config.Conf, opts Options) (*App, error) {
	log := logger.Named("app")
	opts = opts.merge(FromConfig(cfg))

	requested := make([]featureset.Feature, 0, len(opts.Features))
	for _, f := range opts.Features {
		requested = append(requested, featureset.Feature(f))
	}

	res := featureset.Resolve(DependencyTable(), requested)
	if res.Failed() {
		for _, p := range res.Problems {
			ev := log.Error().Str("kind", problemKind(p)).Str("feature", string(p.Feature))
			if len(p.Cycle) > 0 {
				ev = ev.Interface("cycle", p.Cycle)
			}
			ev.Msg("feature resolution problem")
		}
		return nil, perr.FeatureSetf("feature resolution failed with %d problem(s)", len(res.Problems))
	}

	autoAdded := res.AutoAdded(requested)
	log.Info().
		Interface("requested", requested).
		Interface("resolved", res.Features).
		Interface("auto_added", autoAdded).
		Msg("feature dependency analysis")
	for _, w := range res.Warnings {
		log.Warn().
			Str("feature", string(w.Feature)).
			Str("required_by", string(w.RequiredBy)).
			Msg("auto-added dependency")
	}

	a := &App{log: *log, opts: opts, resolution: res}

	// open storage only when the database feature resolved
	if res.Has(FeatureDatabase) {
		st, err := store.Open(ctx, store.Config{SQLite: store.SQLiteConfig{
			Enabled:       true,
			Path:          opts.DBPath,
			BusyTimeoutMs: cfg.Prefix("DB_").MayInt("BUSY_TIMEOUT_MS", 5000),
			SlowQueryMs:   cfg.Prefix("DB_").MayInt("SLOW_QUERY_MS", 200),
			LogSQL:        cfg.Prefix("DB_").MayBool("LOG_SQL", false),
		}}, store.WithLogger(*logger.Named("store")))
		if err != nil {
			return nil, err
		}
		a.store = st
	}

	deps := modkit.Deps{Log: *log, Cfg: cfg}
	if a.store != nil {
		deps.DB = a.store.DB
	}

	mods, auth, err := a.buildModules(ctx, deps, cfg)
	if err != nil {
		a.closeStore(ctx)
		return nil, err
	}

	a.server = phttp.NewServer(cfg)
	root := a.server.Router()

	stack := httpkit.CommonStack(opts.CORSOrigins...)
	if auth != nil {
		// session resolution runs for every API request so handlers can read
		// the user id off the context
		stack = append(stack, authhttp.CurrentUser(auth))
	}

	swaggerkit.SetInfo(opts.SiteName+" API", version.Info().Version)
	httpkit.MountAPIV1(root, stack, func(api httpkit.Router) {
		swaggerkit.Mount(root, opts.EnableSwagger)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
			log.Info().Str("module", titleCase(m.Name())).Msg("routes registered")
		}
	})

	if auth != nil {
		a.startSweeper(cfg, auth)
	}

	return a, nil
}

var titler = cases.Title(language.English)

func titleCase(s string) string { return titler.String(s) }

func problemKind(p featureset.Problem) string {
	if p.Kind == featureset.ProblemCycle {
		return "cycle"
	}
	return "unknown"
}

// buildModules constructs modules in resolver emitted order so backend ports
// exist before the features that consume them
func (a *App) buildModules(
	ctx context.Context,
	deps modkit.Deps,
	cfg config.Conf,
) ([]module.Module, authsvc.Service, error) {
	var (
		mods    []module.Module
		dbPorts dbmod.Ports
		auth    authsvc.Service
	)

	requireUser := authhttp.RequireUser()

	for _, f := range a.resolution.Features {
		switch f {
		case FeatureDatabase:
			m, err := dbmod.New(ctx, deps)
			if err != nil {
				return nil, nil, err
			}
			dbPorts = module.MustPortsOf[dbmod.Ports](m)
			mods = append(mods, m)

		case FeatureAuth:
			m := authmod.New(deps, modkit.WithPorts(authmod.StorePorts{
				Users:    dbPorts.Users,
				Sessions: dbPorts.Sessions,
			}))
			auth = m.Service()
			mods = append(mods, m)

		case FeatureBlog:
			mods = append(mods, blogmod.New(deps, modkit.WithPorts(blogmod.Wiring{
				DB:          dbPorts.DB,
				RequireUser: requireUser,
			})))

		case FeatureChat:
			mods = append(mods, chatmod.New(deps))

		case FeatureDashboard:
			mods = append(mods, dashmod.New(deps,
				modkit.WithPorts(dashdomain.Type(a.opts.DashboardType))))

		case FeatureMain:
			mods = append(mods, mainmod.New(deps))

		case FeatureContact:
			mods = append(mods, contactmod.New(deps))
		}
	}

	// meta is always present, it reports what the factory assembled
	features := make([]string, 0, len(a.resolution.Features))
	for _, f := range a.resolution.Features {
		features = append(features, string(f))
	}
	requested := a.opts.Features
	var auto []string
	for _, f := range a.resolution.AutoAdded(featuresOf(requested)) {
		auto = append(auto, string(f))
	}

	var dbSeam any
	if a.store != nil {
		dbSeam = a.store.DB
	}
	mods = append(mods, metamod.New(deps, modkit.WithPorts(metamod.Info{
		SiteName:      a.opts.SiteName,
		Theme:         a.opts.Theme,
		DashboardType: a.opts.DashboardType,
		Features:      features,
		Requested:     requested,
		AutoAdded:     auto,
		DB:            dbSeam,
	})))

	return mods, auth, nil
}

func featuresOf(names []string) []featureset.Feature {
	out := make([]featureset.Feature, 0, len(names))
	for _, n := range names {
		out = append(out, featureset.Feature(n))
	}
	return out
}

// startSweeper deactivates expired sessions on a schedule
func (a *App) startSweeper(cfg config.Conf, auth authsvc.Service) {
	spec := cfg.Prefix("AUTH_").MayString("SWEEP_SCHEDULE", "@every 10m")
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		n, err := auth.SweepSessions(context.Background())
		if err != nil {
			a.log.Warn().Err(err).Msg("session sweep failed")
			return
		}
		if n > 0 {
			a.log.Info().Int64("revoked", n).Msg("expired sessions swept")
		}
	})
	if err != nil {
		a.log.Warn().Err(err).Str("schedule", spec).Msg("session sweeper not started")
		return
	}
	c.Start()
	a.cron = c
}

// Router exposes the root router, mainly for tests
func (a *App) Router() phttp.Router { return a.server.Router() }

// Resolution returns the feature resolution the app was built from
func (a *App) Resolution() featureset.Resolution { return a.resolution }

// Run starts the HTTP server and blocks until it stops
func (a *App) Run(ctx context.Context) error { return a.server.Run(ctx) }

// Close shuts the server, sweeper and store down
func (a *App) Close(ctx context.Context) error {
	if a.cron != nil {
		a.cron.Stop()
	}
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	return a.closeStore(ctx)
}

func (a *App) closeStore(ctx context.Context) error {
	if a.store == nil {
		return nil
	}
	return a.store.Close(ctx)
}
