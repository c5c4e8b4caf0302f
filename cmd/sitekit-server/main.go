package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"sitekit/internal/app"
	"sitekit/internal/platform/config"
	"sitekit/internal/platform/logger"
)

// presets mirror the ready-made site configurations selectable via APP_TYPE
var presets = map[string]app.Options{
	"community": {
		SiteName:      "Tech Community",
		Theme:         "dark-modern",
		DashboardType: "blog",
		Features:      []string{"blog", "chat", "dashboard", "database", "auth"},
	},
	"portfolio": {
		SiteName:      "Creative Portfolio",
		Theme:         "light-professional",
		DashboardType: "gallery",
		Features:      []string{"blog", "dashboard", "database", "auth"},
	},
	"gaming": {
		SiteName:      "Gaming Hub",
		Theme:         "cyberpunk-neon",
		DashboardType: "chat",
		Features:      []string{"chat", "blog", "dashboard", "database", "auth"},
	},
	"full": {
		SiteName:      "Full Platform",
		Theme:         "dark-modern",
		DashboardType: "blog",
		Features:      []string{"blog", "chat", "dashboard", "database", "auth", "main", "contact"},
	},
	"blog": {
		SiteName:      "My Blog",
		Theme:         "light-professional",
		DashboardType: "blog",
		Features:      []string{"blog", "dashboard", "database", "auth"},
	},
}

func main() {
	// .env is optional, real env always wins
	_ = godotenv.Load()

	cfg := config.New()
	l := logger.Get()

	opts := app.FromConfig(cfg)
	if preset, ok := presets[cfg.MayString("APP_TYPE", "")]; ok {
		opts = preset
		l.Info().Str("app_type", cfg.MayString("APP_TYPE", "")).Msg("using preset configuration")
	}
	opts.EnableSwagger = cfg.Prefix("SITE_").MayBool("SWAGGER", true)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, opts)
	if err != nil {
		l.Fatal().Err(err).Msg("application construction failed")
	}
	defer func() {
		if err := a.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("shutdown failed")
		}
	}()

	go func() {
		<-ctx.Done()
		_ = a.Close(context.Background())
	}()

	if err := a.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		os.Exit(1)
	}
}
