package app

import (
	"sitekit/internal/platform/config"
)

// Options configure the assembled application
// zero values fall back to SITE_* environment defaults in FromConfig
type Options struct {
	SiteName      string
	Theme         string
	DashboardType string

	// Features is the requested feature list; dependencies resolve automatically
	Features []string

	// DBPath is the sqlite file location, used when the database feature is active
	DBPath string

	CORSOrigins []string

	EnableSwagger bool
}

// FromConfig builds Options from SITE_* environment variables
// caller supplied literals on the returned struct override env values
func FromConfig(cfg config.Conf) Options {
	site := cfg.Prefix("SITE_")
	return Options{
		SiteName:      site.MayString("NAME", "Unnamed Project"),
		Theme:         site.MayString("THEME", "light-professional"),
		DashboardType: site.MayString("DASHBOARD_TYPE", "default"),
		Features:      site.MayCSV("FEATURES", []string{"dashboard", "database"}),
		DBPath:        site.MayString("DB_PATH", "instance/app.db"),
		CORSOrigins:   site.MayCSV("CORS_ORIGINS", nil),
		EnableSwagger: site.MayBool("SWAGGER", true),
	}
}

// merge fills empty fields of o from defaults
func (o Options) merge(def Options) Options {
	if o.SiteName == "" {
		o.SiteName = def.SiteName
	}
	if o.Theme == "" {
		o.Theme = def.Theme
	}
	if o.DashboardType == "" {
		o.DashboardType = def.DashboardType
	}
	if len(o.Features) == 0 {
		o.Features = def.Features
	}
	if o.DBPath == "" {
		o.DBPath = def.DBPath
	}
	if len(o.CORSOrigins) == 0 {
		o.CORSOrigins = def.CORSOrigins
	}
	return o
}
