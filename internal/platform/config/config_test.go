package config

import (
	"testing"
	"time"

	kit "sitekit/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	site := root.Prefix("SITE_")
	if got := site.key("NAME"); got != "SITE_NAME" {
		t.Fatalf("key() = %q, want %q", got, "SITE_NAME")
	}
	// nested prefix
	siteDB := site.Prefix("DB_")
	if got := siteDB.key("PATH"); got != "SITE_DB_PATH" {
		t.Fatalf("nested key() = %q, want %q", got, "SITE_DB_PATH")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  sitekit ")
	got := c.MustString("NAME")
	if got != "sitekit" {
		t.Fatalf("MustString = %q, want %q", got, "sitekit")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_WORKERS", "  8 ")
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d, want %d", got, 8)
	}
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestMustPort(t *testing.T) {
	c := New().Prefix("HTTP_")
	t.Setenv("HTTP_PORT", "8080")
	if got := c.MustPort("PORT"); got != ":8080" {
		t.Fatalf("MustPort = %q, want %q", got, ":8080")
	}
	t.Setenv("HTTP_BAD", "99999")
	kit.MustPanic(t, func() { _ = c.MustPort("BAD") })
}

// May* defaults

func TestMayString(t *testing.T) {
	c := New().Prefix("M_")
	if got := c.MayString("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("M_SET", "value")
	if got := c.MayString("SET", "fallback"); got != "value" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMayIntInvalidFallsBack(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_NUM", "not-a-number")
	if got := c.MayInt("NUM", 7); got != 7 {
		t.Fatalf("MayInt invalid = %d, want default 7", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_FLAG", "true")
	if !c.MayBool("FLAG", false) {
		t.Fatalf("MayBool true expected")
	}
	if c.MayBool("MISSING", false) {
		t.Fatalf("MayBool default false expected")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_TIMEOUT", "250ms")
	if got := c.MayDuration("TIMEOUT", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("MISSING", time.Second); got != time.Second {
		t.Fatalf("MayDuration default = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_FEATURES", "blog, chat , ,dashboard")
	got := c.MayCSV("FEATURES", nil)
	want := []string{"blog", "chat", "dashboard"}
	if len(got) != len(want) {
		t.Fatalf("MayCSV = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_TYPE", "chat")
	if got := c.MayEnum("TYPE", "default", "default", "chat", "blog"); got != "chat" {
		t.Fatalf("MayEnum = %q", got)
	}
	if got := c.MayEnum("MISSING", "default", "default", "chat"); got != "default" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("M_WRONG", "nope")
	kit.MustPanic(t, func() { _ = c.MayEnum("WRONG", "default", "default", "chat") })
}
