package config

import (
	"testing"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/portal")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default ENV development, got %s", cfg.Env)
	}
	if cfg.PortalSchema != "portal" {
		t.Errorf("expected default schema portal, got %s", cfg.PortalSchema)
	}
	if cfg.DBMaxConns != 10 || cfg.DBMinConns != 2 {
		t.Errorf("unexpected pool defaults: max=%d min=%d", cfg.DBMaxConns, cfg.DBMinConns)
	}
	if !cfg.IsDev() {
		t.Error("expected IsDev() true for default env")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/portal")
	t.Setenv("ENV", "production")
	t.Setenv("PORTAL_SCHEMA", "portal_prod")
	t.Setenv("DB_MAX_CONNS", "40")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Env != "production" {
		t.Errorf("expected ENV production, got %s", cfg.Env)
	}
	if cfg.PortalSchema != "portal_prod" {
		t.Errorf("expected schema portal_prod, got %s", cfg.PortalSchema)
	}
	if cfg.DBMaxConns != 40 {
		t.Errorf("expected DB_MAX_CONNS 40, got %d", cfg.DBMaxConns)
	}
	if cfg.IsDev() {
		t.Error("expected IsDev() false in production")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{DatabaseURL: "postgres://x", PortalSchema: "portal", DBMaxConns: 10, DBMinConns: 2}, false},
		{"missing url", Config{PortalSchema: "portal", DBMaxConns: 10, DBMinConns: 2}, true},
		{"bad schema", Config{DatabaseURL: "postgres://x", PortalSchema: "portal; DROP TABLE users", DBMaxConns: 10, DBMinConns: 2}, true},
		{"inverted pool", Config{DatabaseURL: "postgres://x", PortalSchema: "portal", DBMaxConns: 1, DBMinConns: 5}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
