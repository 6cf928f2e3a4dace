package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:5000" {
		t.Errorf("Expected default addr 0.0.0.0:5000, got %s", cfg.Server.Addr())
	}
	if cfg.Storage.CSVPath != filepath.Join("data", "users.csv") {
		t.Errorf("Unexpected CSV path %s", cfg.Storage.CSVPath)
	}
	if cfg.Storage.DBPath != filepath.Join("data", "staff.db") {
		t.Errorf("Unexpected DB path %s", cfg.Storage.DBPath)
	}
	if cfg.Roster.Path != filepath.Join("data", "document.xlsx") {
		t.Errorf("Unexpected roster path %s", cfg.Roster.Path)
	}
	if cfg.Static.QRPath() != filepath.Join("static", "qr_code.png") {
		t.Errorf("Unexpected QR path %s", cfg.Static.QRPath())
	}
	if !cfg.Storage.EnableCSV || !cfg.Storage.EnableSQLite {
		t.Error("Both stores should be enabled by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8081")
	t.Setenv("DATA_DIR", "/tmp/intake")
	t.Setenv("STORAGE_CSV", "false")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("ROSTER_NAME_COLUMN", "Employee")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:8081" {
		t.Errorf("Expected 127.0.0.1:8081, got %s", cfg.Server.Addr())
	}
	if cfg.Storage.DBPath != filepath.Join("/tmp/intake", "staff.db") {
		t.Errorf("DB path should follow DATA_DIR, got %s", cfg.Storage.DBPath)
	}
	if cfg.Storage.EnableCSV {
		t.Error("STORAGE_CSV=false should disable the CSV store")
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("Expected read timeout 3s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Roster.NameColumn != "Employee" {
		t.Errorf("Expected roster name column Employee, got %s", cfg.Roster.NameColumn)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intake.yaml")
	content := `
server:
  port: "9000"
  shutdown_timeout: 2s
storage:
  csv_path: /srv/intake/out.csv
roster:
  sheet: Staff
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	// Environment still wins over the file.
	t.Setenv("HOST", "10.0.0.5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr() != "10.0.0.5:9000" {
		t.Errorf("Expected 10.0.0.5:9000, got %s", cfg.Server.Addr())
	}
	if cfg.Server.ShutdownTimeout != 2*time.Second {
		t.Errorf("Expected shutdown timeout 2s, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Storage.CSVPath != "/srv/intake/out.csv" {
		t.Errorf("Unexpected CSV path %s", cfg.Storage.CSVPath)
	}
	if cfg.Roster.Sheet != "Staff" {
		t.Errorf("Expected sheet Staff, got %s", cfg.Roster.Sheet)
	}
	// Untouched keys keep their defaults.
	if cfg.Roster.NumberColumn != "Staff Number" {
		t.Errorf("Expected default number column, got %s", cfg.Roster.NumberColumn)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{
			name: "both stores disabled",
			mutate: func(c *Config) {
				c.Storage.EnableCSV = false
				c.Storage.EnableSQLite = false
			},
			wantErr: true,
		},
		{name: "non-numeric port", mutate: func(c *Config) { c.Server.Port = "http" }, wantErr: true},
		{name: "empty roster column", mutate: func(c *Config) { c.Roster.NumberColumn = "" }, wantErr: true},
		{name: "csv only", mutate: func(c *Config) { c.Storage.EnableSQLite = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
