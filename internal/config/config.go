package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig `yaml:"server"`

	// Storage configuration (CSV mirror + SQLite)
	Storage StorageConfig `yaml:"storage"`

	// Roster spreadsheet used to authorize web submissions
	Roster RosterConfig `yaml:"roster"`

	// Static assets (QR code)
	Static StaticConfig `yaml:"static"`

	// Logging configuration
	Log LogConfig `yaml:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	PublicURL       string        `yaml:"public_url"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StorageConfig holds CSV and SQLite settings
type StorageConfig struct {
	DataDir      string        `yaml:"data_dir"`
	CSVPath      string        `yaml:"csv_path"`
	DBPath       string        `yaml:"db_path"`
	EnableCSV    bool          `yaml:"enable_csv"`
	EnableSQLite bool          `yaml:"enable_sqlite"`
	BusyTimeout  time.Duration `yaml:"busy_timeout"`
}

// RosterConfig describes where the roster lives and which columns to read
type RosterConfig struct {
	Path         string `yaml:"path"`
	Sheet        string `yaml:"sheet"`
	NameColumn   string `yaml:"name_column"`
	NumberColumn string `yaml:"number_column"`
}

// StaticConfig holds static asset settings
type StaticConfig struct {
	Dir    string `yaml:"dir"`
	QRFile string `yaml:"qr_file"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "pretty"
}

// Defaults returns the built-in configuration before any file or environment overrides.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "5000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			DataDir:      "data",
			EnableCSV:    true,
			EnableSQLite: true,
			BusyTimeout:  5 * time.Second,
		},
		Roster: RosterConfig{
			NameColumn:   "Name",
			NumberColumn: "Staff Number",
		},
		Static: StaticConfig{
			Dir:    "static",
			QRFile: "qr_code.png",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from .env, an optional YAML file and environment variables.
// Precedence: environment > file > defaults. An empty path falls back to CONFIG_FILE.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	cfg.resolvePaths()

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Host = getEnv("HOST", c.Server.Host)
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.PublicURL = getEnv("PUBLIC_URL", c.Server.PublicURL)
	c.Server.ReadTimeout = getDurationEnv("SERVER_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getDurationEnv("SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.ShutdownTimeout = getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)

	c.Storage.DataDir = getEnv("DATA_DIR", c.Storage.DataDir)
	c.Storage.CSVPath = getEnv("CSV_PATH", c.Storage.CSVPath)
	c.Storage.DBPath = getEnv("DB_PATH", c.Storage.DBPath)
	c.Storage.EnableCSV = getBoolEnv("STORAGE_CSV", c.Storage.EnableCSV)
	c.Storage.EnableSQLite = getBoolEnv("STORAGE_SQLITE", c.Storage.EnableSQLite)
	c.Storage.BusyTimeout = getDurationEnv("DB_BUSY_TIMEOUT", c.Storage.BusyTimeout)

	c.Roster.Path = getEnv("ROSTER_PATH", c.Roster.Path)
	c.Roster.Sheet = getEnv("ROSTER_SHEET", c.Roster.Sheet)
	c.Roster.NameColumn = getEnv("ROSTER_NAME_COLUMN", c.Roster.NameColumn)
	c.Roster.NumberColumn = getEnv("ROSTER_NUMBER_COLUMN", c.Roster.NumberColumn)

	c.Static.Dir = getEnv("STATIC_DIR", c.Static.Dir)
	c.Static.QRFile = getEnv("QR_FILE", c.Static.QRFile)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
}

// resolvePaths fills file locations that default to DATA_DIR.
func (c *Config) resolvePaths() {
	if c.Storage.CSVPath == "" {
		c.Storage.CSVPath = filepath.Join(c.Storage.DataDir, "users.csv")
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = filepath.Join(c.Storage.DataDir, "staff.db")
	}
	if c.Roster.Path == "" {
		c.Roster.Path = filepath.Join(c.Storage.DataDir, "document.xlsx")
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !c.Storage.EnableCSV && !c.Storage.EnableSQLite {
		return errors.New("at least one of STORAGE_CSV or STORAGE_SQLITE must be enabled")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Server.Port)
	}
	if c.Roster.NameColumn == "" || c.Roster.NumberColumn == "" {
		return fmt.Errorf("roster column names are required")
	}
	if c.Static.QRFile == "" {
		return fmt.Errorf("QR_FILE is required")
	}
	return nil
}

// Addr returns the HTTP bind address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// QRPath returns the location of the generated QR image.
func (s StaticConfig) QRPath() string {
	return filepath.Join(s.Dir, s.QRFile)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
