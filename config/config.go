package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendSheets   = "sheets"
	BackendXLSX     = "xlsx"
	BackendDatabase = "database"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Timezone string         `yaml:"timezone"`

	Location *time.Location `yaml:"-"`
}

// ServerConfig holds the server-related configuration. RequestIPHeader names
// the header a reverse proxy puts the client address in, e.g. X-Real-IP.
type ServerConfig struct {
	Port                int           `yaml:"port"`
	RequestIPHeader     string        `yaml:"request_ip_header"`
	RateLimitPerSec     float64       `yaml:"rate_limit_per_sec"`
	RateLimitBurst      int           `yaml:"rate_limit_burst"`
	DedupeWindowSeconds int           `yaml:"dedupe_window_seconds"`
	DedupeWindow        time.Duration `yaml:"-"` // Ignored by YAML parser
}

// StoreConfig selects and configures the tabular store backend.
type StoreConfig struct {
	Backend     string       `yaml:"backend"`
	InitHeaders bool         `yaml:"init_headers"`
	Tables      TablesConfig `yaml:"tables"`
	Sheets      SheetsConfig `yaml:"sheets"`
	XLSX        XLSXConfig   `yaml:"xlsx"`
}

// TablesConfig names the three tables inside the store.
type TablesConfig struct {
	Equipment   string `yaml:"equipment"`
	Maintenance string `yaml:"maintenance"`
	Damage      string `yaml:"damage"`
}

// SheetsConfig addresses a Google spreadsheet. SpreadsheetName is only used
// when SpreadsheetID is empty.
type SheetsConfig struct {
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	SpreadsheetName string `yaml:"spreadsheet_name"`
	CredentialsPath string `yaml:"credentials_path"`
	CredentialsJSON string `yaml:"credentials_json"`
}

// XLSXConfig points at a local workbook. An empty path keeps it in memory.
type XLSXConfig struct {
	Path string `yaml:"path"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"`
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every default applied, backed by an
// in-memory workbook.
func Default() *Config {
	cfg := &Config{}
	cfg.Store.Backend = BackendXLSX
	if err := cfg.applyDefaults(); err != nil {
		cfg.Location = time.Local
	}
	return cfg
}

func (cfg *Config) applyDefaults() error {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.DedupeWindowSeconds <= 0 {
		cfg.Server.DedupeWindowSeconds = 5
	}
	cfg.Server.DedupeWindow = time.Duration(cfg.Server.DedupeWindowSeconds) * time.Second

	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = BackendSheets
	}
	switch cfg.Store.Backend {
	case BackendSheets, BackendXLSX, BackendDatabase:
	default:
		return fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	if cfg.Store.Tables.Equipment == "" {
		cfg.Store.Tables.Equipment = "Equipamentos"
	}
	if cfg.Store.Tables.Maintenance == "" {
		cfg.Store.Tables.Maintenance = "Manutencoes"
	}
	if cfg.Store.Tables.Damage == "" {
		cfg.Store.Tables.Damage = "Avarias"
	}

	sheets := &cfg.Store.Sheets
	if sheets.CredentialsPath == "" {
		sheets.CredentialsPath = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")
	}
	if sheets.CredentialsJSON == "" {
		sheets.CredentialsJSON = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_JSON")
	}
	if sheets.SpreadsheetID == "" {
		sheets.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")
	}
	if sheets.SpreadsheetID == "" && sheets.SpreadsheetName == "" {
		sheets.SpreadsheetName = "Controle_Meios_Organicos_Deposito"
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == "sqlite" {
		cfg.Database.DSN = "file:equipment.db?cache=shared"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Encoding == "" {
		cfg.Log.Encoding = "console"
	}

	if cfg.Timezone == "" {
		cfg.Timezone = "America/Sao_Paulo"
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	return nil
}
