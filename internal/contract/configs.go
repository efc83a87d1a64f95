package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/Nemesis2003/smartci-backend/schema"
)

// Default values for configuration.
const (
	DefaultListenAddr     = ":8000"
	DefaultRequestTimeout = 5 * time.Minute
)

// Config holds the runtime configuration for the service and CLI.
// This struct remains the "final, validated" config.
type Config struct {
	ListenAddr      string
	RequestTimeout  time.Duration
	AnalyzerCommand string

	Output     schema.OutputMode
	OutputFile string

	RunsBackend   schema.DatabaseBackend
	RunsDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
	Width     int  // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	Addr          string `mapstructure:"addr"`
	Timeout       string `mapstructure:"timeout"`
	Analyzer      string `mapstructure:"analyzer"`
	Output        string `mapstructure:"output"`
	OutputFile    string `mapstructure:"output-file"`
	RunsBackend   string `mapstructure:"runs-backend"`
	RunsDBConnect string `mapstructure:"runs-db-connect"`
	Color         string `mapstructure:"color"`
	Width         int    `mapstructure:"width"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Listen address ---
	cfg.ListenAddr = strings.TrimSpace(input.Addr)
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}

	// --- 2. Request timeout ---
	cfg.RequestTimeout = DefaultRequestTimeout
	if input.Timeout != "" {
		d, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid --timeout value '%s': %w", input.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive (received %s)", d)
		}
		cfg.RequestTimeout = d
	}

	// --- 3. Analyzer command ---
	cfg.AnalyzerCommand = strings.TrimSpace(input.Analyzer)
	if cfg.AnalyzerCommand == "" {
		cfg.AnalyzerCommand = DefaultAnalyzerCommand
	}

	// --- 4. Output validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	// --- 5. Runs backend validation ---
	cfg.RunsBackend = schema.DatabaseBackend(strings.ToLower(input.RunsBackend))
	if cfg.RunsBackend == "" {
		cfg.RunsBackend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.RunsBackend]; !ok {
		return fmt.Errorf("invalid runs backend '%s'. must be sqlite, mysql, postgresql, none", input.RunsBackend)
	}
	cfg.RunsDBConnect = input.RunsDBConnect
	if err := ValidateDatabaseConnectionString(cfg.RunsBackend, cfg.RunsDBConnect); err != nil {
		return err
	}

	// --- 6. Color flag ---
	cfg.UseColors = true
	if input.Color != "" {
		colors, err := ParseBoolString(input.Color)
		if err != nil {
			return fmt.Errorf("invalid --color value: %w", err)
		}
		cfg.UseColors = colors
	}

	cfg.Width = input.Width
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("runs-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("runs-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
