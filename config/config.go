// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envFile = "config/.env"
	// EnvConfigFile names the variable that points at an optional YAML config file.
	EnvConfigFile = "PROJECTFLOW_CONFIG"
)

// NewConfig loads configuration from the environment, honouring PROJECTFLOW_CONFIG.
func NewConfig() (*Config, error) {
	return Load(os.Getenv(EnvConfigFile))
}

// Load reads defaults, then the optional YAML file at path, then config/.env and
// the process environment. Later sources win.
func Load(path string) (*Config, error) {
	loadEnvFile(envFile)

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadEnvFile exports variables from a dotenv file without overriding the environment.
func loadEnvFile(name string) {
	envMap, err := godotenv.Read(name)
	if err != nil {
		return
	}
	for k, val := range envMap {
		if _, exists := os.LookupEnv(k); !exists {
			_ = os.Setenv(k, val)
		}
	}
}

var defaults = map[string]any{
	"logging.level": "debug",

	"server.host":             "0.0.0.0",
	"server.port":             8080,
	"server.shutdown_timeout": 5 * time.Second,

	"http.request_timeout": 3 * time.Second,

	"storage.backend": "memory",

	"session.default_user_id": "",

	"telemetry.service_name":  "projectflow",
	"telemetry.otlp_endpoint": "",
	"telemetry.insecure":      false,

	"postgres.host":            "localhost",
	"postgres.port":            5432,
	"postgres.user":            "postgres",
	"postgres.password":        "postgres",
	"postgres.db_name":         "projectflow_db",
	"postgres.ssl_mode":        "disable",
	"postgres.migrations_dir":  "db/migrations",
	"postgres.migrate_timeout": 10 * time.Second,
	"postgres.query_timeout":   2 * time.Second,
	"postgres.max_conns":       10,
	"postgres.min_conns":       2,
}

func setDefaults(v *viper.Viper) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
}

// bindEnvs maps every known key to its upper-case env name, e.g. postgres.db_name -> POSTGRES_DB_NAME.
func bindEnvs(v *viper.Viper) {
	for k := range defaults {
		_ = v.BindEnv(k)
	}
}
