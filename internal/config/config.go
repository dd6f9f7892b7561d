// Package config loads server configuration from an optional YAML file
// with environment variable overrides, so Docker runs need no file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// StorageMemory keeps accounts and the ledger in process memory
	StorageMemory = "memory"
	// StoragePostgres persists accounts and the ledger in PostgreSQL
	StoragePostgres = "postgres"
)

// Config holds the server configuration
type Config struct {
	GRPCAddr string   `yaml:"grpc_addr"`
	APIToken string   `yaml:"api_token"`
	Storage  string   `yaml:"storage"`
	Database Database `yaml:"database"`
}

// Database holds the PostgreSQL connection settings
type Database struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// ConnString builds the lib/pq connection string
func (d Database) ConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Load reads configuration from the given YAML file (skipped when path is
// empty), then applies environment overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		GRPCAddr: ":8080",
		APIToken: "dev-token",
		Storage:  StoragePostgres,
		Database: Database{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			Name:     "bankledger",
		},
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if cfg.Storage != StorageMemory && cfg.Storage != StoragePostgres {
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	setFromEnv(&c.GRPCAddr, "GRPC_ADDR")
	setFromEnv(&c.APIToken, "API_TOKEN")
	setFromEnv(&c.Storage, "STORAGE")
	setFromEnv(&c.Database.Host, "DB_HOST")
	setFromEnv(&c.Database.Port, "DB_PORT")
	setFromEnv(&c.Database.User, "DB_USER")
	setFromEnv(&c.Database.Password, "DB_PASSWORD")
	setFromEnv(&c.Database.Name, "DB_NAME")
}

func setFromEnv(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
