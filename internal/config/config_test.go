package config

import (
	"strings"
	"testing"
	"time"
)

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "3000",
			Env:            "development",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      "8000",
			Namespace: "plume",
			Database:  "main",
		},
		JWT: JWTConfig{
			Secret:     "your_secret_key",
			Expiration: 24 * time.Hour,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_MissingPort(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing SERVER_PORT")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("expected error to mention SERVER_PORT, got: %v", err)
	}
}

func TestConfig_Validate_DefaultSecretInProduction(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "production"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for default JWT_SECRET in production")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("expected error to mention JWT_SECRET, got: %v", err)
	}
}

func TestConfig_Validate_NonPositiveExpiration(t *testing.T) {
	cfg := validBaseConfig()
	cfg.JWT.Expiration = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for zero JWT_EXPIRATION")
	}
	if !strings.Contains(err.Error(), "JWT_EXPIRATION") {
		t.Errorf("expected error to mention JWT_EXPIRATION, got: %v", err)
	}
}

func TestConfig_Validate_JoinsAllErrors(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""
	cfg.Database.Host = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"SERVER_PORT", "DB_HOST"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got: %v", want, err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port == "" {
		t.Error("expected a default server port")
	}
	if cfg.JWT.Expiration != 24*time.Hour {
		t.Errorf("expected 24h default expiration, got %v", cfg.JWT.Expiration)
	}
}
