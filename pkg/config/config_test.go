package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Server.Port != 8080 || c.Cache.Backend != "memory" || c.Cache.TTL != 10*time.Minute {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.Scenario.Defaults.DiscountRate != 0.18 || c.Scenario.Defaults.Years != 5 {
		t.Fatalf("unexpected scenario defaults: %+v", c.Scenario.Defaults)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name: "partial document keeps defaults",
			doc:  "environment: staging\nserver:\n  port: 9090\n",
			check: func(t *testing.T, c *Config) {
				if c.Environment != "staging" || c.Server.Port != 9090 {
					t.Fatalf("overrides not applied: %+v", c)
				}
				if c.Logging.Level != "info" || c.Kafka.LogTopic != "healthfeas.logs" {
					t.Fatalf("defaults lost: %+v", c)
				}
			},
		},
		{
			name: "explicit zero survives defaults",
			doc:  "scenario:\n  defaults:\n    fx_depreciation: 0\n    price_growth: 0\n",
			check: func(t *testing.T, c *Config) {
				if c.Scenario.Defaults.FXDepreciation != 0 || c.Scenario.Defaults.PriceGrowth != 0 {
					t.Fatalf("explicit zero overwritten: %+v", c.Scenario.Defaults)
				}
				if c.Scenario.Defaults.DiscountRate != 0.18 {
					t.Fatalf("unset field lost its default: %+v", c.Scenario.Defaults)
				}
			},
		},
		{
			name:    "unknown cache backend",
			doc:     "cache:\n  backend: disk\n",
			wantErr: true,
		},
		{
			name:    "kafka enabled without brokers",
			doc:     "kafka:\n  enabled: true\n",
			wantErr: true,
		},
		{
			name:    "discount rate out of range",
			doc:     "scenario:\n  defaults:\n    discount_rate: 0.5\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			doc:     "server: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.doc))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"HEALTHFEAS_ENV": "production",
		"HTTP_PORT":      "9000",
		"LOG_LEVEL":      "DEBUG",
		"REDIS_ADDR":     "redis.internal:6380",
		"KAFKA_BROKERS":  "k1:9092,k2:9092",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	c := Default()
	if err := c.applyEnv(lookup); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if c.Environment != "production" || c.Server.Port != 9000 || c.Logging.Level != "debug" {
		t.Fatalf("env not applied: %+v", c)
	}
	if c.Cache.Redis.Host != "redis.internal" || c.Cache.Redis.Port != 6380 {
		t.Fatalf("redis addr not applied: %+v", c.Cache.Redis)
	}
	if !c.Kafka.Enabled || len(c.Kafka.Brokers) != 2 {
		t.Fatalf("kafka brokers not applied: %+v", c.Kafka)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	env["HTTP_PORT"] = "eighty"
	if err := Default().applyEnv(lookup); err == nil {
		t.Fatalf("expected error for non-numeric port")
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("environment: test\ncache:\n  backend: none\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Environment != "test" || c.Cache.Backend != "none" {
		t.Fatalf("unexpected config %+v", c)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
