package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProductionConfig() *Config {
	return &Config{
		Port:           "5000",
		StorageBackend: "postgres",
		SessionBackend: "redis",
		DBHost:         "db",
		DBPort:         "5432",
		DBUser:         "homegenie",
		DBPassword:     "s3cure-and-long",
		DBName:         "homegenie",
		DBSSLMode:      "require",
		Env:            "production",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"MissingPort", func(c *Config) { c.Port = "" }, true},
		{"UnknownStorageBackend", func(c *Config) { c.StorageBackend = "dynamodb" }, true},
		{"UnknownSessionBackend", func(c *Config) { c.SessionBackend = "cookie" }, true},
		{"MemoryStorageInProduction", func(c *Config) { c.StorageBackend = "memory" }, true},
		{"DefaultPasswordInProduction", func(c *Config) { c.DBPassword = "password" }, true},
		{"MemoryStorageInDevelopment", func(c *Config) {
			c.Env = "development"
			c.StorageBackend = "memory"
			c.SessionBackend = "memory"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validProductionConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := validProductionConfig()
	assert.Equal(t,
		"host=db port=5432 user=homegenie password=s3cure-and-long dbname=homegenie sslmode=require",
		cfg.DSN())
}
