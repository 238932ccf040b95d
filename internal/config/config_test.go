package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		jwtSecret   string
		dbPassword  string
		sslMode     string
		expectError bool
	}{
		{"Development with defaults", "development", "your-secret-key-change-in-production", "password", "disable", false},
		{"Production with default secret", "production", "your-secret-key-change-in-production", "secure-password", "require", true},
		{"Production with short secret", "production", "short", "secure-password", "require", true},
		{"Production with weak DB password", "production", "secure-secret-at-least-32-chars-long", "password", "require", true},
		{"Production with disabled SSL", "production", "secure-secret-at-least-32-chars-long", "secure-password", "disable", true},
		{"Production fully hardened", "production", "secure-secret-at-least-32-chars-long", "secure-password", "verify-full", false},
		{"Prod alias fully hardened", "prod", "secure-secret-at-least-32-chars-long", "secure-password", "require", false},
		{"Test env with disabled SSL", "test", "secure-secret-at-least-32-chars-long", "password", "disable", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Env:        tt.env,
				JWTSecret:  tt.jwtSecret,
				DBPassword: tt.dbPassword,
				DBSSLMode:  tt.sslMode,
				Port:       "8080",
				RedisURL:   "localhost:6379",
			}

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateMissingRequired(t *testing.T) {
	c := &Config{JWTSecret: "secret"}
	assert.Error(t, c.Validate(), "missing PORT must fail validation")

	c = &Config{Port: "8080"}
	assert.Error(t, c.Validate(), "missing JWT_SECRET must fail validation")
}

func TestLoadConfig_SSLModeNormalization(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("DB_SSLMODE")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("DB_SSLMODE", "  DISABLE  ")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "disable", c.DBSSLMode)
}
