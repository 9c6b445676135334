package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8000", cfg.AppPort)
	assert.Equal(t, "debug", cfg.AppMode)
	assert.Equal(t, "*", cfg.CORSOrigin)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CORS_ORIGIN", "https://app.example.com")
	t.Setenv("MEDIA_BUCKET", "car-images")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "https://app.example.com", cfg.CORSOrigin)
	assert.Equal(t, "car-images", cfg.MediaBucket)
}
