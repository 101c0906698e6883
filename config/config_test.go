package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PDF_INPUT_DIR", "")
	t.Setenv("OUTPUT_DIR", "")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "pdfs", cfg.InputDir)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, int64(32*1024*1024), cfg.MaxFileSize)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PDF_INPUT_DIR", "/data/statements")
	t.Setenv("OUTPUT_DIR", "/data/exports")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "/data/statements", cfg.InputDir)
	assert.Equal(t, "/data/exports", cfg.OutputDir)
}
