package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pigmint/ingestion-service/client"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "pigmint.db", cfg.DBPath)
	assert.Equal(t, client.DefaultOCRSpaceURL, cfg.OCRAPIURL)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadSize)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{
		"--port", "9000",
		"--db", "/tmp/other.db",
		"--ocr-api-key", "secret",
		"--max-upload-mb", "2",
	})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, "secret", cfg.OCRAPIKey)
	assert.Equal(t, int64(2<<20), cfg.MaxUploadSize)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PIGMINT_PORT", "7070")
	t.Setenv("PIGMINT_TESSDATA", "/usr/share/tessdata")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "/usr/share/tessdata", cfg.TessdataPath)
}

func TestLoadBadFlag(t *testing.T) {
	_, err := Load([]string{"--no-such-flag"})
	assert.Error(t, err)
}
