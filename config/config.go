package config

import (
	"fmt"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/pigmint/ingestion-service/client"
)

// Config holds the runtime settings for the ingestion service. Every flag
// can also be set through a PIGMINT_-prefixed environment variable.
type Config struct {
	Port          int
	DBPath        string
	OCRAPIURL     string
	OCRAPIKey     string
	TessdataPath  string
	MaxUploadSize int64
}

// Load parses configuration from args and the environment.
func Load(args []string) (*Config, error) {
	fs := ff.NewFlagSet("ingestion-service")
	var (
		port         = fs.IntLong("port", 8080, "HTTP server port")
		dbPath       = fs.StringLong("db", "pigmint.db", "database file path")
		ocrAPIURL    = fs.StringLong("ocr-api-url", client.DefaultOCRSpaceURL, "OCR.space API endpoint")
		ocrAPIKey    = fs.StringLong("ocr-api-key", "", "OCR.space API key")
		tessdataPath = fs.StringLong("tessdata", "", "tesseract data path for the local fallback engine")
		maxUploadMB  = fs.IntLong("max-upload-mb", 10, "maximum upload size in megabytes")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("PIGMINT")); err != nil {
		return nil, fmt.Errorf("%s\nparsing flags: %w", ffhelp.Flags(fs), err)
	}

	return &Config{
		Port:          *port,
		DBPath:        *dbPath,
		OCRAPIURL:     *ocrAPIURL,
		OCRAPIKey:     *ocrAPIKey,
		TessdataPath:  *tessdataPath,
		MaxUploadSize: int64(*maxUploadMB) << 20,
	}, nil
}
