package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient runs a local Tesseract engine. It serves as a fallback
// when the remote text-recognition service is unavailable.
type TesseractClient struct {
	dataPath string
}

// NewTesseractClient creates a local OCR client. dataPath points at the
// installed tessdata directory.
func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{dataPath: dataPath}
}

// Recognize writes the image to a temp file and extracts English text.
// gosseract has no context support; ctx is accepted for interface parity
// and checked before the engine runs.
func (tc *TesseractClient) Recognize(ctx context.Context, image []byte, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := filepath.Ext(filename)
	tempFile, err := os.CreateTemp("", "ocr-*"+ext)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(image); err != nil {
		tempFile.Close()
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	tempFile.Close()

	engine := gosseract.NewClient()
	defer engine.Close()

	if tc.dataPath != "" {
		engine.SetTessdataPrefix(tc.dataPath)
	}
	if err := engine.SetLanguage("eng"); err != nil {
		return "", fmt.Errorf("setting OCR language: %w", err)
	}
	if err := engine.SetImage(tempFile.Name()); err != nil {
		return "", fmt.Errorf("setting OCR image: %w", err)
	}

	text, err := engine.Text()
	if err != nil {
		return "", fmt.Errorf("extracting text: %w", err)
	}
	return text, nil
}
