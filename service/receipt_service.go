package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pigmint/ingestion-service/client"
	"github.com/pigmint/ingestion-service/dto"
	"github.com/pigmint/ingestion-service/utils"
)

// ReceiptService turns receipt images into canonical records. Recognition
// failures degrade into a placeholder result carrying the error text; the
// caller always gets a usable record.
type ReceiptService struct {
	primary  client.Recognizer
	fallback client.Recognizer
	log      zerolog.Logger
}

// NewReceiptService creates a receipt service. fallback may be nil when no
// secondary engine is configured.
func NewReceiptService(primary, fallback client.Recognizer, log zerolog.Logger) *ReceiptService {
	return &ReceiptService{primary: primary, fallback: fallback, log: log}
}

// ScanReceipt recognizes the image text and extracts the receipt fields.
func (s *ReceiptService) ScanReceipt(ctx context.Context, image []byte, filename string) dto.ScanResult {
	text, err := s.recognize(ctx, image, filename)
	if err != nil {
		s.log.Error().Str("filename", filename).Err(err).Msg("receipt recognition failed")
		return s.degraded(filename, "Could not process receipt: "+err.Error())
	}
	if strings.TrimSpace(text) == "" {
		s.log.Warn().Str("filename", filename).Msg("no text recognized in receipt")
		return s.degraded(filename, "Could not extract text from image")
	}

	result := utils.ExtractReceipt(text, filename)
	s.log.Info().
		Str("filename", filename).
		Str("vendor", result.Vendor).
		Float64("amount", result.Amount).
		Str("date", result.Date).
		Msg("receipt scanned")
	return result
}

func (s *ReceiptService) recognize(ctx context.Context, image []byte, filename string) (string, error) {
	text, err := s.primary.Recognize(ctx, image, filename)
	if err == nil || s.fallback == nil {
		return text, err
	}

	s.log.Warn().Str("filename", filename).Err(err).Msg("primary recognizer failed, trying fallback")
	return s.fallback.Recognize(ctx, image, filename)
}

func (s *ReceiptService) degraded(filename, message string) dto.ScanResult {
	return dto.ScanResult{
		Vendor:   "Receipt from " + baseName(filename),
		Amount:   0,
		Category: dto.DefaultCategory,
		Date:     utils.Today(),
		Error:    message,
	}
}
