package utils

import (
	"strings"

	"github.com/pigmint/ingestion-service/dto"
)

const (
	vendorScanLines = 5
	maxVendorLen    = 50
	maxRawTextLen   = 200
)

// ExtractReceipt derives a canonical record from raw OCR text. The text has
// no column structure, so everything here is a line-order heuristic: the
// merchant name is assumed to sit in the first few lines, and lines
// mentioning a total-like keyword are assumed to carry the authoritative
// amount. Always succeeds with best-effort values.
func ExtractReceipt(text, filename string) dto.ScanResult {
	lines := splitLines(text)

	vendor := extractVendorLine(lines)
	if vendor == "" {
		vendor = "Receipt from " + baseName(filename)
	}

	return dto.ScanResult{
		Vendor:   vendor,
		Amount:   extractReceiptAmount(lines),
		Category: dto.DefaultCategory,
		Date:     extractReceiptDate(lines),
		RawText:  truncateRunes(text, maxRawTextLen),
	}
}

// splitLines splits OCR text into trimmed, non-empty lines, order preserved.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// baseName returns the filename portion before the first dot.
func baseName(filename string) string {
	if i := strings.IndexByte(filename, '.'); i >= 0 {
		return filename[:i]
	}
	return filename
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
