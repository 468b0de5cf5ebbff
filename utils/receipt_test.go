package utils

import (
	"strings"
	"testing"

	"github.com/pigmint/ingestion-service/dto"
	"github.com/stretchr/testify/assert"
)

func TestExtractReceipt(t *testing.T) {
	text := "COFFEE SHOP\nSubtotal 3.50\nTotal 4.20\n01/15/2024"

	result := ExtractReceipt(text, "receipt.jpg")

	assert.Equal(t, "COFFEE SHOP", result.Vendor)
	assert.Equal(t, 4.20, result.Amount) // total line beats subtotal
	assert.Equal(t, "2024-01-15", result.Date)
	assert.Equal(t, dto.DefaultCategory, result.Category)
	assert.Equal(t, text, result.RawText)
}

func TestExtractReceiptVendorSkipsNumericLines(t *testing.T) {
	text := "123-456\n$4.20\nGROCERY MART\nThanks for shopping"

	result := ExtractReceipt(text, "scan.png")

	assert.Equal(t, "GROCERY MART", result.Vendor)
}

func TestExtractReceiptVendorFallback(t *testing.T) {
	// Nothing in the first five lines qualifies as a merchant name.
	text := "12.00\n34.10\n1\n2\n3\nACTUAL SHOP NAME"

	result := ExtractReceipt(text, "lunch-receipt.jpeg")

	assert.Equal(t, "Receipt from lunch-receipt", result.Vendor)
}

func TestExtractReceiptVendorTruncated(t *testing.T) {
	long := strings.Repeat("A", 80)

	result := ExtractReceipt(long+"\nTotal 9.99", "r.jpg")

	assert.Len(t, result.Vendor, 50)
}

func TestExtractReceiptAmountFirstNonTotalWins(t *testing.T) {
	text := "SHOP NAME\nItem one 2.50\nItem two 3.75"

	result := ExtractReceipt(text, "r.jpg")

	assert.Equal(t, 2.50, result.Amount)
}

func TestExtractReceiptAmountMissing(t *testing.T) {
	result := ExtractReceipt("SHOP NAME\nno prices here", "r.jpg")

	assert.Equal(t, 0.0, result.Amount)
}

func TestExtractReceiptDateShortYear(t *testing.T) {
	result := ExtractReceipt("SHOP NAME\nTotal 5.00\n1/15/24", "r.jpg")

	assert.Equal(t, "2024-01-15", result.Date)
}

func TestExtractReceiptDateISO(t *testing.T) {
	result := ExtractReceipt("SHOP NAME\n2024-03-07 14:22\nTotal 5.00", "r.jpg")

	assert.Equal(t, "2024-03-07", result.Date)
}

func TestExtractReceiptDateDefaultsToToday(t *testing.T) {
	result := ExtractReceipt("SHOP NAME\nTotal 5.00", "r.jpg")

	assert.Equal(t, Today(), result.Date)
}

func TestExtractReceiptRawTextTruncated(t *testing.T) {
	text := "SHOP NAME\n" + strings.Repeat("x", 500)

	result := ExtractReceipt(text, "r.jpg")

	assert.Len(t, result.RawText, 200)
}
