package utils

import (
	"math"
	"strconv"
	"strings"
)

// currencyStripper removes currency symbols, thousands separators and
// whitespace (including the non-breaking space OCR and spreadsheets emit).
var currencyStripper = strings.NewReplacer(
	"$", "", "€", "", "£", "", "¥", "",
	",", "", " ", "", " ", "", "\t", "",
)

// NormalizeAmount turns a raw amount string into a non-negative value.
// Parenthesized values (accounting negative notation) get a leading minus
// before parsing; the sign is then discarded because imports record spend
// magnitudes, not direction. Invalid input degrades to 0, which downstream
// filtering treats as "no real transaction".
func NormalizeAmount(raw string) float64 {
	if raw == "" {
		return 0
	}

	cleaned := currencyStripper.Replace(strings.TrimSpace(raw))
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + cleaned[1:len(cleaned)-1]
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return math.Abs(amount)
}
