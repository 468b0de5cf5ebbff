package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// Currency amount: optional dollar sign, digits, decimal separator,
	// exactly two fraction digits.
	receiptAmountPattern = regexp.MustCompile(`\$?\s*(\d+[,.]\d{2})\b`)

	// A line made up entirely of digits and currency punctuation cannot be
	// a merchant name.
	numericLinePattern = regexp.MustCompile(`^[\d\s$.,-]+$`)

	// Date-shaped substrings: D/D/Y or D-D-Y, or ISO-like Y-M-D / Y/M/D.
	receiptDatePattern = regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})|(\d{4}[/-]\d{1,2}[/-]\d{1,2})`)

	// Two-digit year form, promoted to 20YY before parsing.
	shortYearPattern = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2}$`)
)

// Keywords suggesting a line states the final payable amount.
var totalKeywords = []string{"total", "amount", "balance", "pay", "due"}

var receiptDateLayouts = []string{"1/2/2006", "1-2-2006", "2006-1-2", "2006/1/2"}

// extractVendorLine scans the first few lines for the merchant name: the
// first line longer than 3 characters that isn't purely numeric. Returns ""
// when none qualifies.
func extractVendorLine(lines []string) string {
	for i := 0; i < len(lines) && i < vendorScanLines; i++ {
		line := lines[i]
		if len(line) > 3 && !numericLinePattern.MatchString(line) {
			return truncateRunes(line, maxVendorLen)
		}
	}
	return ""
}

// extractReceiptAmount collects every currency-shaped number. Amounts found
// on total-like lines go to the front of the candidate list, ordinary lines
// to the back; the winner is the first candidate left standing. Returns 0
// when no amount appears anywhere.
func extractReceiptAmount(lines []string) float64 {
	var candidates []float64

	for _, line := range lines {
		lower := strings.ToLower(line)
		isTotal := false
		for _, keyword := range totalKeywords {
			if strings.Contains(lower, keyword) {
				isTotal = true
				break
			}
		}

		for _, match := range receiptAmountPattern.FindAllStringSubmatch(line, -1) {
			num, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
			if err != nil || num <= 0 {
				continue
			}
			if isTotal {
				candidates = append([]float64{num}, candidates...)
			} else {
				candidates = append(candidates, num)
			}
		}
	}

	if len(candidates) > 0 {
		return candidates[0]
	}
	return 0
}

// extractReceiptDate returns the first parseable date-shaped substring with
// a year in [2000, 2100], or today's date when scanning is exhausted.
func extractReceiptDate(lines []string) string {
	for _, line := range lines {
		raw := receiptDatePattern.FindString(line)
		if raw == "" {
			continue
		}

		if shortYearPattern.MatchString(raw) {
			parts := strings.FieldsFunc(raw, func(r rune) bool { return r == '/' || r == '-' })
			raw = parts[0] + "/" + parts[1] + "/20" + parts[2]
		}

		for _, layout := range receiptDateLayouts {
			t, err := time.Parse(layout, raw)
			if err != nil {
				continue
			}
			if y := t.Year(); y >= 2000 && y <= maxYear {
				return t.Format("2006-01-02")
			}
			break
		}
	}
	return Today()
}
