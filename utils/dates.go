package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pigmint/ingestion-service/dto"
)

const (
	// Valid spreadsheet date-serial range (1900-01-01 through 9999-12-31).
	minDateSerial = 1
	maxDateSerial = 2958465

	minYear = 1900
	maxYear = 2100
)

var (
	isoDatePattern   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	slashDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	dashDatePattern  = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)
)

// Layouts tried by the general fallback parse, most specific first.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-1-2",
	"2006/1/2",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// Today returns the current UTC date in canonical form.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// NormalizeDate turns a raw date cell into a canonical YYYY-MM-DD string.
// Numeric cells are treated as spreadsheet date serials; strings are tried
// against the fixed patterns and then a general layout parse. Anything
// unparseable, or any year outside [1900, 2100], falls back to today's
// date: a bad date must not abort ingestion of an otherwise-valid row.
func NormalizeDate(raw dto.CellValue) string {
	switch raw.Kind {
	case dto.CellNumber:
		return normalizeDateSerial(raw.Number)
	case dto.CellText:
		s := strings.TrimSpace(raw.Text)
		if s == "" {
			return Today()
		}
		return normalizeDateString(s)
	default:
		return Today()
	}
}

// normalizeDateSerial converts an Excel 1900-system day count. Serial 1 is
// 1900-01-01; serial 60 is the fictitious 1900-02-29 kept for Lotus 1-2-3
// compatibility, so later serials shift back one day.
func normalizeDateSerial(serial float64) string {
	if serial < minDateSerial || serial > maxDateSerial {
		return Today()
	}

	days := int(serial)
	if days > 60 {
		days--
	}
	date := time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)

	if date.Year() < minYear || date.Year() > maxYear {
		return Today()
	}
	return date.Format("2006-01-02")
}

func normalizeDateString(s string) string {
	// Already canonical.
	if m := isoDatePattern.FindStringSubmatch(s); m != nil {
		if y, mo, d, ok := validDateParts(m[1], m[2], m[3]); ok {
			return fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
		}
	}

	// US-style MM/DD/YYYY and MM-DD-YYYY.
	for _, pattern := range []*regexp.Regexp{slashDatePattern, dashDatePattern} {
		if m := pattern.FindStringSubmatch(s); m != nil {
			if y, mo, d, ok := validDateParts(m[3], m[1], m[2]); ok {
				return fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
			}
		}
	}

	// General fallback parse.
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() >= minYear && t.Year() <= maxYear {
				return t.Format("2006-01-02")
			}
			break
		}
	}
	return Today()
}

// validDateParts checks year/month/day bounds. Day is only bounded to
// [1, 31]; month-length validation is deliberately not performed.
func validDateParts(year, month, day string) (int, int, int, bool) {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if y < minYear || y > maxYear || mo < 1 || mo > 12 || d < 1 || d > 31 {
		return 0, 0, 0, false
	}
	return y, mo, d, true
}
