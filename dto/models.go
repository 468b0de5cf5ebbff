package dto

import (
	"strconv"
	"time"
)

// DefaultCategory is assigned whenever no category can be resolved.
const DefaultCategory = "Uncategorized"

// Transaction is the canonical record every ingestion path converges to.
type Transaction struct {
	ID        string    `json:"id,omitempty"`
	Vendor    string    `json:"vendor"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Date      string    `json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ScanResult is the outcome of OCR-based receipt extraction. It is always
// populated with best-effort values; Error carries a human-readable note
// when extraction was degraded.
type ScanResult struct {
	Vendor   string  `json:"vendor"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	RawText  string  `json:"raw_text,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// Transaction converts a scan result into a canonical record.
func (r ScanResult) Transaction() Transaction {
	return Transaction{
		Vendor:   r.Vendor,
		Amount:   r.Amount,
		Category: r.Category,
		Date:     r.Date,
	}
}

// Rule is a savings rule applied against incoming transactions by vendor
// substring match.
type Rule struct {
	ID          string    `json:"id,omitempty"`
	VendorMatch string    `json:"vendor_match"`
	SaveAmount  float64   `json:"save_amount"`
	RuleType    string    `json:"rule_type"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// CellKind tags the variant held by a CellValue.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// CellValue is a tagged cell variant: text, number, or empty. Decoders keep
// the original kind so that date-serial numbers survive until normalization.
type CellValue struct {
	Kind   CellKind
	Text   string
	Number float64
}

func Text(s string) CellValue    { return CellValue{Kind: CellText, Text: s} }
func Number(f float64) CellValue { return CellValue{Kind: CellNumber, Number: f} }
func Empty() CellValue           { return CellValue{Kind: CellEmpty} }

// IsEmpty reports whether the cell carries no usable value.
func (v CellValue) IsEmpty() bool {
	return v.Kind == CellEmpty || (v.Kind == CellText && v.Text == "")
}

// String stringifies the cell. Numbers use the shortest round-trippable
// decimal form.
func (v CellValue) String() string {
	switch v.Kind {
	case CellText:
		return v.Text
	case CellNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// Column is one labeled cell of a decoded row.
type Column struct {
	Label string
	Value CellValue
}

// RawRow is one decoded row: an ordered mapping from column label to cell
// value. Order is the column order of the source file and is the tie-break
// when several columns match a field candidate.
type RawRow []Column

// Add appends a column to the row.
func (r *RawRow) Add(label string, value CellValue) {
	*r = append(*r, Column{Label: label, Value: value})
}
