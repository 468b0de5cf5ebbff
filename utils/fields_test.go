package utils

import (
	"testing"

	"github.com/pigmint/ingestion-service/dto"
	"github.com/stretchr/testify/assert"
)

func row(pairs ...any) dto.RawRow {
	var r dto.RawRow
	for i := 0; i < len(pairs); i += 2 {
		label := pairs[i].(string)
		switch v := pairs[i+1].(type) {
		case string:
			r.Add(label, dto.Text(v))
		case float64:
			r.Add(label, dto.Number(v))
		case nil:
			r.Add(label, dto.Empty())
		}
	}
	return r
}

func TestResolveFieldSubstringMatch(t *testing.T) {
	r := row("Transaction Amount", "42.50", "Merchant Name", "Coffee Shop")

	// Verbose header contains the candidate.
	assert.Equal(t, "42.50", ResolveField(r, []string{"amount"}))
	// Abbreviated candidate list: candidate contains the header too.
	assert.Equal(t, "Coffee Shop", ResolveField(r, []string{"merchant name and address"}))
	// Exact match, case-insensitive.
	assert.Equal(t, "Coffee Shop", ResolveField(r, []string{"MERCHANT NAME"}))
}

func TestResolveFieldPriorityOrder(t *testing.T) {
	r := row("description", "card payment", "vendor", "Acme Corp")

	// "vendor" is tried before "description", regardless of column order.
	got := ResolveField(r, []string{"vendor", "merchant", "description"})
	assert.Equal(t, "Acme Corp", got)
}

func TestResolveFieldRowOrderTieBreak(t *testing.T) {
	r := row("amount", "10.00", "total amount", "99.00")

	// Both columns match the first candidate; first in row order wins.
	assert.Equal(t, "10.00", ResolveField(r, []string{"amount"}))
}

func TestResolveFieldSkipsEmptyValues(t *testing.T) {
	r := row("vendor", nil, "merchant", "Acme Corp")

	assert.Equal(t, "Acme Corp", ResolveField(r, []string{"vendor", "merchant"}))
}

func TestResolveFieldNoMatch(t *testing.T) {
	r := row("foo", "1", "bar", "2")

	assert.Equal(t, "", ResolveField(r, []string{"vendor", "merchant"}))
	assert.Equal(t, "", ResolveField(nil, []string{"vendor"}))
}

func TestResolveFieldStringifiesNumbers(t *testing.T) {
	r := row("amount", 1234.5)

	assert.Equal(t, "1234.5", ResolveField(r, []string{"amount"}))
}

func TestResolveCellKeepsKind(t *testing.T) {
	r := row("date", 45306.0)

	cell := ResolveCell(r, []string{"date"})
	assert.Equal(t, dto.CellNumber, cell.Kind)
	assert.Equal(t, 45306.0, cell.Number)
}
