package utils

import (
	"strings"

	"github.com/pigmint/ingestion-service/dto"
)

// ResolveField finds the first usable value for a canonical field in a
// decoded row. Candidates are tried in priority order; a column matches a
// candidate when, case-insensitively, the label equals the candidate or
// either one contains the other as a substring. Bidirectional containment
// tolerates both abbreviated headers ("amt") and verbose ones
// ("Transaction Amount"). The first matching column in row order with a
// non-empty value wins. Returns "" when nothing matches; absence is not an
// error.
func ResolveField(row dto.RawRow, candidates []string) string {
	return ResolveCell(row, candidates).String()
}

// ResolveCell is ResolveField without the stringification: it returns the
// matched cell as-is so callers that care about the value kind (date
// serials) can inspect it. Returns an empty cell when nothing matches.
func ResolveCell(row dto.RawRow, candidates []string) dto.CellValue {
	for _, candidate := range candidates {
		want := strings.ToLower(candidate)
		for _, col := range row {
			label := strings.ToLower(col.Label)
			if label == want || strings.Contains(label, want) || strings.Contains(want, label) {
				if !col.Value.IsEmpty() {
					return col.Value
				}
			}
		}
	}
	return dto.Empty()
}
