package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"$1,234.56", 1234.56},
		{"1234.56", 1234.56},
		{"€99.99", 99.99},
		{"£10.50", 10.50},
		{"¥1000", 1000},
		{"(12.00)", 12.00},
		{"($1,500.00)", 1500.00},
		{"-45.67", 45.67},
		{" 25.99 ", 25.99},
		{"", 0},
		{"abc", 0},
		{"$", 0},
		{"12.34.56", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAmount(tt.input))
		})
	}
}
