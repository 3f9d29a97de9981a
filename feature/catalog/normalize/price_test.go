package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"19.99", "19.99"},
		{"19.9", "19.90"},
		{"20", "20.00"},
		{"0", "0.00"},
		{" 12.50 ", "12.50"},
		{"13.456", "13.46"},
		{"-5.00", "0.00"},
		{"free", "0.00"},
		{"", "0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizePrice(tt.in), "input %q", tt.in)
	}
}
