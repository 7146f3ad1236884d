package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"one byte", 1, "1.00 B"},
		{"just below a kilobyte", 1023, "1023.00 B"},
		{"exactly one kilobyte", 1024, "1.00 KB"},
		{"kilobyte and a half", 1536, "1.50 KB"},
		{"exactly one megabyte", 1048576, "1.00 MB"},
		{"exactly one gigabyte", 1 << 30, "1.00 GB"},
		{"exactly one terabyte", 1 << 40, "1.00 TB"},
		{"exactly one petabyte", 1 << 50, "1.00 PB"},
		{"beyond the largest unit", 1 << 60, "1024.00 PB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.bytes))
		})
	}
}

func TestFormatSizePrec(t *testing.T) {
	tests := []struct {
		name      string
		bytes     int64
		precision int
		want      string
	}{
		{"zero digits", 1536, 0, "2 KB"},
		{"one digit", 1536, 1, "1.5 KB"},
		{"four digits", 1024, 4, "1.0000 KB"},
		{"negative precision falls back to two", 1024, -1, "1.00 KB"},
		{"zero ignores precision", 0, 5, "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSizePrec(tt.bytes, tt.precision))
		})
	}
}
