package ui

import (
	"fmt"
	"math"
)

// sizeUnits step by 1024 despite the SI-style labels.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatSize renders a byte count with two fraction digits, e.g. "1.50 MB".
func FormatSize(bytes int64) string {
	return FormatSizePrec(bytes, 2)
}

// FormatSizePrec renders a byte count scaled to the largest unit that keeps
// the value below 1024, with the given number of fraction digits. Zero is
// rendered as "0 B".
func FormatSizePrec(bytes int64, precision int) string {
	if bytes <= 0 {
		return "0 B"
	}
	if precision < 0 {
		precision = 2
	}

	exp := int(math.Log(float64(bytes)) / math.Log(1024))
	if exp >= len(sizeUnits) {
		exp = len(sizeUnits) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(exp))

	return fmt.Sprintf("%.*f %s", precision, value, sizeUnits[exp])
}
