package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleHelpersPassThroughWhenNotStyled(t *testing.T) {
	orig := styled
	styled = false
	t.Cleanup(func() { styled = orig })

	// With styling off (stdout not a terminal), every helper must return its
	// input unchanged so piped output keeps stable message shapes.
	helpers := map[string]func(string) string{
		"Accent": Accent,
		"Dim":    Dim,
		"Warn":   Warn,
		"Error":  Error,
		"Bold":   Bold,
	}

	for name, fn := range helpers {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "Deleted /tmp/node_modules", fn("Deleted /tmp/node_modules"))
		})
	}
}
