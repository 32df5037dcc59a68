package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

func TestDefaultTheme_StatusColoursDiffer(t *testing.T) {
	theme := DefaultTheme()

	colours := map[lipgloss.Color]bool{theme.Success: true, theme.Warning: true, theme.Error: true, theme.Primary: true}
	assert.Len(t, colours, 4)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultTheme(), NewStyles(nil).Theme())
}

func TestNewStyles_KeepsTheme(t *testing.T) {
	theme := &Theme{Primary: "#000000"}

	assert.Same(t, theme, NewStyles(theme).Theme())
}

func TestIntentBadge(t *testing.T) {
	s := DefaultStyles()

	for _, intent := range []domain.Intent{domain.IntentCacheIndexing, domain.IntentClarify, domain.IntentOther} {
		assert.Contains(t, s.IntentBadge(intent), intent.String())
	}
}

func TestConfidence(t *testing.T) {
	s := DefaultStyles()

	tests := map[float64]string{0.85: "85%", HighConfidence: "70%", 0.5: "50%", 0.1: "10%", 0: "0%"}
	for c, want := range tests {
		assert.Contains(t, s.Confidence(c), want)
	}
}
