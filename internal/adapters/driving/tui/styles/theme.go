// Package styles holds the lipgloss palette shared by the TUI views.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// Theme is the colour palette. The defaults follow SAP Horizon dark.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
	Surface    lipgloss.Color
}

func DefaultTheme() *Theme {
	return &Theme{
		Primary:    "#0A6ED1",
		Secondary:  "#4DB1FF",
		Foreground: "#EAECEE",
		Muted:      "#8396A8",
		Success:    "#5DC122",
		Warning:    "#F2B900",
		Error:      "#FF5C77",
		Border:     "#3C4B5A",
		Surface:    "#1D232A",
	}
}

// Confidence bands for colouring scores.
const (
	HighConfidence = 0.7
	LowConfidence  = 0.4
)

// Styles are the rendered styles derived from a Theme.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Badge      lipgloss.Style
}

// NewStyles derives styles from theme; nil means DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return &Styles{
		theme:    theme,
		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Selected: fg(theme.Foreground).Background(theme.Primary).Bold(true),
		Error:    fg(theme.Error),
		Success:  fg(theme.Success),
		Warning:  fg(theme.Warning),
		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		StatusBar: fg(theme.Muted).Background(theme.Surface).Padding(0, 1),
		Badge:     fg(theme.Surface).Bold(true).Padding(0, 1),
	}
}

func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

func (s *Styles) Theme() *Theme {
	return s.theme
}

// IntentBadge shows the intent on a coloured chip: amber while the router
// still needs details, grey when nothing matched.
func (s *Styles) IntentBadge(intent domain.Intent) string {
	bg := s.theme.Primary
	switch intent {
	case domain.IntentClarify:
		bg = s.theme.Warning
	case domain.IntentOther:
		bg = s.theme.Muted
	}
	return s.Badge.Background(bg).Render(intent.String())
}

// Confidence renders c as a percentage in the colour of its band.
func (s *Styles) Confidence(c float64) string {
	text := fmt.Sprintf("%.0f%%", c*100)
	switch {
	case c >= HighConfidence:
		return s.Success.Render(text)
	case c >= LowConfidence:
		return s.Warning.Render(text)
	}
	return s.Error.Render(text)
}
