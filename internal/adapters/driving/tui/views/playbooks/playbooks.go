// Package playbooks provides the playbook browser view for the TUI.
package playbooks

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driving"
)

// listWidth is the width of the intent column.
const listWidth = 34

// View lists intents and shows the selected playbook.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.PlaybookService

	intents  []domain.Intent
	selected int
	locale   domain.Locale
	playbook *domain.PlaybookView
	detail   viewport.Model
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a playbook browser. service may be nil, in which case
// the view shows an empty list.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.PlaybookService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	var intents []domain.Intent
	if service != nil {
		intents = service.Intents()
	}

	return &View{
		styles:  s,
		keymap:  km,
		service: service,
		intents: intents,
		locale:  domain.LocaleEN,
		detail:  viewport.New(80-listWidth, 20),
		width:   80,
		height:  24,
	}
}

// Init loads the playbook of the selected intent.
func (v *View) Init() tea.Cmd {
	return v.load()
}

// Update handles messages for the playbook view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.PlaybookLoaded:
		v.err = msg.Err
		if msg.Err == nil {
			v.playbook = msg.Playbook
			v.detail.SetContent(v.renderPlaybook())
			v.detail.GotoTop()
		}
		return v, nil

	case tea.KeyMsg:
		keyStr := msg.String()
		switch {
		case keymap.Matches(keyStr, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case keymap.Matches(keyStr, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
				return v, v.load()
			}
		case keymap.Matches(keyStr, v.keymap.Down):
			if v.selected < len(v.intents)-1 {
				v.selected++
				return v, v.load()
			}
		case keymap.Matches(keyStr, v.keymap.Language):
			if v.locale == domain.LocaleES {
				v.locale = domain.LocaleEN
			} else {
				v.locale = domain.LocaleES
			}
			return v, v.load()
		case keymap.Matches(keyStr, v.keymap.ScrollUp), keymap.Matches(keyStr, v.keymap.ScrollDown):
			var cmd tea.Cmd
			v.detail, cmd = v.detail.Update(msg)
			return v, cmd
		}
	}

	return v, nil
}

// load fetches the playbook of the selected intent.
func (v *View) load() tea.Cmd {
	if v.service == nil || len(v.intents) == 0 {
		return nil
	}
	svc := v.service
	name := v.intents[v.selected].String()
	locale := v.locale
	return func() tea.Msg {
		pb, err := svc.Get(name, locale)
		return messages.PlaybookLoaded{Playbook: pb, Err: err}
	}
}

func (v *View) renderPlaybook() string {
	pb := v.playbook
	if pb == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(v.styles.IntentBadge(pb.Intent))
	b.WriteString("\n\n")
	if pb.Summary != "" {
		b.WriteString(wrap(pb.Summary, v.detail.Width))
		b.WriteString("\n\n")
	}
	writeSection(&b, v.styles, "Starter actions", pb.StarterActions, v.detail.Width)
	writeSection(&b, v.styles, "Extended actions", pb.ExtendedActions, v.detail.Width)
	writeSection(&b, v.styles, "Clarifying questions", pb.ClarifyQuestions, v.detail.Width)
	if pb.EscalationHint != "" {
		b.WriteString(v.styles.Subtitle.Render("Escalation"))
		b.WriteString("\n")
		b.WriteString(wrap(pb.EscalationHint, v.detail.Width))
		b.WriteString("\n")
	}
	if len(pb.CitationFiles) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Cites: " + strings.Join(pb.CitationFiles, ", ")))
	}
	return b.String()
}

func writeSection(b *strings.Builder, s *styles.Styles, title string, items []string, width int) {
	if len(items) == 0 {
		return
	}
	b.WriteString(s.Subtitle.Render(title))
	b.WriteString("\n")
	for i, item := range items {
		b.WriteString(wrap(fmt.Sprintf("%d. %s", i+1, item), width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// View renders the playbook browser.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	items := make([]string, 0, len(v.intents))
	for i, intent := range v.intents {
		if i == v.selected {
			items = append(items, v.styles.Selected.Render("> "+intent.String()))
		} else {
			items = append(items, v.styles.Normal.Render("  "+intent.String()))
		}
	}
	list := lipgloss.NewStyle().Width(listWidth).Render(strings.Join(items, "\n"))

	var detail string
	switch {
	case v.err != nil:
		detail = v.styles.Error.Render("Error: " + v.err.Error())
	case v.playbook == nil:
		detail = v.styles.Muted.Render("No playbook loaded.")
	default:
		detail = v.detail.View()
	}

	header := v.styles.Title.Render("Playbooks") + " " + v.styles.Muted.Render("["+v.locale.String()+"]")
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
	footer := v.styles.Muted.Render("[j/k] Intent  [ctrl+l] en/es  [pgup/pgdn] Scroll  [esc] Back")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.detail.Width = max(20, width-listWidth)
	v.detail.Height = max(3, height-5)
	if v.playbook != nil {
		v.detail.SetContent(v.renderPlaybook())
	}
}

// Selected returns the selected intent, or "" when there are none.
func (v *View) Selected() domain.Intent {
	if len(v.intents) == 0 {
		return ""
	}
	return v.intents[v.selected]
}

// Locale returns the playbook language.
func (v *View) Locale() domain.Locale {
	return v.locale
}

// Playbook returns the loaded playbook.
func (v *View) Playbook() *domain.PlaybookView {
	return v.playbook
}
