// Package menu is the start screen of the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// Item is one menu entry. Entries with Quit set end the program.
type Item struct {
	Label string
	Hint  string
	View  messages.ViewType
	Quit  bool
}

// DefaultItems are the entries of the start screen, in display order.
func DefaultItems() []Item {
	return []Item{
		{Label: "Ask a question", Hint: "route a question and get recommended actions", View: messages.ViewAsk},
		{Label: "Playbooks", Hint: "browse the canned guidance per intent", View: messages.ViewPlaybooks},
		{Label: "Help", Hint: "key bindings", View: messages.ViewHelp},
		{Label: "Quit", Quit: true},
	}
}

type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	items    []Item
	selected int
	stats    *domain.CorpusStats
	width    int
	height   int
	ready    bool
}

func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{styles: s, keymap: km, items: DefaultItems(), width: 80, height: 24}
}

func (v *View) Init() tea.Cmd {
	return nil
}

func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keymap.Up):
			v.selected = max(0, v.selected-1)
		case keymap.Matches(k, v.keymap.Down):
			v.selected = min(len(v.items)-1, v.selected+1)
		case keymap.Matches(k, v.keymap.Select):
			return v, v.choose(v.items[v.selected])
		case keymap.Matches(k, v.keymap.Help):
			return v, changeView(messages.ViewHelp)
		case keymap.Matches(k, v.keymap.Quit):
			return v, tea.Quit
		}
	}
	return v, nil
}

func (v *View) choose(item Item) tea.Cmd {
	if item.Quit {
		return tea.Quit
	}
	return changeView(item.View)
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg { return messages.ViewChanged{View: view} }
}

func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Launchpad Assist") + "\n\n")
	b.WriteString(v.styles.Muted.Render("Fiori Launchpad troubleshooting") + "\n")
	if v.stats != nil {
		fmt.Fprintf(&b, "%s\n", v.styles.Muted.Render(fmt.Sprintf(
			"Knowledge base: %d documents, %d chunks", v.stats.Documents, v.stats.Chunks)))
	}
	b.WriteString("\n")

	for i, item := range v.items {
		if i != v.selected {
			b.WriteString("  " + v.styles.Normal.Render(item.Label) + "\n")
			continue
		}
		b.WriteString("> " + v.styles.Subtitle.Render(item.Label))
		if item.Hint != "" {
			b.WriteString("  " + v.styles.Muted.Render(item.Hint))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + v.styles.Muted.Render(keymap.Hints(v.keymap.MenuHelp())))
	return b.String()
}

// SetStats shows knowledge base figures under the title.
func (v *View) SetStats(stats domain.CorpusStats) {
	v.stats = &stats
}

func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

func (v *View) Selected() int {
	return v.selected
}
