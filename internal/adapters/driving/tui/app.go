package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/views/ask"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/views/playbooks"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// statsLoaded carries knowledge base figures for the menu.
type statsLoaded struct {
	stats domain.CorpusStats
	err   error
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView      *menu.View
	askView       *ask.View
	playbooksView *playbooks.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		menuView:      menu.NewView(s, km),
		askView:       ask.NewView(s, km, ports.Ask),
		playbooksView: playbooks.NewView(s, km, ports.Playbooks),
		currentView:   messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.askView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("assist - Fiori Launchpad troubleshooting"),
		a.loadStats(),
	)
}

func (a *App) loadStats() tea.Cmd {
	svc := a.ports.Ask
	ctx := a.ctx
	return func() tea.Msg {
		stats, err := svc.Stats(ctx)
		return statsLoaded{stats: stats, err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewAsk:
			a.askView, cmd = a.askView.Update(msg)
		case messages.ViewPlaybooks:
			a.playbooksView, cmd = a.playbooksView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case statsLoaded:
		// A knowledge base that fails to load still leaves the menu usable.
		if msg.err == nil {
			a.menuView.SetStats(msg.stats)
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewAsk:
			return a, a.askView.Init()
		case messages.ViewPlaybooks:
			return a, a.playbooksView.Init()
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, nil

	case messages.AnswerReceived, spinner.TickMsg:
		a.askView, cmd = a.askView.Update(msg)
		return a, cmd

	case messages.PlaybookLoaded:
		a.playbooksView, cmd = a.playbooksView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewAsk {
			a.askView, cmd = a.askView.Update(msg)
		}
		return a, cmd
	}

	// Forward other messages to the active view.
	switch a.currentView {
	case messages.ViewAsk:
		a.askView, cmd = a.askView.Update(msg)
	case messages.ViewPlaybooks:
		a.playbooksView, cmd = a.playbooksView.Update(msg)
	case messages.ViewMenu, messages.ViewHelp:
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewAsk:
		return a.askView.View()
	case messages.ViewPlaybooks:
		return a.playbooksView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Ask:
  (type)      Enter a question
  enter       Ask
  ctrl+l      Switch answer language (en/es)
  pgup/pgdn   Scroll the answer

Playbooks:
  j/k, ↑/↓    Choose an intent
  ctrl+l      Switch language (en/es)
  pgup/pgdn   Scroll the playbook

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.askView.SetDimensions(width, height)
	a.playbooksView.SetDimensions(width, height)
}
