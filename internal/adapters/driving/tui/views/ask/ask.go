// Package ask provides the question and answer view for the TUI.
package ask

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/render"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driving"
)

// ErrNoAskService indicates that no ask service was provided.
var ErrNoAskService = errors.New("ask service is required")

// reservedLines is the height taken by everything except the answer pane.
const reservedLines = 9

// View asks questions and shows the structured answer in a scrollable pane.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QuestionInput
	answer    viewport.Model
	spinner   spinner.Model
	statusbar *status.Bar

	askService driving.AskService
	ctx        context.Context

	width    int
	height   int
	ready    bool
	thinking bool
	question string
	response *domain.HybridResponse
	locale   domain.Locale
	err      error
}

// NewView creates a new ask view.
func NewView(s *styles.Styles, km *keymap.KeyMap, askService driving.AskService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = s.Subtitle

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewQuestionInput(s),
		answer:     viewport.New(80, 24-reservedLines),
		spinner:    sp,
		statusbar:  status.NewBar(s, km),
		askService: askService,
		ctx:        context.Background(),
		width:      80,
		height:     24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the ask view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AnswerReceived:
		v.handleAnswer(msg)
		return v, nil

	case spinner.TickMsg:
		if !v.thinking {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case messages.ErrorOccurred:
		v.thinking = false
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(keyStr, v.keymap.Language):
		l := v.input.ToggleLocale()
		v.statusbar.SetLocale(l)
		if !v.thinking {
			v.statusbar.SetState(status.StateReady)
			v.statusbar.SetMessage("Language: " + l.String())
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.ScrollUp), keymap.Matches(keyStr, v.keymap.ScrollDown):
		var cmd tea.Cmd
		v.answer, cmd = v.answer.Update(msg)
		return v, cmd

	case keymap.Matches(keyStr, v.keymap.Ask):
		question := strings.TrimSpace(v.input.Value())
		if question == "" || v.thinking {
			return v, nil
		}
		v.thinking = true
		v.err = nil
		v.question = question
		v.statusbar.SetState(status.StateThinking)
		return v, tea.Batch(v.spinner.Tick, v.performAsk(question, v.input.Locale()))
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// performAsk runs the question through the ask service off the UI loop.
func (v *View) performAsk(question string, locale domain.Locale) tea.Cmd {
	svc := v.askService
	ctx := v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.ErrorOccurred{Err: ErrNoAskService}
		}
		resp, err := svc.Ask(ctx, question, locale)
		return messages.AnswerReceived{Question: question, Locale: locale, Response: resp, Err: err}
	}
}

func (v *View) handleAnswer(msg messages.AnswerReceived) {
	v.thinking = false
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}
	if msg.Response == nil {
		return
	}

	v.err = nil
	v.response = msg.Response
	v.locale = msg.Locale
	v.statusbar.SetAnswer(msg.Response.Intent, msg.Response.Confidence)
	v.input.Reset()
	v.refreshAnswer()
}

func (v *View) refreshAnswer() {
	if v.response == nil {
		v.answer.SetContent("")
		return
	}
	md := render.ResponseMarkdown(v.response, v.locale)
	v.answer.SetContent(render.Terminal(md, v.answer.Width))
	v.answer.GotoTop()
}

// View renders the ask view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("Launchpad Assist"), "")
	sections = append(sections, v.input.View(), "")

	switch {
	case v.thinking:
		sections = append(sections, v.spinner.View()+" "+v.styles.Muted.Render(v.question))
	case v.response != nil:
		header := v.styles.IntentBadge(v.response.Intent) + " " + v.styles.Muted.Render(v.question)
		sections = append(sections, header, v.answer.View())
	default:
		sections = append(sections, v.styles.Muted.Render(
			"Type a question and press enter. ctrl+l switches between English and Spanish."))
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	v.answer.Width = width
	v.answer.Height = max(3, height-reservedLines)
	v.refreshAnswer()
}

// Reset clears the question and answer.
func (v *View) Reset() {
	v.input.Reset()
	v.input.Focus()
	v.response = nil
	v.question = ""
	v.err = nil
	v.thinking = false
	v.statusbar.Clear()
	v.answer.SetContent("")
}

// Response returns the last answer.
func (v *View) Response() *domain.HybridResponse {
	return v.response
}

// Thinking reports whether a question is being answered.
func (v *View) Thinking() bool {
	return v.thinking
}

// Locale returns the selected answer language.
func (v *View) Locale() domain.Locale {
	return v.input.Locale()
}

// SetQuestion fills the input.
func (v *View) SetQuestion(q string) {
	v.input.SetValue(q)
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
