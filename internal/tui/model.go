// Package tui is the interactive chat screen of the flameo CLI.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flameo-chatbot/internal/service"
)

// Responder is the TUI-facing subset of the chat service.
type Responder interface {
	Respond(ctx context.Context, rawInput string) (string, error)
}

type turn struct {
	user string
	bot  string
}

// answerMsg carries a finished Respond call back into Update.
type answerMsg struct {
	user   string
	answer string
	err    error
}

// Model is the Bubble Tea model of the chat screen.
type Model struct {
	ctx      context.Context
	chat     Responder
	input    textinput.Model
	viewport viewport.Model
	turns    []turn
	summary  string
	status   string
	ready    bool
	pending  bool
}

// New builds the chat screen. summary is shown under the title.
func New(ctx context.Context, chat Responder, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Nhập câu hỏi và nhấn Enter"
	ti.Focus()
	ti.CharLimit = 0
	return Model{
		ctx:      ctx,
		chat:     chat,
		input:    ti,
		viewport: viewport.New(0, 0),
		summary:  summary,
		status:   "Ready. Ctrl+C to quit.",
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 2 + 1 + ih + 1 // header, summary, status, input box
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, msg.Height-reserved-th)
		m.refresh()
		return m, nil
	case answerMsg:
		m.receive(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			if m.pending {
				return m, nil
			}
			cmd := m.send(m.input.Value())
			m.input.Reset()
			return m, cmd
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send starts a Respond call off the event loop. Blank input is ignored on screen;
// the core would accept it.
func (m *Model) send(message string) tea.Cmd {
	if strings.TrimSpace(message) == "" {
		return nil
	}
	m.pending = true
	m.status = "Thinking..."
	ctx, chat := m.ctx, m.chat
	return func() tea.Msg {
		answer, err := chat.Respond(ctx, message)
		return answerMsg{user: message, answer: answer, err: err}
	}
}

func (m *Model) receive(msg answerMsg) {
	m.pending = false
	switch {
	case msg.err == nil:
		m.status = "Ready."
	case errors.Is(msg.err, service.ErrHistoryUnavailable):
		m.status = "Answered, but the exchange was not saved: " + msg.err.Error()
	default:
		m.status = "Error: " + msg.err.Error()
	}
	m.turns = append(m.turns, turn{user: msg.user, bot: msg.answer})
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := titleStyle.Render("Flameo Chatbot")
	summary := summaryStyle.Render(m.summary)
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + summary + "\n" + transcript + "\n" + input + "\n" + status
}

func (m Model) renderTranscript() string {
	if len(m.turns) == 0 {
		return summaryStyle.Render("Chưa có tin nhắn nào.")
	}
	var b strings.Builder
	for i, t := range m.turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(userStyle.Render("Bạn: "))
		b.WriteString(t.user)
		b.WriteString("\n")
		b.WriteString(botStyle.Render("Flameo: "))
		b.WriteString(t.bot)
	}
	return b.String()
}

var (
	titleStyle         = lipgloss.NewStyle().Bold(true)
	summaryStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	userStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
