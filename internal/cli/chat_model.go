package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/fitbuddy/internal/app"
	"github.com/alexanderramin/fitbuddy/internal/cli/formatter"
)

// chatModel is the full-screen interactive chat. A transcript viewport
// sits above a single-line input; turns run asynchronously so the UI
// stays responsive while the advice backend is consulted.
type chatModel struct {
	app       *app.App
	sessionID string

	viewport viewport.Model
	input    textinput.Model
	messages []string
	waiting  bool
	ready    bool
	err      error
}

type turnResultMsg struct {
	reply string
	err   error
}

func newChatModel(a *app.App, sessionID string) *chatModel {
	ti := textinput.New()
	ti.Placeholder = "Say something..."
	ti.Prompt = "you> "
	ti.Focus()
	ti.CharLimit = 500

	return &chatModel{
		app:       a,
		sessionID: sessionID,
		input:     ti,
		messages:  []string{chatWelcomeText()},
	}
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		inputHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - inputHeight
		}
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" || m.waiting {
				return m, nil
			}
			switch strings.ToLower(input) {
			case "/quit", "/exit", "/q":
				return m, tea.Quit
			}
			m.messages = append(m.messages, formatter.Dim("you> ")+input)
			m.waiting = true
			m.refreshTranscript()
			return m, m.sendTurn(input)
		}

	case turnResultMsg:
		m.waiting = false
		if msg.err != nil {
			m.err = msg.err
			m.messages = append(m.messages, formatter.StyleRed.Render("error: "+msg.err.Error()))
		} else {
			m.messages = append(m.messages, formatter.StyleGreen.Render("coach> ")+msg.reply)
		}
		m.refreshTranscript()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *chatModel) View() string {
	if !m.ready {
		return "Starting..."
	}
	prompt := m.input.View()
	if m.waiting {
		prompt = formatter.Dim("coach is thinking...")
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), "", prompt)
}

func (m *chatModel) sendTurn(input string) tea.Cmd {
	return func() tea.Msg {
		reply, _, err := m.app.Sessions.HandleTurn(context.Background(), m.sessionID, input)
		if err != nil {
			return turnResultMsg{err: err}
		}
		return turnResultMsg{reply: reply.Text}
	}
}

func (m *chatModel) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.messages, "\n"))
	m.viewport.GotoBottom()
}
