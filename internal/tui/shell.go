package tui

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/vfsim/internal/shell"
	"github.com/vvka-141/vfsim/pkg/vfsim"
)

// Words that leave the shell when entered on their own.
const (
	exitWord = "exit"
	quitWord = "quit"
)

const (
	defaultHeight = 24
	minInputWidth = 10

	// banner, prompt, help line and its margin
	chromeLines = 4
)

type lineKind int

const (
	lineCommand lineKind = iota
	lineOutput
	lineError
)

type scrollLine struct {
	kind lineKind
	text string
}

// ShellModel is the bubbletea model of the interactive shell. Each entered
// line runs through the session; its output and errors land in the
// scrollback above the prompt.
type ShellModel struct {
	session   *shell.Session
	logger    vfsim.Logger
	input     textinput.Model
	keys      KeyMap
	styles    Styles
	completer *PathCompleter
	out       *bytes.Buffer
	errOut    *bytes.Buffer

	scrollback []scrollLine
	history    []string
	historyPos int
	height     int
	quitting   bool
	err        error
}

// ShellOptions configures a ShellModel.
type ShellOptions struct {
	Prompt string
	Color  bool
}

// NewShellModel creates a shell over session and redirects its sinks into
// the model's scrollback.
func NewShellModel(session *shell.Session, logger vfsim.Logger, opts ShellOptions) ShellModel {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = vfsim.DefaultPrompt
	}
	styles := PlainStyles()
	if opts.Color {
		styles = DefaultStyles()
	}

	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = styles.Prompt
	ti.CharLimit = 1024
	ti.Width = 72
	ti.Focus()

	m := ShellModel{
		session:   session,
		logger:    logger,
		input:     ti,
		keys:      DefaultKeyMap(),
		styles:    styles,
		completer: NewPathCompleter(session.Complete),
		out:       &bytes.Buffer{},
		errOut:    &bytes.Buffer{},
		height:    defaultHeight,
	}
	session.SetOutput(m.out, m.errOut)
	return m
}

// Init implements tea.Model.
func (m ShellModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-1, minInputWidth)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Complete):
			m.completeWord()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.recall(-1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.recall(1)
			return m, nil
		}
		m.completer.Reset()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ShellModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.completer.Reset()

	trimmed := strings.TrimSpace(line)
	if trimmed == exitWord || trimmed == quitWord {
		m.quitting = true
		return m, tea.Quit
	}

	m.scrollback = append(m.scrollback, scrollLine{kind: lineCommand, text: m.input.Prompt + line})
	if trimmed != "" {
		m.history = append(m.history, line)
	}
	m.historyPos = len(m.history)

	m.out.Reset()
	m.errOut.Reset()
	if err := m.session.Exec(line); err != nil {
		m.logger.Error("%v", err)
		m.err = err
		return m, tea.Quit
	}
	m.capture(m.out, lineOutput)
	m.capture(m.errOut, lineError)
	return m, nil
}

func (m *ShellModel) capture(buf *bytes.Buffer, kind lineKind) {
	if buf.Len() == 0 {
		return
	}
	text := strings.TrimSuffix(buf.String(), "\n")
	for _, l := range strings.Split(text, "\n") {
		m.scrollback = append(m.scrollback, scrollLine{kind: kind, text: strings.TrimRight(l, " \t")})
	}
}

// completeWord completes the last whitespace-separated word of the input.
func (m *ShellModel) completeWord() {
	value := m.input.Value()
	start := strings.LastIndexAny(value, " \t") + 1
	completed := m.completer.Next(value[start:])
	m.input.SetValue(value[:start] + completed)
	m.input.CursorEnd()
}

// recall moves through the command history by delta.
func (m *ShellModel) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	pos := m.historyPos + delta
	if pos < 0 {
		pos = 0
	}
	if pos >= len(m.history) {
		m.historyPos = len(m.history)
		m.input.SetValue("")
		return
	}
	m.historyPos = pos
	m.input.SetValue(m.history[pos])
	m.input.CursorEnd()
}

// View implements tea.Model.
func (m ShellModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.banner()))
	b.WriteString("\n")
	for _, l := range m.visible() {
		switch l.kind {
		case lineCommand:
			b.WriteString(m.styles.Command.Render(l.text))
		case lineError:
			b.WriteString(m.styles.Error.Render(l.text))
		default:
			b.WriteString(m.styles.Output.Render(l.text))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.keys.HelpText()))
	return b.String()
}

// banner names the session and its current directory.
func (m ShellModel) banner() string {
	return "vfsim " + m.session.ID().String()[:8] + "  " + m.session.Pwd()
}

// visible returns the tail of the scrollback that fits between the banner
// and the prompt.
func (m ShellModel) visible() []scrollLine {
	room := m.height - chromeLines
	if room < 1 {
		room = 1
	}
	if len(m.scrollback) <= room {
		return m.scrollback
	}
	return m.scrollback[len(m.scrollback)-room:]
}

// Err returns the sink failure that ended the shell, if any.
func (m ShellModel) Err() error { return m.err }
