package bubble_adapter

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/minivi/core"
)

const noFileTitle = "No file open"

// chrome is the number of rows taken by the title and the footer
const chrome = 2

type Model struct {
	editor          core.Editor
	viewport        viewport.Model
	keyMap          KeyMap
	theme           Theme
	width           int
	height          int
	showLineNumbers bool
	showStatusLine  bool
	cursorMarker    string
	err             error
}

// SaveMsg is emitted after the editor wrote its buffer to the given path.
type SaveMsg string

// New wraps editor in a bubbletea model of the given size.
func New(editor core.Editor, width, height int) Model {
	m := Model{
		editor:          editor,
		viewport:        viewport.New(width, max(1, height-chrome)),
		keyMap:          DefaultKeyMap(),
		theme:           DefaultTheme,
		showLineNumbers: true,
		showStatusLine:  true,
		cursorMarker:    "|",
	}

	m.SetSize(width, height)

	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-chrome)
	m.refresh()
}

// WithTheme allows setting a custom theme for the editor.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
	m.refresh()
}

// HideLineNumbers controls whether to show line numbers in the viewport.
func (m *Model) HideLineNumbers(hide bool) {
	m.showLineNumbers = !hide
	m.refresh()
}

// HideStatusLine controls whether the cursor position is shown in the footer.
func (m *Model) HideStatusLine(hide bool) {
	m.showStatusLine = !hide
}

// SetCursorMarker sets the text drawn at the cursor offset.
func (m *Model) SetCursorMarker(marker string) {
	if marker == "" {
		return
	}
	m.cursorMarker = marker
	m.refresh()
}

// Err returns the error left by the last key press, if any.
func (m *Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("minivi - " + m.title())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.ForceQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, m.keyMap.ToggleLineNumbers) {
			m.HideLineNumbers(m.showLineNumbers)
			return m, nil
		}

		m.err = nil
		// failures also arrive as ErrorSignal, picked up below
		if msg.Type == tea.KeyRunes && msg.Paste {
			_ = m.editor.PasteText(string(msg.Runes))
		} else {
			for _, event := range keyEvents(msg) {
				log.Printf("key %s", event)
				_ = m.editor.HandleKey(event)
			}
		}

		cmds = append(cmds, m.drainSignals()...)
		if !m.editor.Running() {
			cmds = append(cmds, tea.Quit)
		}

		m.refresh()
	}

	return m, tea.Batch(cmds...)
}

// drainSignals consumes every signal queued by the last key press.
func (m *Model) drainSignals() []tea.Cmd {
	var cmds []tea.Cmd

	for {
		select {
		case signal := <-m.editor.GetUpdateSignalChan():
			switch signal := signal.(type) {
			case core.ErrorSignal:
				_, err := signal.Value()
				m.err = err

			case core.SaveSignal:
				path := signal.Value()
				log.Printf("saved %s", path)
				cmds = append(cmds, func() tea.Msg {
					return SaveMsg(path)
				})

			case core.YankSignal:
				log.Printf("yanked %d bytes", len(signal.Value()))

			case core.PasteSignal:
				log.Printf("pasted %d bytes", len(signal.Value()))

			case core.ModeChangeSignal:
				from, to := signal.Value()
				log.Printf("mode %s -> %s", from, to)
			}

		default:
			return cmds
		}
	}
}

func (m Model) View() string {
	title := m.theme.TitleStyle.Width(m.width).Render(m.title())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.viewport.View(),
		m.footer(),
	)
}

func (m Model) title() string {
	if name := m.editor.FileName(); name != "" {
		return name
	}
	return noFileTitle
}

// footer shows the mode text on the left and the cursor position on the right.
func (m Model) footer() string {
	mode := m.editor.Mode()

	style := m.theme.modeStyle(mode)
	if m.err != nil {
		style = m.theme.ErrorStyle
	}
	footer := style.Render(" " + mode.Display() + " ")

	var position string
	if m.showStatusLine {
		pos := m.editor.Position()
		position = fmt.Sprintf("Ln %d, Col %d ", pos.Row+1, pos.Col+1)
	}

	gap := strings.Repeat(" ", max(0, m.width-lipgloss.Width(footer)-lipgloss.Width(position)))

	return footer + m.theme.StatusLineStyle.Render(gap+position)
}
