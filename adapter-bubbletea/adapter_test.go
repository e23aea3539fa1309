package bubble_adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/minivi/config"
	"github.com/ionut-t/minivi/core"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and flattens any batches into the messages they produce
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}

	return []tea.Msg{msg}
}

func send(m Model, msgs ...tea.Msg) (Model, []tea.Msg) {
	var out []tea.Msg
	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		m = next.(Model)
		out = append(out, collect(cmd)...)
	}
	return m, out
}

func TestUpdateMovesCursor(t *testing.T) {
	s := core.NewSession(core.NewBufferFromString("abc\ndef"), nil)
	m := New(s, 40, 10)

	_, msgs := send(m, runes("l"), tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 5, s.CursorLocation())
	assert.Empty(t, msgs)
}

func TestUpdateQuit(t *testing.T) {
	s := core.NewSession(core.NewBuffer(), nil)
	m := New(s, 40, 10)

	_, msgs := send(m, runes("q"))

	assert.False(t, s.Running())
	assert.Contains(t, msgs, tea.Msg(tea.QuitMsg{}))
}

func TestUpdateForceQuit(t *testing.T) {
	s := core.NewSession(core.NewBufferFromString("abc"), nil)
	m := New(s, 40, 10)

	_, msgs := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Equal(t, []tea.Msg{tea.QuitMsg{}}, msgs)
	assert.True(t, s.Running(), "ctrl+c never reaches the editor")
	assert.Equal(t, "abc", s.Content())
}

func TestUpdateSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	s := core.Open(path, nil)
	m := New(s, 40, 10)

	m, msgs := send(m,
		runes("i"),
		runes("ab"),
		tea.KeyMsg{Type: tea.KeyEsc},
		runes(":w"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Contains(t, msgs, tea.Msg(SaveMsg(path)))
	assert.NoError(t, m.Err())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(data))
	assert.Contains(t, m.View(), core.FileWrittenMessage)
}

func TestUpdateShowsError(t *testing.T) {
	s := core.NewSession(core.NewBufferFromString("abc"), nil)
	m := New(s, 80, 10)

	m, _ = send(m, runes(":w"), tea.KeyMsg{Type: tea.KeyEnter})

	require.ErrorIs(t, m.Err(), core.ErrNoFileInBuffer)
	assert.Contains(t, m.View(), core.ErrNoFileInBuffer.Error())

	m, _ = send(m, runes("l"))
	assert.NoError(t, m.Err(), "the next key press clears the error")
}

func TestViewRendersTitleContentAndFooter(t *testing.T) {
	b := core.NewBufferFromString("ab\ncd")
	b.SetPath(filepath.Join("dir", "notes.txt"))
	s := core.NewSession(b, nil)
	m := New(s, 40, 10)

	m, _ = send(m, runes("l"))
	view := m.View()

	assert.Contains(t, view, "notes.txt")
	assert.Contains(t, view, "  1 a|b")
	assert.Contains(t, view, "  2 cd")
	assert.Contains(t, view, core.OpenedFileMessage)
	assert.Contains(t, view, "Ln 1, Col 2")
}

func TestViewUntitledAndModes(t *testing.T) {
	s := core.NewSession(core.NewBuffer(), nil)
	m := New(s, 40, 10)

	assert.Contains(t, m.View(), noFileTitle)
	assert.Contains(t, m.View(), core.OpenedUntitledMessage)

	m, _ = send(m, runes("i"))
	assert.Contains(t, m.View(), " Edit ")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc}, runes(":wq"))
	assert.Contains(t, m.View(), "=> wq")
}

func TestHideStatusLine(t *testing.T) {
	s := core.NewSession(core.NewBufferFromString("abc"), nil)
	m := New(s, 40, 10)
	m.HideStatusLine(true)

	assert.NotContains(t, m.View(), "Ln 1")
}

func TestRenderContent(t *testing.T) {
	s := core.NewSession(core.NewBufferFromString("a\tb\nc"), nil)
	m := New(s, 40, 10)

	m.HideLineNumbers(true)
	assert.Equal(t, "|a    b\nc", m.renderContent())

	m.SetCursorMarker("▏")
	assert.Equal(t, "▏a    b\nc", m.renderContent())

	m.SetCursorMarker("")
	assert.Equal(t, "▏a    b\nc", m.renderContent(), "an empty marker is ignored")
}

func TestToggleLineNumbers(t *testing.T) {
	s := core.NewSession(core.NewBufferFromString("ab"), nil)
	m := New(s, 40, 10)
	assert.Equal(t, "  1 |ab", m.renderContent())

	m, msgs := send(m, tea.KeyMsg{Type: tea.KeyCtrlN})

	assert.Empty(t, msgs)
	assert.Equal(t, "|ab", m.renderContent())
	assert.Equal(t, "ab", s.Content())
}

func TestViewportFollowsCursor(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = fmt.Sprint(i)
	}
	s := core.NewSession(core.NewBufferFromString(strings.Join(lines, "\n")), nil)
	m := New(s, 40, 5)
	require.Equal(t, 3, m.viewport.Height)

	m, _ = send(m, runes("G"))
	assert.Equal(t, 17, m.viewport.YOffset)
	assert.Contains(t, m.View(), " 20 19|")

	m, _ = send(m, runes("g"))
	assert.Equal(t, 0, m.viewport.YOffset)
}

func TestWindowSize(t *testing.T) {
	m := New(core.NewSession(core.NewBuffer(), nil), 40, 10)

	m, _ = send(m, tea.WindowSizeMsg{Width: 50, Height: 12})

	assert.Equal(t, 50, m.viewport.Width)
	assert.Equal(t, 10, m.viewport.Height)
}

func TestNewThemeFallsBackToDefaults(t *testing.T) {
	theme := NewTheme(config.ThemeSettings{Edit: "#00ff00"})

	assert.Equal(t, lipgloss.Color("#00ff00"), theme.EditModeStyle.GetBackground())
	assert.Equal(t, lipgloss.Color(config.DefaultThemeSettings().Idle), theme.IdleModeStyle.GetBackground())
	assert.Equal(t, theme.EditModeStyle, theme.modeStyle(core.EditMode{}))
	assert.Equal(t, theme.CommandModeStyle, theme.modeStyle(core.CommandMode{}))
	assert.Equal(t, theme.IdleModeStyle, theme.modeStyle(core.IdleMode{}))
}

func paste(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

func TestBracketedPasteInIdleNeverRunsCommands(t *testing.T) {
	s := core.NewSession(core.NewBufferFromString("keep me\nsecond"), nil)
	m := New(s, 40, 10)

	_, msgs := send(m, paste("dq"))

	assert.Equal(t, "keep me\nsecond", s.Content())
	assert.True(t, s.Running())
	assert.NotContains(t, msgs, tea.Msg(tea.QuitMsg{}))
}

func TestBracketedPasteInEditInsertsText(t *testing.T) {
	s := core.NewSession(core.NewBufferFromString("x"), nil)
	m := New(s, 40, 10)

	m, _ = send(m, runes("i"), paste("dq\no"))

	assert.Equal(t, "dq\nox", s.Content())
	assert.Equal(t, core.EditMode{}, s.Mode())
	assert.Contains(t, m.View(), "  2 o|x")
}

func TestBracketedPasteInCommandLine(t *testing.T) {
	s := core.NewSession(core.NewBuffer(), nil)
	m := New(s, 40, 10)

	m, _ = send(m, runes(":"), paste("wq"))

	assert.Equal(t, core.CommandMode{Input: "wq"}, s.Mode())
	assert.True(t, s.Running(), "the pasted command waits for enter")
	assert.Contains(t, m.View(), "=> wq")
}

func TestCtrlHDeletesBackward(t *testing.T) {
	s := core.NewSession(core.NewBufferFromString("ab"), nil)
	m := New(s, 40, 10)

	_, _ = send(m, runes("G"), runes("i"), tea.KeyMsg{Type: tea.KeyCtrlH})

	assert.Equal(t, "a", s.Content())
}
