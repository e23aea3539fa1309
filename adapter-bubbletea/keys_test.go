package bubble_adapter

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/minivi/core"
	"github.com/stretchr/testify/assert"
)

func TestConvertBubbleKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.KeyEvent
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.Char('a')},
		{"multi-byte rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("é")}, core.Char('é')},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, core.KeyEvent{Rune: 'x', Modifiers: core.ModAlt}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.KeyEvent{Key: core.KeySpace, Rune: ' '}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.KeyEvent{Key: core.KeyTab, Rune: '\t'}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Special(core.KeyEnter)},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.Special(core.KeyEscape)},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.Special(core.KeyBackspace)},
		{"ctrl+h is backspace", tea.KeyMsg{Type: tea.KeyCtrlH}, core.Special(core.KeyBackspace)},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.Special(core.KeyUp)},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.Special(core.KeyDown)},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.Special(core.KeyLeft)},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.Special(core.KeyRight)},
		{"ctrl letter", tea.KeyMsg{Type: tea.KeyCtrlX}, core.KeyEvent{Rune: 'x', Modifiers: core.ModCtrl}},
		{"unsupported", tea.KeyMsg{Type: tea.KeyF5}, core.KeyEvent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertBubbleKey(tt.msg))
		})
	}
}

func TestKeyEventsSplitsRuneBursts(t *testing.T) {
	events := keyEvents(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hé!")})

	assert.Equal(t, []core.KeyEvent{core.Char('h'), core.Char('é'), core.Char('!')}, events)
}

func TestDefaultKeyMapIsEnabled(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, km.ForceQuit.Enabled())
	assert.Equal(t, []string{"ctrl+c"}, km.ForceQuit.Keys())
	assert.Equal(t, []string{"ctrl+n"}, km.ToggleLineNumbers.Keys())
}
