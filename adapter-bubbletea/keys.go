package bubble_adapter

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/minivi/core"
)

// KeyMap holds the bindings handled by the adapter itself. Everything else
// is converted and handed to the editor.
type KeyMap struct {
	ForceQuit         key.Binding
	ToggleLineNumbers key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		ForceQuit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit without saving")),
		ToggleLineNumbers: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "toggle line numbers")),
	}
}

// keyEvents converts a bubbletea key message into editor key events. A
// message carrying several runes yields one event per rune. Bracketed
// pastes never get here.
func keyEvents(msg tea.KeyMsg) []core.KeyEvent {
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		events := make([]core.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			event := core.Char(r)
			if msg.Alt {
				event.Modifiers |= core.ModAlt
			}
			events = append(events, event)
		}
		return events
	}

	return []core.KeyEvent{convertBubbleKey(msg)}
}

// Convert Bubbletea key to core.KeyEvent
func convertBubbleKey(msg tea.KeyMsg) core.KeyEvent {
	key := core.KeyEvent{}

	if len(msg.Runes) > 0 {
		key.Rune = msg.Runes[0]
	}

	if msg.Alt {
		key.Modifiers |= core.ModAlt
	}

	switch msg.Type {
	case tea.KeyEnter:
		key.Key = core.KeyEnter
	case tea.KeySpace:
		key.Key = core.KeySpace
		key.Rune = ' '
	case tea.KeyEsc:
		key.Key = core.KeyEscape
	case tea.KeyBackspace, tea.KeyCtrlH:
		key.Key = core.KeyBackspace
	case tea.KeyTab:
		key.Key = core.KeyTab
		key.Rune = '\t'
	case tea.KeyUp:
		key.Key = core.KeyUp
	case tea.KeyDown:
		key.Key = core.KeyDown
	case tea.KeyLeft:
		key.Key = core.KeyLeft
	case tea.KeyRight:
		key.Key = core.KeyRight
	default:
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			key.Modifiers |= core.ModCtrl
			key.Rune = 'a' + rune(msg.Type-tea.KeyCtrlA)
		}
	}

	return key
}
