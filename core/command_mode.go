package core

import (
	"errors"
	"fmt"
	"strings"
)

// CommandMode accumulates a command line instead of editing the buffer.
type CommandMode struct {
	Input string
}

func (CommandMode) Name() Mode  { return ModeCommand }
func (CommandMode) editorMode() {}

func (m CommandMode) Display() string {
	return "=> " + m.Input
}

func (s *Session) handleCommandKey(mode CommandMode, key KeyEvent) error {
	switch key.Key {
	case KeyEscape:
		s.setMode(IdleMode{})
		return nil

	case KeyBackspace:
		if mode.Input == "" {
			// Backspace on empty command line goes back to idle
			s.setMode(IdleMode{})
			return nil
		}
		runes := []rune(mode.Input)
		s.mode = CommandMode{Input: string(runes[:len(runes)-1])}
		return nil

	case KeyEnter:
		message, err := s.ExecuteCommand(mode.Input)
		if err != nil {
			return s.fail(commandErrorID(err), err)
		}
		s.setMode(IdleMode{Message: message})
		if message != EmptyMessage {
			s.DispatchMessage(message)
		}
		return nil
	}

	if key.printable() {
		s.mode = CommandMode{Input: mode.Input + string(key.Rune)}
	}
	return nil
}

// ExecuteCommand evaluates a command line and returns the status message
// describing its outcome.
func (s *Session) ExecuteCommand(cmd string) (string, error) {
	switch strings.TrimSpace(cmd) {
	case "":
		return EmptyMessage, nil

	case "q", "quit":
		s.Quit()
		return ExitingMessage, nil

	case "w", "write":
		if err := s.write(); err != nil {
			return EmptyMessage, err
		}
		return FileWrittenMessage, nil

	case "wq":
		if err := s.write(); err != nil {
			return EmptyMessage, err
		}
		s.Quit()
		return ExitingMessage, nil

	default:
		return EmptyMessage, fmt.Errorf("%w: %s", ErrInvalidCommand, strings.TrimSpace(cmd))
	}
}

func (s *Session) write() error {
	if err := s.buffer.Save(); err != nil {
		return err
	}
	s.DispatchSignal(SaveSignal{path: s.buffer.Path()})
	return nil
}

func commandErrorID(err error) ErrorId {
	switch {
	case errors.Is(err, ErrInvalidCommand):
		return ErrInvalidCommandId
	case errors.Is(err, ErrNoFileInBuffer):
		return ErrNoFileInBufferId
	default:
		return ErrFailedToSaveId
	}
}
