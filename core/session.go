package core

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
)

const signalBufferSize = 100

// Session is one editing session: the buffer, the current mode and the
// running flag, owned exclusively by whoever drives HandleKey.
type Session struct {
	buffer  *TextBuffer
	mode    EditorMode
	running bool

	clipboard    Clipboard // optional, used by yank and paste
	updateSignal chan Signal
}

// NewSession starts a session over buffer. clipboard may be nil, in which
// case yank and paste report ErrNoClipboard.
func NewSession(buffer *TextBuffer, clipboard Clipboard) *Session {
	if buffer == nil {
		buffer = NewBuffer()
	}

	message := OpenedUntitledMessage
	if buffer.Path() != "" {
		message = OpenedFileMessage
	}

	return &Session{
		buffer:       buffer,
		mode:         IdleMode{Message: message},
		running:      true,
		clipboard:    clipboard,
		updateSignal: make(chan Signal, signalBufferSize),
	}
}

// Open loads path (see Load) and starts a session over it.
func Open(path string, clipboard Clipboard) *Session {
	return NewSession(Load(path), clipboard)
}

func (s *Session) Mode() EditorMode {
	return s.mode
}

func (s *Session) Running() bool {
	return s.running
}

func (s *Session) Content() string {
	return s.buffer.Content()
}

func (s *Session) CursorLocation() int {
	return s.buffer.Location()
}

func (s *Session) Position() Position {
	return s.buffer.Position()
}

// FileName returns the base name of the bound file, or "" for an untitled buffer.
func (s *Session) FileName() string {
	if s.buffer.Path() == "" {
		return ""
	}
	return filepath.Base(s.buffer.Path())
}

func (s *Session) GetUpdateSignalChan() <-chan Signal {
	return s.updateSignal
}

// HandleKey dispatches one decoded key press to the current mode. Each call
// runs at most one buffer operation and leaves the cursor valid. The
// returned error describes a failed intent; it has already been turned into
// the idle status message and an ErrorSignal.
func (s *Session) HandleKey(key KeyEvent) error {
	if !s.running {
		return nil
	}

	switch mode := s.mode.(type) {
	case IdleMode:
		return s.handleIdleKey(key)
	case EditMode:
		return s.handleEditKey(key)
	case CommandMode:
		return s.handleCommandKey(mode, key)
	default:
		return s.fail(ErrInvalidModeId, fmt.Errorf("%w: %T", ErrInvalidMode, mode))
	}
}

// PasteText handles a bracketed paste. The text is literal input: it is
// inserted in Edit mode, appended to the command line in Command mode and
// dropped in Idle mode, so pasted letters never run as commands.
func (s *Session) PasteText(text string) error {
	if !s.running || text == "" {
		return nil
	}

	switch mode := s.mode.(type) {
	case EditMode:
		s.buffer.InsertString(text)
	case CommandMode:
		line := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(text)
		s.mode = CommandMode{Input: mode.Input + line}
	default:
		log.Printf("ignoring paste of %d bytes outside edit mode", len(text))
	}
	return nil
}

// Quit ends the session. The outer loop stops once Running reports false.
func (s *Session) Quit() {
	s.running = false
	s.DispatchSignal(QuitSignal{})
}

func (s *Session) setMode(mode EditorMode) {
	var from Mode
	if s.mode != nil {
		from = s.mode.Name()
	}
	s.mode = mode
	if from != mode.Name() {
		s.DispatchSignal(ModeChangeSignal{from: from, to: mode.Name()})
	}
}

// fail records a failed intent as the idle status and reports it.
func (s *Session) fail(id ErrorId, err error) error {
	log.Printf("intent failed: %v", err)
	s.setMode(IdleMode{Message: err.Error()})
	s.DispatchError(id, err)
	return newError(id, err)
}

var _ Editor = (*Session)(nil)
