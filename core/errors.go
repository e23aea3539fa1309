package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
)

var (
	ErrNoFileInBuffer  = fmt.Errorf("no file in buffer: %w", fs.ErrNotExist)
	ErrInvalidCommand  = errors.New("no such command found")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrNoClipboard     = errors.New("clipboard handler not set")
	ErrInvalidEncoding = errors.New("content is not valid UTF-8")
)

type ErrorId int

const (
	ErrNoFileInBufferId ErrorId = iota
	ErrInvalidCommandId
	ErrInvalidModeId
	ErrFailedToSaveId
	ErrFailedToYankId
	ErrFailedToPasteId
)

// Error is a classified failure of a single intent.
type Error struct {
	ID  ErrorId
	Err error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(id ErrorId, err error) *Error {
	return &Error{ID: id, Err: err}
}

// DispatchError reports err to consumers of the signal channel.
func (s *Session) DispatchError(id ErrorId, err error) {
	select {
	case s.updateSignal <- ErrorSignal{id, err}:
	default:
		log.Println("Channel is full, unable to send error signal")
	}
}
