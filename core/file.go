package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"unicode/utf8"
)

// Load creates the buffer for a session.
//
// An empty path gives an untitled buffer. A path that does not exist yet
// gives an empty buffer bound to it, so the first write creates the file.
// A path that exists but cannot be read as text degrades to an untitled
// empty buffer instead of failing the session.
func Load(path string) *TextBuffer {
	if path == "" {
		return NewBuffer()
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		b := NewBuffer()
		b.SetPath(path)
		return b

	case err != nil:
		log.Printf("load %s: %v, starting an untitled buffer", path, err)
		return NewBuffer()

	case !utf8.Valid(data):
		log.Printf("load %s: %v, starting an untitled buffer", path, ErrInvalidEncoding)
		return NewBuffer()
	}

	b := NewBufferFromString(string(data))
	b.SetPath(path)
	return b
}

// Save overwrites the bound file with the full buffer content.
func (b *TextBuffer) Save() error {
	if b.path == "" {
		return ErrNoFileInBuffer
	}

	if err := os.WriteFile(b.path, []byte(b.content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", b.path, err)
	}

	return nil
}
