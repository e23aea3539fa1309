package core

// Position is a row/column view of the cursor offset, for display only.
type Position struct {
	Row int // Zero-indexed row (line number)
	Col int // Zero-indexed column, in grapheme clusters
}

// Editor is what a UI layer needs from a session: one entry point that
// feeds decoded keys in, and read-only accessors for rendering.
type Editor interface {
	HandleKey(key KeyEvent) error
	PasteText(text string) error

	Content() string
	CursorLocation() int
	Position() Position
	Mode() EditorMode
	FileName() string
	Running() bool

	GetUpdateSignalChan() <-chan Signal
}

type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}
