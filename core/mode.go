package core

type Mode string

const (
	ModeIdle    Mode = "idle"
	ModeEdit    Mode = "edit"
	ModeCommand Mode = "command"
)

// EditorMode is the input-interpretation state of a session.
// The set is closed: IdleMode, EditMode and CommandMode are the only
// implementations, and Session.HandleKey switches over them exhaustively.
type EditorMode interface {
	Name() Mode
	// Display returns the text shown in the footer for this mode.
	Display() string
	editorMode()
}
