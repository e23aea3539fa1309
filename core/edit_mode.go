package core

// EditMode routes character input to the buffer.
type EditMode struct{}

func (EditMode) Name() Mode      { return ModeEdit }
func (EditMode) Display() string { return "Edit" }
func (EditMode) editorMode()     {}

func (s *Session) handleEditKey(key KeyEvent) error {
	b := s.buffer

	switch key.Key {
	case KeyEscape:
		s.setMode(IdleMode{})
	case KeyBackspace:
		b.DeleteBackward()
	case KeyEnter:
		b.InsertNewline()
	case KeyTab:
		b.InsertChar('\t')
	case KeyLeft:
		b.MoveLeft()
	case KeyRight:
		b.MoveRight()
	case KeyUp:
		b.MoveUp()
	case KeyDown:
		b.MoveDown()
	default:
		// Space arrives both as KeySpace and as a rune
		if key.printable() {
			b.InsertChar(key.Rune)
		}
	}

	return nil
}
