package core

// IdleMode is navigation mode. It optionally carries the status message
// left by the last command.
type IdleMode struct {
	Message string
}

func (IdleMode) Name() Mode  { return ModeIdle }
func (IdleMode) editorMode() {}

func (m IdleMode) Display() string {
	if m.Message != "" {
		return m.Message
	}
	return "Idle"
}

func (s *Session) handleIdleKey(key KeyEvent) error {
	b := s.buffer

	switch key.Key {
	case KeyLeft:
		b.MoveLeft()
		return nil
	case KeyRight:
		b.MoveRight()
		return nil
	case KeyUp:
		b.MoveUp()
		return nil
	case KeyDown:
		b.MoveDown()
		return nil
	case KeyEscape:
		s.setMode(IdleMode{})
		return nil
	}

	if key.Modifiers&(ModCtrl|ModAlt) != 0 {
		return nil
	}

	switch key.Rune {
	case 'h':
		b.MoveLeft()
	case 'l':
		b.MoveRight()
	case 'k':
		b.MoveUp()
	case 'j':
		b.MoveDown()
	case 'w':
		b.MoveByWord()
	case 'G':
		b.MoveToEnd()
	case 'g':
		b.MoveToStart()
	case 'd':
		b.DeleteCurrentLine()
	case 'O':
		b.InsertLineAbove()
	case 'o':
		b.InsertLineBelow()
	case 'i':
		s.setMode(EditMode{})
	case ':':
		s.setMode(CommandMode{})
	case 'q':
		s.Quit()
	case 'y':
		return s.yankLine()
	case 'p':
		return s.paste()
	}

	return nil
}

// yankLine copies the cursor's line to the clipboard
func (s *Session) yankLine() error {
	if s.clipboard == nil {
		return s.fail(ErrFailedToYankId, ErrNoClipboard)
	}

	line := s.buffer.CurrentLine()
	if err := s.clipboard.Write(line); err != nil {
		return s.fail(ErrFailedToYankId, err)
	}

	s.setMode(IdleMode{Message: LineYankedMessage})
	s.DispatchSignal(YankSignal{content: line})
	return nil
}

// paste inserts the clipboard content at the cursor
func (s *Session) paste() error {
	if s.clipboard == nil {
		return s.fail(ErrFailedToPasteId, ErrNoClipboard)
	}

	content, err := s.clipboard.Read()
	if err != nil {
		return s.fail(ErrFailedToPasteId, err)
	}

	s.buffer.InsertString(content)
	s.setMode(IdleMode{Message: PastedMessage})
	s.DispatchSignal(PasteSignal{content: content})
	return nil
}
