package core

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// TextBuffer holds the text being edited and the single cursor pointing into it.
// Offsets are byte offsets into content; line boundaries are found by scanning
// for '\n' on every call rather than kept in a line table.
type TextBuffer struct {
	content string
	cursor  Cursor
	path    string // empty for an untitled buffer
}

// NewBuffer creates a new empty, untitled buffer
func NewBuffer() *TextBuffer {
	return &TextBuffer{}
}

// NewBufferFromString creates an untitled buffer holding content with the
// cursor at offset 0. Invalid UTF-8 sequences are replaced with U+FFFD.
func NewBufferFromString(content string) *TextBuffer {
	return &TextBuffer{content: strings.ToValidUTF8(content, string(utf8.RuneError))}
}

func (b *TextBuffer) Content() string {
	return b.content
}

func (b *TextBuffer) Len() int {
	return len(b.content)
}

func (b *TextBuffer) IsEmpty() bool {
	return len(b.content) == 0
}

func (b *TextBuffer) Path() string {
	return b.path
}

// SetPath binds the buffer to a file. An empty path makes it untitled.
func (b *TextBuffer) SetPath(path string) {
	b.path = path
}

// Location returns the cursor offset
func (b *TextBuffer) Location() int {
	return b.cursor.Location
}

// SetCursor places the cursor at loc, validating and clamping it.
func (b *TextBuffer) SetCursor(loc int) {
	b.cursor.MoveTo(loc)
	b.settle()
}

// Position returns the cursor's zero-indexed row and its column counted in
// grapheme clusters from the start of the line.
func (b *TextBuffer) Position() Position {
	loc := b.cursor.Location
	start := b.lineStart(loc)
	return Position{
		Row: strings.Count(b.content[:loc], "\n"),
		Col: uniseg.GraphemeClusterCount(b.content[start:loc]),
	}
}

// CurrentLine returns the text of the cursor's line without its newline.
func (b *TextBuffer) CurrentLine() string {
	loc := b.cursor.Location
	return b.content[b.lineStart(loc):b.lineEnd(loc)]
}

// --- Character-level editing ---

// InsertChar inserts ch at the cursor and moves the cursor past it.
func (b *TextBuffer) InsertChar(ch rune) {
	b.InsertString(string(ch))
}

// InsertNewline inserts a line break at the cursor.
func (b *TextBuffer) InsertNewline() {
	b.InsertChar('\n')
}

// InsertString inserts s at the cursor and moves the cursor past it.
func (b *TextBuffer) InsertString(s string) {
	s = strings.ToValidUTF8(s, string(utf8.RuneError))
	if s == "" {
		return
	}
	b.insert(b.cursor.Location, s)
	if len(s) == 1 {
		b.cursor.MoveChar()
	} else {
		b.cursor.MoveAhead(len(s))
	}
	b.settle()
}

// DeleteBackward removes the character immediately left of the cursor
// (backspace). It is a no-op at the start of the buffer.
func (b *TextBuffer) DeleteBackward() {
	loc := b.cursor.Location
	if loc == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(b.content[:loc])
	b.remove(loc-size, loc)
	b.cursor.MoveBehind(size)
	b.settle()
}

// --- Navigation ---

// MoveRight advances the cursor by one character, stopping at the end of the buffer.
// It does not wrap to the next line any differently from any other character.
func (b *TextBuffer) MoveRight() {
	loc := b.cursor.Location
	if loc >= len(b.content) {
		return
	}
	_, size := utf8.DecodeRuneInString(b.content[loc:])
	b.cursor.MoveAhead(size)
	b.settle()
}

// MoveLeft moves the cursor back by one character, stopping at 0.
func (b *TextBuffer) MoveLeft() {
	loc := b.cursor.Location
	if loc == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(b.content[:loc])
	if size == 1 {
		b.cursor.BackChar()
	} else {
		b.cursor.MoveBehind(size)
	}
	b.settle()
}

// MoveUp moves the cursor to the same column on the previous line. When that
// line is shorter than the column the cursor lands at its end.
func (b *TextBuffer) MoveUp() {
	loc := b.cursor.Location
	prevNewline := strings.LastIndexByte(b.content[:loc], '\n')
	if prevNewline < 0 {
		// already on the first line
		return
	}

	col := loc - (prevNewline + 1)
	aboveStart := b.lineStart(prevNewline)
	aboveLen := prevNewline - aboveStart

	target := b.runeStart(aboveStart + min(col, aboveLen))
	b.cursor.MoveBehind(loc - target)
	b.settle()
}

// MoveDown moves the cursor to the same column on the next line, clamped to
// that line's length. It is a no-op on the last line.
func (b *TextBuffer) MoveDown() {
	loc := b.cursor.Location
	nextNewline := strings.IndexByte(b.content[loc:], '\n')
	if nextNewline < 0 {
		// already on the last line
		return
	}
	nextNewline += loc

	col := loc - b.lineStart(loc)
	belowStart := nextNewline + 1
	belowLen := b.lineEnd(belowStart) - belowStart

	target := min(belowStart+min(col, belowLen), len(b.content))
	target = b.runeStart(target)
	b.cursor.MoveAhead(target - loc)
	b.settle()
}

// MoveByWord moves the cursor forward onto the nearer of the next space or
// newline. When the cursor already sits on one it steps over it. With no
// delimiter left the cursor stops on the last character, one short of the
// end of the buffer.
func (b *TextBuffer) MoveByWord() {
	loc := b.cursor.Location
	if loc >= len(b.content) {
		return
	}

	rest := b.content[loc:]
	next := nearest(strings.IndexByte(rest, ' '), strings.IndexByte(rest, '\n'))
	switch {
	case next == 0:
		b.cursor.MoveChar()
	case next > 0:
		b.cursor.MoveAhead(next)
	default:
		_, size := utf8.DecodeLastRuneInString(rest)
		b.cursor.MoveAhead(len(rest) - size)
	}
	b.settle()
}

// MoveToEnd places the cursor at the end of the buffer.
func (b *TextBuffer) MoveToEnd() {
	b.cursor.MoveTo(len(b.content))
}

// MoveToStart places the cursor at the start of the buffer.
func (b *TextBuffer) MoveToStart() {
	b.cursor.MoveTo(0)
}

// --- Line-level editing ---

// InsertLineBelow opens an empty line after the cursor's line and puts the
// cursor on it.
func (b *TextBuffer) InsertLineBelow() {
	if b.IsEmpty() {
		b.content = "\n"
		b.cursor.MoveTo(1)
		return
	}

	if newline := strings.IndexByte(b.content[b.cursor.Location:], '\n'); newline >= 0 {
		b.cursor.MoveAhead(newline)
		b.InsertNewline()
		return
	}

	// last line
	b.content += "\n"
	b.MoveToEnd()
}

// InsertLineAbove opens an empty line before the cursor's line and puts the
// cursor on it.
func (b *TextBuffer) InsertLineAbove() {
	if b.IsEmpty() {
		b.content = "\n"
		return
	}

	loc := b.cursor.Location
	if newline := strings.LastIndexByte(b.content[:loc], '\n'); newline >= 0 {
		b.cursor.MoveBehind(loc - newline)
		b.InsertNewline()
		return
	}

	// first line
	b.cursor.MoveTo(0)
	b.insert(0, "\n")
}

// DeleteCurrentLine removes the cursor's line together with exactly one line
// separator: the newline ending the line, or for the last line the newline
// before it. The cursor moves to where the line started.
func (b *TextBuffer) DeleteCurrentLine() {
	if b.IsEmpty() {
		b.cursor.MoveTo(0)
		return
	}

	loc := b.cursor.Location
	start := b.lineStart(loc)
	end := b.lineEnd(loc)

	switch {
	case end < len(b.content):
		b.remove(start, end+1)
		b.cursor.MoveTo(start)
	case start > 0:
		b.remove(start-1, len(b.content))
		b.cursor.MoveTo(start - 1)
	default:
		b.content = ""
		b.cursor.MoveTo(0)
	}
	b.settle()
}

// --- helpers ---

func (b *TextBuffer) insert(at int, s string) {
	b.content = b.content[:at] + s + b.content[at:]
}

// remove drains the half-open range [start, end)
func (b *TextBuffer) remove(start, end int) {
	b.content = b.content[:start] + b.content[end:]
}

// lineStart returns the offset just after the newline preceding loc, or 0.
func (b *TextBuffer) lineStart(loc int) int {
	return strings.LastIndexByte(b.content[:loc], '\n') + 1
}

// lineEnd returns the offset of the newline at or after loc, or len(content).
func (b *TextBuffer) lineEnd(loc int) int {
	if i := strings.IndexByte(b.content[loc:], '\n'); i >= 0 {
		return loc + i
	}
	return len(b.content)
}

// runeStart steps loc back to the first byte of the rune containing it.
func (b *TextBuffer) runeStart(loc int) int {
	for loc > 0 && loc < len(b.content) && !utf8.RuneStart(b.content[loc]) {
		loc--
	}
	return loc
}

// settle re-establishes the cursor invariant after an operation
func (b *TextBuffer) settle() {
	b.cursor.clamp(len(b.content))
	b.cursor.Location = b.runeStart(b.cursor.Location)
}

// nearest returns the smaller of two string indexes, ignoring misses (-1).
func nearest(a, b int) int {
	if a < 0 {
		return b
	}
	if b < 0 {
		return a
	}
	return min(a, b)
}
