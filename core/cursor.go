package core

// Cursor is a byte offset into the buffer content.
// It knows nothing about the content it points into; the owning buffer
// is responsible for keeping Location within [0, len(content)].
type Cursor struct {
	Location int
}

// --- Cursor Movement ---

// MoveChar advances the cursor by one unit.
func (c *Cursor) MoveChar() {
	c.Location++
}

// BackChar moves the cursor back by one unit, saturating at 0.
func (c *Cursor) BackChar() {
	if c.Location != 0 {
		c.Location--
	}
}

// MoveAhead advances the cursor by dist.
func (c *Cursor) MoveAhead(dist int) {
	c.Location += dist
}

// MoveBehind moves the cursor back by dist. A move that would go
// below zero is dropped and the cursor keeps its current value.
func (c *Cursor) MoveBehind(dist int) {
	if c.Location >= dist {
		c.Location -= dist
	}
}

// MoveTo places the cursor at an absolute offset.
func (c *Cursor) MoveTo(loc int) {
	c.Location = loc
}

// clamp keeps the cursor within [0, length]
func (c *Cursor) clamp(length int) {
	if c.Location < 0 {
		c.Location = 0
	} else if c.Location > length {
		c.Location = length
	}
}
