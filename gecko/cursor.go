package gecko

// cursor is a bounds-checked sequential reader over a fixed word sequence.
// It only ever advances; it is created fresh per decode call and discarded
// when the call returns. The underlying sequence is never copied or altered.
type cursor struct {
	words []uint32
	pos   int
}

func newCursor(words []uint32) *cursor {
	return &cursor{words: words}
}

// readAndAdvance returns the word at the current position and advances by
// one. Reading past the end is a Truncated error, never a crash.
func (c *cursor) readAndAdvance() (uint32, error) {
	if c.pos >= len(c.words) {
		return 0, errTruncated(c.pos)
	}
	w := c.words[c.pos]
	c.pos++
	return w, nil
}

// peek returns the word at the current position without consuming it.
func (c *cursor) peek() (uint32, error) {
	if c.pos >= len(c.words) {
		return 0, errTruncated(c.pos)
	}
	return c.words[c.pos], nil
}

func (c *cursor) position() int { return c.pos }

func (c *cursor) remaining() int { return len(c.words) - c.pos }
