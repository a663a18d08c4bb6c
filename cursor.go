package gpr

// cursor is a bounds-checked scanning window over a slice of elements.
// The same primitive drives both phases of the pipeline: character-level
// lexing uses cursor[byte], token-level chunk parsing uses cursor[string].
type cursor[T any] struct {
	elems []T
	pos   int
}

func newCursor[T any](elems []T) *cursor[T] { return &cursor[T]{elems: elems} }

// left reports whether any elements remain unconsumed.
func (c *cursor[T]) left() bool { return c.pos < len(c.elems) }

// peek returns the current element without advancing.
func (c *cursor[T]) peek() (T, bool) { return c.peekAt(0) }

// peekAt returns the element n positions ahead of the current one.
func (c *cursor[T]) peekAt(n int) (T, bool) {
	idx := c.pos + n
	if idx < 0 || idx >= len(c.elems) {
		var zero T
		return zero, false
	}
	return c.elems[idx], true
}

func (c *cursor[T]) advance() {
	if c.left() {
		c.pos++
	}
}

// remaining returns the unconsumed tail of the input, for diagnostics.
func (c *cursor[T]) remaining() []T { return c.elems[c.pos:] }
