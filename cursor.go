package cbor

// cursor tracks the write position inside a fixed-capacity destination
// buffer. A cursor is private to a single Encode call: created at the
// start, discarded at the end, never shared or reused.
type cursor struct {
	buf []byte
	pos int
}

// writeByte stores b at the current position and advances by one. When the
// buffer is full it fails with ErrBufferTooSmall and leaves both the
// buffer and the position unchanged; bytes written by earlier calls stay
// committed.
func (c *cursor) writeByte(b byte) error {
	if c.pos >= len(c.buf) {
		return ErrBufferTooSmall
	}
	c.buf[c.pos] = b
	c.pos++
	return nil
}
