// Package scan provides a zero-copy byte cursor for hand-written
// recursive-descent parsers.
//
// A Cursor reads from a caller-owned buffer that must not change while the
// cursor is in use. Matching methods either consume and report success or
// leave the position untouched, so a grammar can try an alternative or
// restore an earlier Checkpoint. Methods that consume a caller-supplied count
// panic when fewer bytes remain; a grammar must establish the count through a
// match or Peek first.
//
// A Cursor is not safe for concurrent use. Any number of cursors may share
// one buffer.
package scan

import (
	"fmt"

	"github.com/yaklabco/markscan/pkg/lookup"
)

// Cursor is a read position into an immutable byte buffer.
type Cursor struct {
	buf []byte
	pos int
}

// Checkpoint is a saved cursor position.
//
// A Checkpoint may only be restored on the cursor it was taken from.
type Checkpoint struct {
	pos int
}

// New returns a cursor positioned at the start of buf.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current offset into the buffer.
func (c *Cursor) Pos() int {
	return c.pos
}

// Rest returns the unconsumed bytes. The slice aliases the buffer.
func (c *Cursor) Rest() []byte {
	return c.buf[c.pos:]
}

// Len returns the number of unconsumed bytes.
func (c *Cursor) Len() int {
	return len(c.buf) - c.pos
}

// AtEnd reports whether every byte has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos == len(c.buf)
}

// Checkpoint captures the current position.
func (c *Cursor) Checkpoint() Checkpoint {
	return Checkpoint{pos: c.pos}
}

// Restore rewinds (or forwards) the cursor to cp.
// cp must come from this cursor; it is not validated.
func (c *Cursor) Restore(cp Checkpoint) {
	c.pos = cp.pos
}

// ShiftIf consumes the next byte if it equals b.
func (c *Cursor) ShiftIf(b byte) bool {
	if c.pos < len(c.buf) && c.buf[c.pos] == b {
		c.pos++
		return true
	}
	return false
}

// ShiftIfIn consumes and returns the next byte if it is a member of t.
func (c *Cursor) ShiftIfIn(t *lookup.Table) (byte, bool) {
	if c.pos < len(c.buf) {
		if b := c.buf[c.pos]; t[b] {
			c.pos++
			return b, true
		}
	}
	return 0, false
}

// ShiftIfSeq consumes seq if the unconsumed bytes begin with it.
func (c *Cursor) ShiftIfSeq(seq []byte) bool {
	end := c.pos + len(seq)
	if end > len(c.buf) || string(c.buf[c.pos:end]) != string(seq) {
		return false
	}
	c.pos = end
	return true
}

// Shift consumes n bytes. It panics if n is negative or exceeds Len.
func (c *Cursor) Shift(n int) {
	c.mustHave(n)
	c.pos += n
}

// CopyAndShift returns a copy of the next n bytes and consumes them.
// It panics if n is negative or exceeds Len.
func (c *Cursor) CopyAndShift(n int) []byte {
	c.mustHave(n)
	out := make([]byte, n)
	copy(out, c.buf[c.pos:c.pos+n])
	c.pos += n
	return out
}

// CopyWhileIn consumes the longest run of bytes in t and returns a copy.
func (c *Cursor) CopyWhileIn(t *lookup.Table) []byte {
	n := 0
	for c.pos+n < len(c.buf) && t[c.buf[c.pos+n]] {
		n++
	}
	return c.CopyAndShift(n)
}

// CopyWhileNotIn consumes the longest run of bytes not in t and returns a copy.
func (c *Cursor) CopyWhileNotIn(t *lookup.Table) []byte {
	n := 0
	for c.pos+n < len(c.buf) && !t[c.buf[c.pos+n]] {
		n++
	}
	return c.CopyAndShift(n)
}

// SkipWhileIn consumes the longest run of bytes in t without copying.
// It returns the last byte consumed, or false if the run was empty.
func (c *Cursor) SkipWhileIn(t *lookup.Table) (byte, bool) {
	var last byte
	start := c.pos
	for c.pos < len(c.buf) && t[c.buf[c.pos]] {
		last = c.buf[c.pos]
		c.pos++
	}
	return last, c.pos > start
}

// Peek returns the byte offset positions past the cursor without consuming.
func (c *Cursor) Peek(offset int) (byte, bool) {
	if offset < 0 || offset >= len(c.buf)-c.pos {
		return 0, false
	}
	return c.buf[c.pos+offset], true
}

func (c *Cursor) mustHave(n int) {
	if n < 0 || n > len(c.buf)-c.pos {
		panic(fmt.Sprintf("scan: shift by %d at offset %d with %d bytes remaining", n, c.pos, len(c.buf)-c.pos))
	}
}
