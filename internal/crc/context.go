package crc

import (
	"io"

	"github.com/kezhuw/checksum/internal/errors"
)

type phase int

const (
	tableReady phase = iota
	accumulating
	finalized
)

const readBufferSize = 32 * 1024

// Context computes a checksum incrementally through Start, Update and End.
//
// Start may be called in any phase and discards prior state. Update, ReadFrom
// and End fail with ErrInvalidArgument unless preceded by Start, and End
// leaves the context finalized until the next Start.
//
// A Context is not safe for concurrent use.
type Context struct {
	table *Table
	acc   uint32
	phase phase
}

// NewContext creates a context using table t. A nil t yields a context whose
// operations all fail.
func NewContext(t *Table) *Context {
	return &Context{table: t}
}

func (c *Context) usable() bool {
	return c != nil && c.table != nil
}

// Start preloads the accumulator with all ones.
func (c *Context) Start() error {
	if !c.usable() {
		return errors.ErrInvalidArgument
	}
	c.acc = 0xffffffff
	c.phase = accumulating
	return nil
}

// Update folds b into the accumulator. An empty b is a no-op.
func (c *Context) Update(b []byte) error {
	if !c.usable() || c.phase != accumulating {
		return errors.ErrInvalidArgument
	}
	c.acc = fold(c.acc, c.table, b)
	return nil
}

// ReadFrom folds everything read from r until io.EOF. It implements
// io.ReaderFrom.
func (c *Context) ReadFrom(r io.Reader) (int64, error) {
	if r == nil || !c.usable() || c.phase != accumulating {
		return 0, errors.ErrInvalidArgument
	}
	var n int64
	buf := make([]byte, readBufferSize)
	for {
		m, err := r.Read(buf)
		if m > 0 {
			c.acc = fold(c.acc, c.table, buf[:m])
			n += int64(m)
		}
		switch err {
		case nil:
		case io.EOF:
			return n, nil
		default:
			return n, err
		}
	}
}

// End finalizes the accumulator and returns the checksum. It returns zero
// on failure.
func (c *Context) End() (uint32, error) {
	if !c.usable() || c.phase != accumulating {
		return 0, errors.ErrInvalidArgument
	}
	c.phase = finalized
	return ^c.acc, nil
}

// Calculate computes the checksum of b in one call.
func (c *Context) Calculate(b []byte) (uint32, error) {
	if err := c.Start(); err != nil {
		return 0, err
	}
	if err := c.Update(b); err != nil {
		return 0, err
	}
	return c.End()
}

// Release validates c. Contexts own no resources beyond themselves.
func (c *Context) Release() error {
	if !c.usable() {
		return errors.ErrInvalidArgument
	}
	return nil
}
