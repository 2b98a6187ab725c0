// Package checksum computes reflected CRC-32 checksums, the variant used by
// gzip, zip and png, and seals byte streams into checksummed containers.
package checksum

import (
	"hash"
	"io"

	"github.com/kezhuw/checksum/internal/crc"
)

// IEEE is the reversed CRC-32 polynomial 0xedb88320.
const IEEE = crc.IEEE

// Size is the size of a CRC-32 checksum in bytes.
const Size = crc.Size

// Table maps each byte value to its precomputed partial remainder.
type Table = crc.Table

// Context computes a checksum incrementally. See crc.Context for the phase
// rules: Start resets, Update and End require a preceding Start.
type Context = crc.Context

// IEEETable is the shared, read-only table for IEEE.
var IEEETable = crc.IEEETable

// InitTable fills t for poly. It fails with ErrInvalidArgument if t is nil.
func InitTable(t *Table, poly uint32) error {
	return crc.InitTable(t, poly)
}

// MakeTable returns a table for poly.
func MakeTable(poly uint32) *Table {
	return crc.MakeTable(poly)
}

// NewContext returns a context using table t.
func NewContext(t *Table) *Context {
	return crc.NewContext(t)
}

// Checksum returns the IEEE CRC-32 of b.
func Checksum(b []byte) uint32 {
	return crc.Checksum(b)
}

// Update returns crc extended by b.
func Update(crc32 uint32, t *Table, b []byte) uint32 {
	return crc.Update(crc32, t, b)
}

// NewHash returns a hash.Hash32 using t, or IEEETable if t is nil.
func NewHash(t *Table) hash.Hash32 {
	return crc.NewHash(t)
}

// SumReader returns the IEEE CRC-32 of everything read from r and the number
// of bytes read.
func SumReader(r io.Reader) (uint32, int64, error) {
	c := crc.NewContext(crc.IEEETable)
	if err := c.Start(); err != nil {
		return 0, 0, err
	}
	n, err := c.ReadFrom(r)
	if err != nil {
		return 0, n, err
	}
	sum, err := c.End()
	return sum, n, err
}
