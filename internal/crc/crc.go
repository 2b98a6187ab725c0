// Package crc computes reflected CRC-32 checksums using a byte-wise lookup
// table.
package crc

import "strconv"

// CRC is an IEEE CRC-32 checksum that may be extended and masked for storage.
type CRC struct {
	// Saved as a field to avoid accidentally cast.
	checksum uint32
}

// New computes checksum using given bytes.
func New(b []byte) CRC {
	return CRC{Checksum(b)}
}

// Extend returns c extended by given bytes.
func Extend(c CRC, b []byte) CRC {
	return CRC{Update(c.checksum, IEEETable, b)}
}

// Sum32 returns the unmasked checksum.
func (c CRC) Sum32() uint32 {
	return c.checksum
}

// Value returns a masked checksum value. Computing the checksum of a string
// which contains embedded checksums is problematic, so stored checksums are
// always masked.
func (c CRC) Value() uint32 {
	return (c.checksum>>15 | c.checksum<<17) + 0xa282ead8
}

// Unmask recovers the checksum from a value returned by CRC.Value.
func Unmask(masked uint32) uint32 {
	rot := masked - 0xa282ead8
	return rot>>17 | rot<<15
}

// String implements fmt.Stringer.
func (c CRC) String() string {
	return strconv.FormatUint(uint64(c.Value()), 10)
}
