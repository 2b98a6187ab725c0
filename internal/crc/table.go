package crc

import "github.com/kezhuw/checksum/internal/errors"

// IEEE is the reversed form of the CRC-32 polynomial used by gzip, zip and png.
const IEEE = 0xedb88320

// Table is a 256-word table mapping a byte to its partial remainder.
type Table [256]uint32

// IEEETable is the table for IEEE. It is built once and must not be modified.
var IEEETable = MakeTable(IEEE)

// InitTable fills t with the reflected table for poly.
func InitTable(t *Table, poly uint32) error {
	if t == nil {
		return errors.ErrInvalidArgument
	}
	for i := range t {
		c := uint32(i)
		for j := 0; j < 8; j++ {
			if c&1 == 1 {
				c = (c >> 1) ^ poly
			} else {
				c >>= 1
			}
		}
		t[i] = c
	}
	return nil
}

// MakeTable returns a new table for poly.
func MakeTable(poly uint32) *Table {
	t := new(Table)
	InitTable(t, poly)
	return t
}

func fold(acc uint32, t *Table, b []byte) uint32 {
	for _, v := range b {
		acc = (acc >> 8) ^ t[byte(acc)^v]
	}
	return acc
}

// Update returns the result of adding the bytes in b to crc, which is a
// finalized checksum, e.g. an earlier return value of Update or Checksum.
func Update(crc uint32, t *Table, b []byte) uint32 {
	return ^fold(^crc, t, b)
}

// Checksum returns the IEEE CRC-32 checksum of b.
func Checksum(b []byte) uint32 {
	return Update(0, IEEETable, b)
}
