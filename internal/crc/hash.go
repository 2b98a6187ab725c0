package crc

import "hash"

// Size is the size of a CRC-32 checksum in bytes.
const Size = 4

type digest struct {
	crc uint32
	tab *Table
}

// NewHash creates a hash.Hash32 computing the CRC-32 checksum using t. A nil
// t selects IEEETable.
func NewHash(t *Table) hash.Hash32 {
	if t == nil {
		t = IEEETable
	}
	return &digest{tab: t}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = 0 }

func (d *digest) Write(p []byte) (n int, err error) {
	d.crc = Update(d.crc, d.tab, p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.crc }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
