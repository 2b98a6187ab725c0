// Package record frames variable-length records into fixed-size blocks, each
// fragment guarded by a masked CRC-32 over its type and payload.
package record

import "github.com/kezhuw/checksum/internal/crc"

// Fragment types.
const (
	zeroType   = 0
	fullType   = 1
	firstType  = 2
	middleType = 3
	lastType   = 4

	numTypes = 5
)

const (
	DefaultBlockSize = 32 * 1024 // 32KiB
	headerSize       = 7         // checksum(4) + length(2) + type(1)
	maxBlockSize     = headerSize + 0xffff
)

type header [headerSize]byte

var trailer header

var typeChecksums [numTypes]crc.CRC

func init() {
	var buf [1]byte
	for i := 0; i < len(typeChecksums); i++ {
		buf[0] = byte(i)
		typeChecksums[i] = crc.New(buf[:])
	}
}

func normalizeBlockSize(blockSize int) int {
	switch {
	case blockSize <= headerSize:
		return DefaultBlockSize
	case blockSize > maxBlockSize:
		return maxBlockSize
	}
	return blockSize
}
