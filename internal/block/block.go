// Package block encodes a payload with a compression type byte and a masked
// CRC-32 trailer.
package block

import (
	"encoding/binary"

	"github.com/kezhuw/checksum/internal/compress"
	"github.com/kezhuw/checksum/internal/crc"
	"github.com/kezhuw/checksum/internal/errors"
)

// TrailerSize is the number of bytes following a block payload.
const TrailerSize = 1 + crc.Size

// Encode appends the encoded form of raw to dst. Compressed output is kept
// only if it saves at least 1/8 of raw.
func Encode(dst, raw []byte, typ compress.Type) ([]byte, error) {
	payload := raw
	if typ != compress.NoCompression {
		compressed, err := compress.Encode(typ, nil, raw)
		if err != nil {
			return dst, err
		}
		if len(compressed) < len(raw)-len(raw)/8 {
			payload = compressed
		} else {
			typ = compress.NoCompression
		}
	}
	start := len(dst)
	dst = append(dst, payload...)
	dst = append(dst, byte(typ))
	var trailer [crc.Size]byte
	binary.LittleEndian.PutUint32(trailer[:], crc.New(dst[start:]).Value())
	return append(dst, trailer[:]...), nil
}

// Decode returns the raw payload of an encoded block. The returned slice may
// alias buf.
func Decode(buf []byte, verifyChecksums bool) ([]byte, error) {
	n := len(buf)
	if n < TrailerSize {
		return nil, errors.NewCorruption("", "block", 0, "block too short")
	}
	if verifyChecksums {
		actualChecksum := crc.New(buf[:n-crc.Size]).Value()
		expectedChecksum := binary.LittleEndian.Uint32(buf[n-crc.Size:])
		if actualChecksum != expectedChecksum {
			return nil, errors.NewCorruption("", "block", 0, "checksum mismatch")
		}
	}
	payload := buf[: n-TrailerSize : n-TrailerSize]
	return compress.Decode(compress.Type(buf[n-TrailerSize]), nil, payload)
}
