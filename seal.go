package checksum

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/kezhuw/checksum/internal/block"
	"github.com/kezhuw/checksum/internal/crc"
	"github.com/kezhuw/checksum/internal/errors"
	"github.com/kezhuw/checksum/internal/record"
)

// A sealed stream is a sequence of records: the magic, one block record per
// input chunk, and a trailer holding the input length and its CRC-32.
var sealMagic = []byte("crc32seal\x01")

const (
	blockTag   = 'B'
	trailerTag = 'T'

	trailerSize = 1 + 8 + crc.Size
)

// Seal reads r until io.EOF and writes it to w as a sealed stream. It returns
// the number of bytes read from r.
func Seal(w io.Writer, r io.Reader, opts *Options) (int64, error) {
	if w == nil || r == nil {
		return 0, ErrInvalidArgument
	}
	o, err := convertOptions(opts)
	if err != nil {
		return 0, err
	}
	rw := record.NewWriter(w, o.BlockSize, 0)
	if err := rw.Write(sealMagic); err != nil {
		return 0, err
	}

	c := crc.NewContext(crc.IEEETable)
	if err := c.Start(); err != nil {
		return 0, err
	}
	var n int64
	var blocks int
	var buf []byte
	chunk := make([]byte, o.ChunkSize)
	for {
		m, rerr := io.ReadFull(r, chunk)
		if m > 0 {
			if err := c.Update(chunk[:m]); err != nil {
				return n, err
			}
			buf, err = block.Encode(append(buf[:0], blockTag), chunk[:m], o.Compression)
			if err != nil {
				return n, err
			}
			if err := rw.Write(buf); err != nil {
				return n, err
			}
			n += int64(m)
			blocks++
		}
		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			break
		}
		if rerr != nil {
			return n, rerr
		}
	}
	sum, err := c.End()
	if err != nil {
		return n, err
	}

	var trailer [trailerSize]byte
	trailer[0] = trailerTag
	binary.LittleEndian.PutUint64(trailer[1:9], uint64(n))
	binary.LittleEndian.PutUint32(trailer[9:], sum)
	if err := rw.Write(trailer[:]); err != nil {
		return n, err
	}
	o.Logger.Debugf("sealed %d bytes in %d blocks, %d bytes written, crc32 %08x", n, blocks, rw.Offset(), sum)
	return n, nil
}

// Unseal verifies the sealed stream read from r and writes its content to w.
// It returns the number of bytes written. Content is written as it is
// verified, so w may have received data when a corruption error is returned.
func Unseal(w io.Writer, r io.Reader, opts *Options) (int64, error) {
	if w == nil || r == nil {
		return 0, ErrInvalidArgument
	}
	o, err := convertOptions(opts)
	if err != nil {
		return 0, err
	}
	rr := record.NewReader(r, o.BlockSize)
	rec, err := rr.AppendRecord(nil)
	switch {
	case err == io.EOF:
		return 0, errors.NewCorruption("", "sealed stream", 0, "missing header")
	case err != nil:
		return 0, err
	case !bytes.Equal(rec, sealMagic):
		return 0, errors.NewCorruption("", "sealed stream", 0, "bad magic")
	}

	c := crc.NewContext(crc.IEEETable)
	if err := c.Start(); err != nil {
		return 0, err
	}
	var n int64
	for {
		offset := rr.Offset()
		rec, err = rr.AppendRecord(rec[:0])
		switch {
		case err == io.EOF:
			return n, errors.NewCorruption("", "sealed stream", offset, "missing trailer")
		case err != nil:
			return n, err
		case len(rec) == 0:
			return n, errors.NewCorruption("", "sealed stream", offset, "empty record")
		}
		switch rec[0] {
		case blockTag:
			raw, err := block.Decode(rec[1:], o.ParanoidChecks)
			if err != nil {
				if e, ok := err.(*errors.CorruptionError); ok {
					e.Offset = offset
				}
				return n, err
			}
			if err := c.Update(raw); err != nil {
				return n, err
			}
			m, err := w.Write(raw)
			n += int64(m)
			if err != nil {
				return n, err
			}
		case trailerTag:
			if len(rec) != trailerSize {
				return n, errors.NewCorruption("", "sealed stream", offset, "bad trailer")
			}
			sum, err := c.End()
			if err != nil {
				return n, err
			}
			length := binary.LittleEndian.Uint64(rec[1:9])
			expected := binary.LittleEndian.Uint32(rec[9:])
			switch {
			case length != uint64(n):
				return n, errors.NewCorruption("", "sealed stream", offset, "length mismatch")
			case sum != expected:
				return n, errors.NewCorruption("", "sealed stream", offset, "checksum mismatch")
			}
			if _, err := rr.AppendRecord(rec[:0]); err != io.EOF {
				if err == nil {
					return n, errors.NewCorruption("", "sealed stream", rr.Offset(), "data after trailer")
				}
				return n, err
			}
			o.Logger.Debugf("unsealed %d bytes, crc32 %08x", n, sum)
			return n, nil
		default:
			return n, errors.NewCorruption("", "sealed stream", offset, "unknown record tag")
		}
	}
}
