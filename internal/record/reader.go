package record

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/kezhuw/checksum/internal/crc"
	"github.com/kezhuw/checksum/internal/errors"
)

// Reader reads records written by Writer.
type Reader struct {
	r      io.Reader
	err    error
	buf    []byte // len(buf) equals to block size
	block  []byte
	offset int64 // Points after last record read.
}

// NewReader creates a reader to read records from r. r must be in start of a
// block, and blockSize must match the one used to write.
func NewReader(r io.Reader, blockSize int) *Reader {
	return &Reader{r: r, buf: make([]byte, normalizeBlockSize(blockSize))}
}

// Offset returns an offset points after last successfully read record.
func (r *Reader) Offset() int64 {
	return r.offset
}

func (r *Reader) corrupt(offset int64, reason string) error {
	return errors.NewCorruption("", "record", offset, reason)
}

// AppendRecord reads a new record from underlying reader, and append it to b.
// It returns a byte slice with new record appended and a potential error.
// io.EOF is returned only at a clean record boundary.
func (r *Reader) AppendRecord(b []byte) ([]byte, error) {
	start := len(b)
	block := r.block
	middle := false
	offset := r.offset
	for {
		if len(block) < headerSize {
			if r.err != nil {
				if middle && r.err == io.EOF {
					return b[:start], errors.ErrIncompleteRecord
				}
				return b[:start], r.err
			}
			offset += int64(len(block))
			if !middle {
				r.offset = offset
			}
			block = r.readBlock()
			if len(block) < headerSize {
				if r.err == io.EOF && (len(block) != 0 || middle) {
					return b[:start], errors.ErrIncompleteRecord
				}
				return b[:start], r.err
			}
		}

		head := block[:headerSize]
		length := int(binary.LittleEndian.Uint16(head[4:6]))
		span := length + headerSize
		if span > len(block) {
			b = b[:start]
			switch err := r.err; err {
			case nil:
				return b, r.corrupt(offset, "record beyond block boundary")
			case io.EOF:
				return b, errors.ErrIncompleteRecord
			default:
				return b, err
			}
		}

		actualChecksum := crc.New(block[6:span]).Value()
		expectedChecksum := binary.LittleEndian.Uint32(head[:4])
		if actualChecksum != expectedChecksum {
			return b[:start], errors.ErrMismatchChecksum
		}

		// Corruption is relatively rare, so we append record here to simplify code
		// in switch statement below.
		b = append(b, block[headerSize:span]...)
		block = block[span:]
		offset += int64(span)
		switch typ := head[6]; typ {
		case fullType:
			if middle {
				return b[:start], r.corrupt(offset, "full record in middle")
			}
			r.block = block
			r.offset = offset
			return b, nil
		case firstType:
			if middle {
				return b[:start], r.corrupt(offset, "first record in middle")
			}
			middle = true
		case middleType:
			if !middle {
				return b[:start], r.corrupt(offset, "middle record at first")
			}
		case lastType:
			if !middle {
				return b[:start], r.corrupt(offset, "last record at first")
			}
			r.block = block
			r.offset = offset
			return b, nil
		default:
			return b[:start], r.corrupt(offset, fmt.Sprintf("unknown record type: %d", typ))
		}
	}
}

func (r *Reader) readBlock() []byte {
	n, err := io.ReadFull(r.r, r.buf)
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		r.err = err
	}
	r.block = r.buf[:n]
	return r.block
}
