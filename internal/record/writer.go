package record

import (
	"encoding/binary"
	"io"

	"github.com/kezhuw/checksum/internal/crc"
)

// Writer frames records into blocks of a fixed size.
type Writer struct {
	w           io.Writer
	err         error
	offset      int64
	blockBuffer []byte
	blockOffset int
	blockSize   int
}

// NewWriter creates a writer appending to w, which is positioned at offset
// in a stream written with the same blockSize. A non-positive blockSize
// selects DefaultBlockSize.
func NewWriter(w io.Writer, blockSize int, offset int64) *Writer {
	blockSize = normalizeBlockSize(blockSize)
	blockOffset := int(offset % int64(blockSize))
	return &Writer{
		w:           w,
		offset:      offset,
		blockBuffer: make([]byte, blockSize),
		blockOffset: blockOffset,
		blockSize:   blockSize,
	}
}

func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) Offset() int64 {
	return w.offset
}

func fragmentType(begin, end bool) int {
	switch {
	case begin && end:
		return fullType
	case begin:
		return firstType
	case end:
		return lastType
	default:
		return middleType
	}
}

// Write creates an record, and appends it to underlying io.Writer. An empty
// b is written as an empty full record.
func (w *Writer) Write(b []byte) error {
	if w.err != nil {
		return w.err
	}
	begin, end := true, false
	blockOffset, blockSize := w.blockOffset, w.blockSize
	for !end {
		leftover := blockSize - blockOffset
		if leftover < headerSize {
			if leftover != 0 {
				copy(w.blockBuffer[blockOffset:], trailer[:leftover])
			}
			n, err := w.w.Write(w.blockBuffer[w.blockOffset:blockSize])
			w.offset += int64(n)
			if err != nil {
				w.err = err
				return err
			}
			w.blockOffset = 0
			blockOffset = 0
			leftover = blockSize
		}
		length := leftover - headerSize
		if l := len(b); l <= length {
			end = true
			length = l
		}
		typ := fragmentType(begin, end)
		sum := crc.Extend(typeChecksums[typ], b[:length]).Value()
		head := w.blockBuffer[blockOffset : blockOffset+headerSize]
		binary.LittleEndian.PutUint32(head[:4], sum)
		binary.LittleEndian.PutUint16(head[4:6], uint16(length))
		head[6] = byte(typ)
		blockOffset += headerSize
		copy(w.blockBuffer[blockOffset:], b[:length])
		blockOffset += length
		begin = false
		b = b[length:]
	}
	n, err := w.w.Write(w.blockBuffer[w.blockOffset:blockOffset])
	w.offset += int64(n)
	if err != nil {
		w.err = err
		return err
	}
	w.blockOffset = blockOffset
	return nil
}
