package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArgument        = errors.New("checksum: invalid argument")
	ErrMismatchChecksum       = errors.New("checksum: corrupt record: mismatch checksum")
	ErrIncompleteRecord       = errors.New("checksum: incomplete record")
	ErrUnsupportedCompression = errors.New("checksum: unsupported compression")
)

type CorruptionError struct {
	Err      error
	Offset   int64
	Category string
	Name     string
}

func (e *CorruptionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("checksum: corrupt %s at %d: %s", e.Category, e.Offset, e.Err)
	}
	return fmt.Sprintf("checksum: corrupt %s in %s at %d: %s", e.Category, e.Name, e.Offset, e.Err)
}

func NewCorruption(name string, category string, offset int64, err string) error {
	return &CorruptionError{Err: errors.New(err), Offset: offset, Category: category, Name: name}
}

func IsCorrupt(err error) bool {
	switch err {
	case nil:
		return false
	case ErrMismatchChecksum, ErrIncompleteRecord:
		return true
	}
	if _, ok := err.(*CorruptionError); ok {
		return true
	}
	return strings.HasPrefix(err.Error(), "checksum: corrupt ")
}
