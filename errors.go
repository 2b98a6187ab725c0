package checksum

import "github.com/kezhuw/checksum/internal/errors"

var (
	ErrInvalidArgument        = errors.ErrInvalidArgument // nil table, context, reader, or out-of-phase call
	ErrMismatchChecksum       = errors.ErrMismatchChecksum
	ErrIncompleteRecord       = errors.ErrIncompleteRecord
	ErrUnsupportedCompression = errors.ErrUnsupportedCompression
)

// CorruptionError describes where corrupted data was found.
type CorruptionError = errors.CorruptionError

// IsCorrupt returns a boolean indicating whether the error is a corruption error.
func IsCorrupt(err error) bool {
	return errors.IsCorrupt(err)
}
