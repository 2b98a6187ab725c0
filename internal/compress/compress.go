package compress

import (
	"fmt"
	"strings"

	"github.com/golang/snappy"
	"github.com/kezhuw/checksum/internal/errors"
)

// Type is stored as the byte preceding a block checksum.
type Type byte

const (
	NoCompression     Type = 0
	SnappyCompression Type = 1
)

func (t Type) String() string {
	switch t {
	case NoCompression:
		return "none"
	case SnappyCompression:
		return "snappy"
	default:
		return fmt.Sprintf("compression(%d)", byte(t))
	}
}

// Parse converts name, as returned by Type.String, back to a Type.
func Parse(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "none", "no":
		return NoCompression, nil
	case "snappy":
		return SnappyCompression, nil
	default:
		return NoCompression, errors.ErrUnsupportedCompression
	}
}

// Decode decompresses src. NoCompression returns src itself.
func Decode(typ Type, dst, src []byte) ([]byte, error) {
	switch typ {
	case NoCompression:
		return src, nil
	case SnappyCompression:
		return snappy.Decode(dst, src)
	default:
		return nil, errors.ErrUnsupportedCompression
	}
}

// Encode compresses src. NoCompression returns src itself.
func Encode(typ Type, dst, src []byte) ([]byte, error) {
	switch typ {
	case NoCompression:
		return src, nil
	case SnappyCompression:
		return snappy.Encode(dst, src), nil
	default:
		return nil, errors.ErrUnsupportedCompression
	}
}
