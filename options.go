package checksum

import (
	"fmt"
	"reflect"

	"github.com/kezhuw/checksum/internal/compress"
	"github.com/kezhuw/checksum/internal/logger"
	"github.com/kezhuw/checksum/internal/options"
)

// CompressionType defines compression methods to compress a sealed block.
type CompressionType int

const (
	DefaultCompression CompressionType = iota // Points to SnappyCompression
	NoCompression
	SnappyCompression
)

// ParseCompression converts "none" or "snappy" to a CompressionType.
func ParseCompression(name string) (CompressionType, error) {
	typ, err := compress.Parse(name)
	if err != nil {
		return DefaultCompression, err
	}
	if typ == compress.NoCompression {
		return NoCompression, nil
	}
	return SnappyCompression, nil
}

// Options contains options controlling Seal and Unseal.
type Options struct {
	// Compression type used to compress sealed blocks. Blocks which do not
	// compress well are stored raw.
	//
	// The default value points to SnappyCompression.
	Compression CompressionType

	// BlockSize specifys the size in bytes of a record block in sealed output.
	// Seal and Unseal must agree on it.
	//
	// The default value is 32KiB.
	BlockSize int

	// ChunkSize specifys the number of input bytes sealed into one block.
	//
	// The default value is 64KiB.
	ChunkSize int

	// ParanoidChecks makes Unseal verify block checksums in addition to record
	// checksums.
	//
	// The default value is false.
	ParanoidChecks bool

	// Logger specifys a place that progress information is written to.
	//
	// The default value is DiscardLogger.
	Logger Logger
}

func (opts *Options) getLogger() logger.Logger {
	if opts == nil || opts.Logger == nil {
		return logger.Discard
	}
	return opts.Logger
}

func (opts *Options) getCompression() (compress.Type, error) {
	if opts == nil {
		return options.DefaultCompression, nil
	}
	switch opts.Compression {
	case DefaultCompression:
		return options.DefaultCompression, nil
	case NoCompression:
		return compress.NoCompression, nil
	case SnappyCompression:
		return compress.SnappyCompression, nil
	}
	return 0, fmt.Errorf("checksum: unknown compression type %d", opts.Compression)
}

func convertOptions(opts *Options) (*options.Options, error) {
	var iopts options.Options
	if opts == nil {
		opts = &Options{}
	}
	if err := iopts.SetDefaults(reflect.ValueOf(opts)); err != nil {
		return nil, err
	}
	compression, err := opts.getCompression()
	if err != nil {
		return nil, err
	}
	iopts.Compression = compression
	iopts.Logger = opts.getLogger()
	return &iopts, nil
}
