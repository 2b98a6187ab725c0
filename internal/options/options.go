package options

import (
	"fmt"
	"reflect"

	"github.com/kezhuw/checksum/internal/compress"
	"github.com/kezhuw/checksum/internal/logger"
	"github.com/kezhuw/checksum/internal/record"
)

const (
	DefaultBlockSize   = record.DefaultBlockSize
	DefaultChunkSize   = 64 * 1024
	DefaultCompression = compress.SnappyCompression
)

var defaults = map[string]int64{
	"BlockSize": DefaultBlockSize,
	"ChunkSize": DefaultChunkSize,
}

type Options struct {
	Compression compress.Type
	Logger      logger.Logger

	BlockSize int `default`
	ChunkSize int `default`

	ParanoidChecks bool `default`
}

// SetDefaults copies tagged fields from struct v, which may be a pointer,
// into opts. Non-positive integers are replaced by their defaults.
func (opts *Options) SetDefaults(v reflect.Value) error {
	v = reflect.Indirect(v)
	p := reflect.ValueOf(opts).Elem()
	t := p.Type()
	for i, n := 0, p.NumField(); i < n; i++ {
		ft := t.Field(i)
		if ft.Tag != "default" {
			continue
		}
		vv := v.FieldByName(ft.Name)
		switch {
		case vv.Kind() == reflect.Invalid:
			return fmt.Errorf("checksum: Options has no field named `%s` with type `%s`", ft.Name, ft.Type)
		case vv.Kind() != ft.Type.Kind():
			return fmt.Errorf("checksum: Options field `%s` has type `%s`, differs from internal type `%s`", ft.Name, vv.Kind(), ft.Type)
		}
		switch ft.Type.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			x := vv.Int()
			if x <= 0 {
				x = defaults[ft.Name]
			}
			p.Field(i).SetInt(x)
		default:
			p.Field(i).Set(vv)
		}
	}
	return nil
}
