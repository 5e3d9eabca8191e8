package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rpggio/artvault/internal/domain/art"
)

// ErrUnknownFormat is returned when no codec handles a format or extension.
var ErrUnknownFormat = errors.New("unknown catalog format")

// Codec translates an ordered record set to and from a serialized form.
type Codec interface {
	Format() string
	Encode(w io.Writer, records []*art.Record) error
	Decode(r io.Reader) ([]*art.Record, error)
}

// ByFormat returns the codec registered under name.
func ByFormat(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "csv":
		return NewCSVCodec(), nil
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// ForPath picks a codec from the file extension of path.
func ForPath(path string) (Codec, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ByFormat(ext)
}
