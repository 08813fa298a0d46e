// Package codec centralizes encoding of graph fixtures.
//
// A fixture's codec and compression are picked from its file name, so
// "graph.yaml", "graph.json.zst" and "graph.yml.lz4" all load through ReadFile.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "yaml":
		return YAML{}, true
	default:
		return nil, false
	}
}

// ForPath returns the codec and compression implied by the file name.
// The compression suffix, if any, is stripped before the codec extension is
// looked at. JSON files use Default.
func ForPath(path string) (Codec, Compression, error) {
	name := strings.ToLower(filepath.Base(path))

	comp := CompressionNone
	switch ext := filepath.Ext(name); ext {
	case ".zst", ".zstd":
		comp = CompressionZSTD
		name = strings.TrimSuffix(name, ext)
	case ".lz4":
		comp = CompressionLZ4
		name = strings.TrimSuffix(name, ext)
	}

	switch filepath.Ext(name) {
	case ".json":
		return Default, comp, nil
	case ".yaml", ".yml":
		return YAML{}, comp, nil
	default:
		return nil, comp, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
