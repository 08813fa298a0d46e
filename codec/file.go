package codec

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrUnknownFormat is returned for file names whose codec or compression is not recognized.
var ErrUnknownFormat = errors.New("unknown format")

// Decode reads all of r, decompresses it and decodes it into v.
func Decode(r io.Reader, c Codec, comp Compression, v any) error {
	rc, err := NewReader(r, comp)
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("read %s stream: %w", comp, err)
	}

	if err := c.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", c.Name(), err)
	}
	return nil
}

// Encode encodes v, compresses it and writes it to w.
func Encode(w io.Writer, c Codec, comp Compression, v any) error {
	data, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.Name(), err)
	}

	wc, err := NewWriter(w, comp)
	if err != nil {
		return err
	}
	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return fmt.Errorf("write %s stream: %w", comp, err)
	}
	return wc.Close()
}

// ReadFile decodes the file at path into v using the codec and compression
// implied by its name.
func ReadFile(path string, v any) error {
	c, comp, err := ForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Decode(f, c, comp, v)
}

// WriteFile encodes v into the file at path using the codec and compression
// implied by its name. The file is created or truncated.
func WriteFile(path string, v any) (err error) {
	c, comp, err := ForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, c, comp, v)
}
