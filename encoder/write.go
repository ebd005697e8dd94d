// SPDX-License-Identifier: EPL-2.0

package encoder

import (
	"bufio"
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// Resolve picks the encoder for format, or for the extension of path when
// format is empty.
func (r *Registry) Resolve(path, format string) (Encoder, string, error) {
	if format == "" {
		format = FormatFromPath(path)
	}
	if format == "" {
		return nil, "", fmt.Errorf("%w: %s has no extension", ErrNoFormat, path)
	}

	e, ok := r.Get(format)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return e, normalizeFormat(format), nil
}

// WriteFile encodes img into path. The image is written to a temporary file
// in the same directory and renamed over path once complete, so a failure
// never leaves a partial file at path.
func (r *Registry) WriteFile(path, format string, img image.Image) (err error) {
	enc, format, err := r.Resolve(path, format)
	if err != nil {
		return err
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = enc.Encode(w, img); err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", tmp.Name(), err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("setting mode of %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming into %s: %w", path, err)
	}

	return nil
}
