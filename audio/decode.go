// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// maxEmptyReads bounds how many (0, nil) reads ReadAll tolerates in a row.
const maxEmptyReads = 100

// DecodeBytes decodes data with the decoder registered for format. When no
// decoder has that name, or the named one rejects the data, the remaining
// decoders are tried in registration order and the first that accepts the
// data wins.
func (r *Registry) DecodeBytes(data []byte, format string) (Source, error) {
	var errs []error

	named, skip, ok := r.lookup(format)
	if ok {
		src, err := named.Decode(bytes.NewReader(data))
		if err == nil {
			return src, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", normalizeFormat(format), err))
	}

	for i, d := range r.Decoders() {
		if i == skip {
			continue
		}
		src, err := d.Decode(bytes.NewReader(data))
		if err == nil {
			return src, nil
		}
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil, fmt.Errorf("%w: %q: %w", ErrUnsupportedFormat, format, errors.Join(errs...))
}

// ReadAll drains src and returns every sample it produced. bufSize is the
// read size in samples; zero or less uses src.BufSize(). It must be a
// multiple of the channel count so reads never split a frame.
//
// The source is not closed.
func ReadAll(src Source, bufSize int) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	if bufSize <= 0 {
		bufSize = 4096
	}
	if ch := src.Channels(); ch > 0 && bufSize%ch != 0 {
		return nil, ErrInvalidDstSize
	}

	out := make([]float32, 0, bufSize)
	buf := make([]float32, bufSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
			empty = 0
		} else if err == nil {
			empty++
			if empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return out, nil
}
