// Package segment splits raw text into overlapping word windows for
// embedding and retrieval.
package segment

import (
	"errors"
	"strings"
)

const (
	// DefaultWindowSize is the number of words per window.
	DefaultWindowSize = 1000
	// DefaultOverlap is the number of words shared between adjacent windows.
	DefaultOverlap = 200
)

// ErrInvalidWindow is returned when the overlap is not smaller than the
// window size, which would make the stride non-positive.
var ErrInvalidWindow = errors.New("overlap must be smaller than window size")

// Windows splits text on whitespace and slides a window of size words with
// stride size-overlap. The tail window may hold fewer than size words and is
// still emitted. Whitespace-only or empty text yields zero windows.
func Windows(text string, size, overlap int) ([]string, error) {
	if size <= 0 || overlap < 0 || overlap >= size {
		return nil, ErrInvalidWindow
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	stride := size - overlap
	var out []string
	for i := 0; i < len(words); i += stride {
		end := i + size
		if end > len(words) {
			end = len(words)
		}
		out = append(out, strings.Join(words[i:end], " "))
		if end == len(words) {
			break
		}
	}
	return out, nil
}
