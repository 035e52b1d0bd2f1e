package tabio

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

// utf8BOM is the byte order mark spreadsheet tools on Windows prepend to
// UTF-8 exports. encoding/csv would otherwise fold it into the first cell.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Sanitize wraps a reader so that delimited parsing sees clean UTF-8: a
// leading BOM is dropped and invalid bytes are replaced with '?'.
func Sanitize(r io.Reader) io.Reader {
	return newSanitizingReader(skipBOM(r))
}

// skipBOM returns a reader positioned past a leading UTF-8 BOM, if any.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(utf8BOM))
	if err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br
}

// sanitizingReader replaces invalid UTF-8 bytes with '?' as data streams
// through. A multi-byte sequence cut off by a read boundary is held back
// until the next read so it is not mangled.
type sanitizingReader struct {
	reader  io.Reader
	pending []byte
}

func newSanitizingReader(r io.Reader) *sanitizingReader {
	return &sanitizingReader{reader: r, pending: make([]byte, 0, utf8.UTFMax)}
}

func (s *sanitizingReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	offset := copy(p, s.pending)
	s.pending = s.pending[:0]

	n, err := s.reader.Read(p[offset:])
	n += offset
	if n == 0 {
		return 0, err
	}
	if allASCII(p[:n]) {
		// fast path: most delimited data is plain ASCII
		return n, err
	}
	return s.sanitize(p[:n], err == io.EOF), err
}

// sanitize rewrites data in place and returns the number of bytes to hand
// out. Replacement uses '?' rather than U+FFFD so the output never grows
// past the caller's buffer.
func (s *sanitizingReader) sanitize(data []byte, atEOF bool) int {
	write := 0
	for read := 0; read < len(data); {
		r, size := utf8.DecodeRune(data[read:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(data[read:]) {
				// possibly a sequence split across reads; hold it back
				s.pending = append(s.pending, data[read:]...)
				return write
			}
			data[write] = '?'
			write++
			read++
			continue
		}
		copy(data[write:], data[read:read+size])
		write += size
		read += size
	}
	return write
}

func allASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}
