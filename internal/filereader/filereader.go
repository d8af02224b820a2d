// Package filereader reads whole files into byte slices, decoded text or
// lines, and writes them back.
//
// Each read comes in two flavours. Bytes, Text and Lines return the
// underlying error. ReadBytes, ReadText and ReadLines never fail: an
// unreadable file degrades to nil bytes, an empty string or an empty line
// list. ReadBytes distinguishes the two cases that matter to callers: nil
// means the read failed, a non-nil empty slice means the file is empty.
package filereader

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"math"

	"github.com/pkg/errors"
	"github.com/ptribble/jumble/internal/filesystem"
	"github.com/ptribble/jumble/internal/settings"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrIsDirectory is returned when the path names a directory.
	ErrIsDirectory = errors.New("is a directory")
	// ErrTooLarge is returned when a file's size does not fit in memory.
	ErrTooLarge = errors.New("file too large")
)

// Reader reads files through a filesystem using a fixed text encoding.
// A Reader is immutable and safe for concurrent use.
type Reader struct {
	fs        filesystem.Filesystem
	enc       encoding.Encoding
	detectBOM bool
	logger    *slog.Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithFilesystem reads through fsys instead of the host filesystem.
func WithFilesystem(fsys filesystem.Filesystem) Option {
	return func(r *Reader) { r.fs = fsys }
}

// WithEncoding decodes text with enc instead of UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(r *Reader) { r.enc = enc }
}

// WithBOMDetection lets a leading UTF-8 or UTF-16 byte-order mark override
// the configured encoding. The mark is stripped from the decoded text.
func WithBOMDetection(on bool) Option {
	return func(r *Reader) { r.detectBOM = on }
}

// WithLogger sets the logger that receives swallowed read errors.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) { r.logger = logger }
}

// New creates a Reader. Without options it reads the host filesystem as UTF-8.
func New(opts ...Option) *Reader {
	r := &Reader{
		fs:  filesystem.DefaultFS{},
		enc: unicode.UTF8,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromSettings creates a Reader using the encoding and BOM policy in s.
// Extra options are applied afterwards.
func NewFromSettings(s *settings.Settings, opts ...Option) (*Reader, error) {
	enc, err := s.TextEncoding()
	if err != nil {
		return nil, err
	}
	base := []Option{WithEncoding(enc), WithBOMDetection(s.DetectBOM)}
	return New(append(base, opts...)...), nil
}

func (r *Reader) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

// Bytes reads the whole file. The buffer is sized from the file's length
// when it is opened; if the file shrinks before the read completes, the
// result holds only the bytes actually read.
func (r *Reader) Bytes(path string) ([]byte, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", path)
	}
	if info.IsDir() {
		return nil, errors.Wrapf(ErrIsDirectory, "failed to read %s", path)
	}
	size := info.Size()
	if size < 0 || size > math.MaxInt {
		return nil, errors.Wrapf(ErrTooLarge, "failed to read %s (%d bytes)", path, size)
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(f, buf)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		buf = buf[:n]
	default:
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return buf, nil
}

// Text reads the whole file and decodes it.
func (r *Reader) Text(path string) (string, error) {
	b, err := r.Bytes(path)
	if err != nil {
		return "", err
	}
	out, _, err := transform.Bytes(r.decoder(), b)
	if err != nil {
		return "", errors.Wrapf(err, "failed to decode %s", path)
	}
	return string(out), nil
}

// Lines reads the file as decoded text lines. CR, LF and CRLF all end a
// line; a terminator at the very end does not produce a trailing empty line.
func (r *Reader) Lines(path string) ([]string, error) {
	lines := []string{}
	err := r.scan(path, func(line string) {
		lines = append(lines, line)
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// CountLines counts the lines Lines would return.
func (r *Reader) CountLines(path string) (int, error) {
	lineCount := 0
	err := r.scan(path, func(string) {
		lineCount++
	})
	if err != nil {
		return 0, err
	}
	return lineCount, nil
}

func (r *Reader) scan(path string, fn func(line string)) error {
	f, err := r.fs.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", path)
	}
	if info.IsDir() {
		return errors.Wrapf(ErrIsDirectory, "failed to read %s", path)
	}

	scanner := bufio.NewScanner(transform.NewReader(f, r.decoder()))
	// Lines may be as long as the file; only memory bounds them, as in Text.
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	scanner.Split(scanLines)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "failed to read lines from %s", path)
	}
	return nil
}

// ReadBytes is Bytes with failures collapsed to nil.
func (r *Reader) ReadBytes(path string) []byte {
	b, err := r.Bytes(path)
	if err != nil {
		r.log().Debug("Could not read file, returning no data.", "file", path, "error", err)
		return nil
	}
	return b
}

// ReadText is Text with failures collapsed to "".
func (r *Reader) ReadText(path string) string {
	s, err := r.Text(path)
	if err != nil {
		r.log().Debug("Could not read file, returning empty text.", "file", path, "error", err)
		return ""
	}
	return s
}

// ReadLines is Lines with failures collapsed to an empty slice.
func (r *Reader) ReadLines(path string) []string {
	lines, err := r.Lines(path)
	if err != nil {
		r.log().Debug("Could not read file, returning no lines.", "file", path, "error", err)
		return []string{}
	}
	return lines
}

func (r *Reader) decoder() transform.Transformer {
	d := r.enc.NewDecoder()
	if r.detectBOM {
		return unicode.BOMOverride(d)
	}
	return d
}

// scanLines is a bufio.SplitFunc that ends lines at LF, CR or CRLF.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		// A trailing CR may be the first half of CRLF.
		if !atEOF {
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	// Request more data.
	return 0, nil, nil
}
