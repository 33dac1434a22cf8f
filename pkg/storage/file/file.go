// Package file implements storage.LineSource and storage.RowSink on top of
// the local filesystem.
package file

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"reserved/pkg/serrors"
	"reserved/pkg/storage"
)

// maxLineSize bounds a single input line; domain list rows are far shorter.
const maxLineSize = 1 << 20

// Source reads lines from an io.ReadCloser.
type Source struct {
	rc      io.ReadCloser
	scanner *bufio.Scanner
}

var _ storage.LineSource = (*Source)(nil)

// Open opens the file at path for line-by-line reading.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrIO, err, "could not open input")
	}

	return NewSource(f), nil
}

// NewSource wraps rc into a Source.
func NewSource(rc io.ReadCloser) *Source {
	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &Source{rc: rc, scanner: scanner}
}

// Next advances to the next line.
func (s *Source) Next() bool { return s.scanner.Scan() }

// Line returns the current line.
func (s *Source) Line() string { return s.scanner.Text() }

// Err returns the first read error.
func (s *Source) Err() error {
	if err := s.scanner.Err(); err != nil {
		return serrors.Wrap(serrors.ErrIO, err, "could not read input line")
	}

	return nil
}

// Close closes the underlying reader.
func (s *Source) Close() error { return s.rc.Close() }

// Sink writes quoted comma-separated rows through a buffer. Nothing reaches
// the underlying writer before Close unless the buffer fills up.
type Sink struct {
	wc     io.WriteCloser
	buf    *bufio.Writer
	sum    hash.Hash
	out    io.Writer
	closed bool
}

var _ storage.RowSink = (*Sink)(nil)

// Create creates (or truncates) the file at path and returns a Sink writing to it.
func Create(path string) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrIO, err, "could not create output")
	}

	return NewSink(f), nil
}

// NewSink wraps wc into a Sink.
func NewSink(wc io.WriteCloser) *Sink {
	buf := bufio.NewWriter(wc)
	sum := sha256.New()

	return &Sink{
		wc:  wc,
		buf: buf,
		sum: sum,
		out: io.MultiWriter(buf, sum),
	}
}

// WriteRow writes fields as `"a","b"` followed by a newline. Fields are not
// escaped; domains and ranks never contain quotes.
func (s *Sink) WriteRow(fields ...string) error {
	if s.closed {
		return storage.ErrClosed
	}

	line := make([]byte, 0, 64)
	for i, field := range fields {
		if i > 0 {
			line = append(line, ',')
		}
		line = append(line, '"')
		line = append(line, field...)
		line = append(line, '"')
	}
	line = append(line, '\n')

	if _, err := s.out.Write(line); err != nil {
		return serrors.Wrap(serrors.ErrIO, err, "could not write row")
	}

	return nil
}

// Close flushes the buffer and closes the underlying writer.
func (s *Sink) Close() error {
	if s.closed {
		return storage.ErrClosed
	}
	s.closed = true

	if err := s.buf.Flush(); err != nil {
		_ = s.wc.Close()

		return serrors.Wrap(serrors.ErrIO, err, "could not flush output")
	}
	if err := s.wc.Close(); err != nil {
		return serrors.Wrap(serrors.ErrIO, err, "could not close output")
	}

	return nil
}

// Abort closes the underlying writer and discards whatever is still buffered.
func (s *Sink) Abort() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.wc.Close(); err != nil {
		return fmt.Errorf("could not close output: %w", err)
	}

	return nil
}

// Sum returns the hex sha256 of all rows written so far.
func (s *Sink) Sum() string {
	return hex.EncodeToString(s.sum.Sum(nil))
}
