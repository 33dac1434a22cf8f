// Package storage defines the input and output abstractions the pipeline
// relies on. Input is a forward-only stream of lines; output is a sink of
// quoted rows that is flushed exactly once, after the last row, on success.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

// LineSource is a forward-only stream of text lines. It follows the
// bufio.Scanner protocol: call Next until it returns false, then check Err.
type LineSource interface {
	// Next advances to the next line and reports whether one is available.
	Next() bool
	// Line returns the current line without its terminator.
	Line() string
	// Err returns the first read error encountered, if any.
	Err() error
	// Close releases the underlying handle.
	Close() error
}

// RowSink receives output rows. Every field is written double-quoted and
// fields are separated by commas.
type RowSink interface {
	// WriteRow appends a single row.
	WriteRow(fields ...string) error
	// Close flushes buffered rows and releases the underlying handle. It must
	// be called only once every row has been written successfully.
	Close() error
	// Abort releases the underlying handle without flushing.
	Abort() error
	// Sum returns the hex sha256 of every byte written so far.
	Sum() string
}
