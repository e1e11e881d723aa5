// Package logfile provides a file sink for the logger package.
package logfile

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// File appends lines to a log destination. Writes are serialized so lines
// from concurrent loggers never interleave.
type File struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	path   string
}

// Open opens path for appending, creating it if needed.
func Open(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %s", path)
	}
	return &File{w: f, closer: f, path: path}, nil
}

// New returns a File that writes to w. Close is a no-op unless w is an
// io.Closer.
func New(w io.Writer) *File {
	f := &File{w: w}
	if c, ok := w.(io.Closer); ok {
		f.closer = c
	}
	return f
}

// Path returns the file path, or "" for a File created with New.
func (f *File) Path() string {
	return f.path
}

// WriteLine appends text and a newline.
func (f *File) WriteLine(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.w == nil {
		return errors.New("log file is closed")
	}
	if _, err := io.WriteString(f.w, text+"\n"); err != nil {
		if f.path != "" {
			return errors.Wrapf(err, "failed to write log file %s", f.path)
		}
		return errors.Wrap(err, "failed to write log line")
	}
	return nil
}

// Close closes the underlying file. Further writes fail.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.w = nil
	if f.closer == nil {
		return nil
	}
	err := f.closer.Close()
	f.closer = nil
	return err
}
