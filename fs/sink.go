// Package fs provides file-based output for search results.
package fs

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/fwojciec/bitsearch"
)

// Ensure FileSink implements bitsearch.Sink at compile time.
var _ bitsearch.Sink = (*FileSink)(nil)

// FileSink writes result lines to a file with atomic update semantics.
// Lines are written to path.tmp and moved to path on Commit, so readers
// never see a partially written result file.
//
// Write failures do not fail Emit: the first one is kept and returned by
// Commit, so other sinks in a MultiSink still receive every result.
type FileSink struct {
	path string

	mu  sync.Mutex
	f   *os.File
	w   *bufio.Writer
	err error
}

// NewFileSink creates a new FileSink for path. Nothing is written until
// the first Emit or Commit.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) tempPath() string {
	return s.path + ".tmp"
}

// Emit appends the formatted result to the temporary file. After the
// first write error further results are dropped.
func (s *FileSink) Emit(_ context.Context, r *bitsearch.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil
	}
	if err := s.open(); err != nil {
		s.err = err
		return nil
	}
	if _, err := fmt.Fprintln(s.w, bitsearch.FormatResult(r)); err != nil {
		s.err = err
	}
	return nil
}

// open creates the temporary file. Must be called with mu held.
func (s *FileSink) open() error {
	if s.f != nil {
		return nil
	}
	f, err := os.Create(s.tempPath())
	if err != nil {
		return err
	}
	s.f = f
	s.w = bufio.NewWriter(f)
	return nil
}

// Commit flushes the temporary file and renames it over path. A search with
// no results commits an empty file. If an earlier Emit failed, Commit
// returns that error and path is left untouched.
func (s *FileSink) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	if err := s.open(); err != nil {
		return err
	}
	err := s.w.Flush()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	s.f = nil
	if err != nil {
		return err
	}

	return os.Rename(s.tempPath(), s.path)
}

// Abort discards the temporary file and leaves path untouched.
func (s *FileSink) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f != nil {
		s.f.Close()
		s.f = nil
	}
	if err := os.Remove(s.tempPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
