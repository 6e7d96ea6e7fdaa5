package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/fwojciec/bitsearch"
)

var (
	_ bitsearch.Sink = (*LineSink)(nil)
	_ bitsearch.Sink = (*bestEffortSink)(nil)
)

// LineSink writes each result as one pipe-delimited line.
type LineSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLineSink creates a LineSink writing to w.
func NewLineSink(w io.Writer) *LineSink {
	return &LineSink{w: w}
}

// Emit implements bitsearch.Sink.
func (s *LineSink) Emit(_ context.Context, r *bitsearch.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.w, bitsearch.FormatResult(r))
	return err
}

// bestEffortSink logs errors from next instead of returning them, so a
// failing secondary sink does not cut the printed output short.
type bestEffortSink struct {
	next   bitsearch.Sink
	logger *slog.Logger
}

func (s *bestEffortSink) Emit(ctx context.Context, r *bitsearch.Result) error {
	if err := s.next.Emit(ctx, r); err != nil {
		s.logger.Warn("saving result", "name", r.Name, "err", err)
	}
	return nil
}
