package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/bitsearch"
)

var (
	_ bitsearch.Sink = (*Sink)(nil)
	_ bitsearch.Sink = (*RecordingSink)(nil)
)

// Sink is a mock implementation of bitsearch.Sink.
type Sink struct {
	EmitFn func(ctx context.Context, r *bitsearch.Result) error
}

func (s *Sink) Emit(ctx context.Context, r *bitsearch.Result) error {
	return s.EmitFn(ctx, r)
}

// RecordingSink records every emitted result. It is safe for concurrent use.
type RecordingSink struct {
	mu      sync.Mutex
	results []*bitsearch.Result
}

func (s *RecordingSink) Emit(_ context.Context, r *bitsearch.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, r)
	return nil
}

// Results returns the recorded results in emission order.
func (s *RecordingSink) Results() []*bitsearch.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*bitsearch.Result(nil), s.results...)
}

// Names returns the names of the recorded results in emission order.
func (s *RecordingSink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.results))
	for _, r := range s.results {
		names = append(names, r.Name)
	}
	return names
}
