package bitsearch

import "context"

// Sentinel is the field value meaning "could not be determined".
const Sentinel = "-1"

// Result is a single search result record. Integer fields (Size, Seeds,
// Leech, PubDate) are decimal text and hold Sentinel when unknown.
type Result struct {
	Link      string // magnet URI
	Name      string
	Size      string // bytes
	Seeds     string
	Leech     string
	EngineURL string
	DescLink  string
	PubDate   string // unix timestamp
}

// NewResult returns a Result for the given engine URL with every integer
// field set to Sentinel.
func NewResult(engineURL string) *Result {
	return &Result{
		Size:      Sentinel,
		Seeds:     Sentinel,
		Leech:     Sentinel,
		EngineURL: engineURL,
		PubDate:   Sentinel,
	}
}

// Validate returns an error if the result cannot be forwarded.
// A result needs both a name and a link.
func (r *Result) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "result name required")
	}
	if r.Link == "" {
		return Errorf(EINVALID, "result link required")
	}
	return nil
}

// Valid reports whether Validate returns nil.
func (r *Result) Valid() bool {
	return r.Validate() == nil
}

// Fields returns the eight record fields in output order:
// link, name, size, seeds, leech, engine_url, desc_link, pub_date.
func (r *Result) Fields() []string {
	return []string{r.Link, r.Name, r.Size, r.Seeds, r.Leech, r.EngineURL, r.DescLink, r.PubDate}
}

// Sink receives valid results in extraction order.
// The sink owns output formatting.
type Sink interface {
	Emit(ctx context.Context, r *Result) error
}

// MultiSink forwards each result to every sink in order.
// The first error stops the fan-out and is returned.
type MultiSink []Sink

// Emit implements Sink.
func (m MultiSink) Emit(ctx context.Context, r *Result) error {
	for _, s := range m {
		if err := s.Emit(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
