package lct

import "sync"

// SyncForest wraps a Forest with a single mutex so it can be shared across
// goroutines. Every method, Connected and FindRoot included, takes the exclusive
// lock because every operation restructures splay trees.
type SyncForest struct {
	mu sync.Mutex // guards f
	f  *Forest
}

// NewSync allocates a mutex-guarded forest of n isolated vertices.
// Options and errors are those of New.
func NewSync(n int, opts ...Option) (*SyncForest, error) {
	f, err := New(n, opts...)
	if err != nil {
		return nil, err
	}

	return &SyncForest{f: f}, nil
}

// Len returns the number of vertices. The arena is never resized, so no lock is needed.
func (s *SyncForest) Len() int {
	return s.f.Len()
}

// Access is Forest.Access under the lock.
func (s *SyncForest) Access(u int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Access(u)
}

// MakeRoot is Forest.MakeRoot under the lock.
func (s *SyncForest) MakeRoot(u int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.MakeRoot(u)
}

// Link is Forest.Link under the lock.
func (s *SyncForest) Link(u, v int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Link(u, v)
}

// Cut is Forest.Cut under the lock.
func (s *SyncForest) Cut(u, v int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Cut(u, v)
}

// Connected is Forest.Connected under the lock.
func (s *SyncForest) Connected(u, v int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Connected(u, v)
}

// FindRoot is Forest.FindRoot under the lock.
func (s *SyncForest) FindRoot(u int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.FindRoot(u)
}

// HasEdge is Forest.HasEdge under the lock.
func (s *SyncForest) HasEdge(u, v int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.HasEdge(u, v)
}

// Reset is Forest.Reset under the lock.
func (s *SyncForest) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.f.Reset()
}

// Validate is Forest.Validate under the lock.
func (s *SyncForest) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Validate()
}

// Do runs fn with exclusive access to the underlying Forest, for callers that
// need several operations to appear atomic (check-then-link, for example).
// fn must not retain the Forest after returning.
func (s *SyncForest) Do(fn func(f *Forest) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.f)
}
