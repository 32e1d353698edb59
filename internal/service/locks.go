package service

import "sync"

// refLocks serialises mutations per booking reference. The record store
// offers no optimistic-concurrency token, so without this two concurrent
// cancellations could both pass the "not already cancelled" check and
// double-refund.
type refLocks struct {
	mu sync.Mutex
	m  map[string]*refLock
}

type refLock struct {
	mu   sync.Mutex
	refs int
}

func newRefLocks() *refLocks {
	return &refLocks{m: make(map[string]*refLock)}
}

// lock acquires the mutex for ref and returns the release func. Entries are
// reference-counted and removed once the last holder releases.
func (l *refLocks) lock(ref string) func() {
	l.mu.Lock()
	e, ok := l.m[ref]
	if !ok {
		e = &refLock{}
		l.m[ref] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.m, ref)
		}
		l.mu.Unlock()
	}
}
