package task

import (
	"slices"
	"sync"
)

// columnLocks serializes writers per column inside one process.
// Entries are dropped once nobody holds or waits on them.
type columnLocks struct {
	mu    sync.Mutex
	locks map[string]*columnLock
}

type columnLock struct {
	mu   sync.Mutex
	refs int
}

func newColumnLocks() *columnLocks {
	return &columnLocks{locks: make(map[string]*columnLock)}
}

// lock acquires every column in sorted order and returns the release func
func (l *columnLocks) lock(columnIDs ...string) func() {
	ids := slices.Clone(columnIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	held := make([]*columnLock, 0, len(ids))
	for _, id := range ids {
		cl := l.acquire(id)
		cl.mu.Lock()
		held = append(held, cl)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].mu.Unlock()
			l.release(ids[i])
		}
	}
}

func (l *columnLocks) acquire(id string) *columnLock {
	l.mu.Lock()
	defer l.mu.Unlock()
	cl, ok := l.locks[id]
	if !ok {
		cl = &columnLock{}
		l.locks[id] = cl
	}
	cl.refs++
	return cl
}

func (l *columnLocks) release(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cl := l.locks[id]
	cl.refs--
	if cl.refs == 0 {
		delete(l.locks, id)
	}
}

// size reports how many columns currently have a lock entry
func (l *columnLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
