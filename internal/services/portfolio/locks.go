package portfolio

import (
	"sync"
)

// userLocks serializes the read-merge-write cycle per user. Operations for
// different users proceed in parallel; two mutations for the same user never
// interleave.
type userLocks struct {
	mu sync.Map // userID -> *sync.Mutex
}

func (l *userLocks) lock(userID string) func() {
	v, _ := l.mu.LoadOrStore(userID, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
